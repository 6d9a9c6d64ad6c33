package main

import (
	"os"
	"strings"
	"sync"

	"vox-translate/internal/config"
	"vox-translate/internal/logger"
)

type commandContext struct {
	configFlag   *string
	envFileFlag  *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     logger.Logger
}

func newCommandContext(configFlag, envFileFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		envFileFlag:  envFileFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(flagValue(c.configFlag), flagValue(c.envFileFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if level := flagValue(c.logLevelFlag); level != "" {
			cfg.Logging.Level = level
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() logger.Logger {
	c.loggerOnce.Do(func() {
		opts := logger.Options{Level: flagValue(c.logLevelFlag), Writer: os.Stderr}
		if c.config != nil {
			opts.Level = c.config.Logging.Level
			opts.JSON = c.config.Logging.JSON
		}
		c.logger = logger.New(opts)
		if c.configPath != "" {
			c.logger.Debug("CLI", "configuration loaded", map[string]interface{}{
				"path": c.configPath,
			})
		}
	})
	return c.logger
}

func flagValue(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}
