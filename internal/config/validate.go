package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"vox-translate/internal/catalog"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}

	for name, raw := range map[string]string{
		"translate.libretranslate_url": c.Translate.LibreTranslateURL,
		"translate.mymemory_url":       c.Translate.MyMemoryURL,
		"speech.google_tts_url":        c.Speech.GoogleTTSURL,
	} {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s: invalid url %q", name, raw))
		}
	}

	if c.Translate.TimeoutSeconds <= 0 {
		errs = append(errs, errors.New("translate.timeout_seconds must be positive"))
	}
	if cat := catalog.Default(); c.Translate.DefaultDestination != "" {
		if _, ok := cat.Lookup(c.Translate.DefaultDestination); !ok {
			errs = append(errs, fmt.Errorf("translate.default_destination %q is not one of: %s",
				c.Translate.DefaultDestination, strings.Join(cat.Names(), ", ")))
		}
	}
	if c.Translate.DebounceMillis < 0 {
		errs = append(errs, errors.New("translate.debounce_ms must not be negative"))
	}

	c.Speech.TTSProvider = strings.ToLower(c.Speech.TTSProvider)
	switch c.Speech.TTSProvider {
	case "google":
	case "openai":
		if c.Speech.OpenAIAPIKey == "" {
			errs = append(errs, errors.New("speech.tts_provider openai requires an OpenAI API key"))
		}
	default:
		errs = append(errs, fmt.Errorf("speech.tts_provider: unknown provider %q", c.Speech.TTSProvider))
	}
	if c.Speech.SampleRate < 8000 {
		errs = append(errs, fmt.Errorf("speech.sample_rate %d is below 8000", c.Speech.SampleRate))
	}
	if c.Speech.PauseMillis <= 0 {
		errs = append(errs, errors.New("speech.pause_ms must be positive"))
	}

	if len(c.OCR.Languages) == 0 {
		errs = append(errs, errors.New("ocr.languages must not be empty"))
	}

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr must be set"))
	}
	if c.Server.RateLimit < 0 || c.Server.RateWindowSeconds < 0 {
		errs = append(errs, errors.New("server rate limit settings must not be negative"))
	}

	return errors.Join(errs...)
}
