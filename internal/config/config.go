// Package config loads vox-translate settings from defaults, an optional
// TOML file, a .env file and VOX_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Logging controls the zerolog sink.
type Logging struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// Translate configures the translation and detection backends.
type Translate struct {
	LibreTranslateURL    string `toml:"libretranslate_url"`
	LibreTranslateAPIKey string `toml:"libretranslate_api_key"`
	MyMemoryURL          string `toml:"mymemory_url"`
	MyMemoryEmail        string `toml:"mymemory_email"`
	TimeoutSeconds       int    `toml:"timeout_seconds"`
	// DefaultDestination is a catalog display name.
	DefaultDestination string `toml:"default_destination"`
	DebounceMillis     int    `toml:"debounce_ms"`
}

// Speech configures synthesis, capture and recognition. An empty
// RecognitionLanguage lets the recognizer detect the spoken language.
type Speech struct {
	TTSProvider         string `toml:"tts_provider"`
	GoogleTTSURL        string `toml:"google_tts_url"`
	OpenAIAPIKey        string `toml:"openai_api_key"`
	OpenAIBaseURL       string `toml:"openai_base_url"`
	OpenAITTSModel      string `toml:"openai_tts_model"`
	OpenAIVoice         string `toml:"openai_voice"`
	WhisperModel        string `toml:"whisper_model"`
	RecognitionLanguage string `toml:"recognition_language"`
	SampleRate          int    `toml:"sample_rate"`
	AmbientMillis       int    `toml:"ambient_ms"`
	PauseMillis         int    `toml:"pause_ms"`
	PhraseSeconds       int    `toml:"phrase_limit_seconds"`
	WaitSeconds         int    `toml:"wait_timeout_seconds"`
	TempDir             string `toml:"temp_dir"`
}

// OCR configures Tesseract.
type OCR struct {
	Languages  []string `toml:"languages"`
	Preprocess bool     `toml:"preprocess"`
}

// Server configures the HTTP API.
type Server struct {
	Addr              string   `toml:"addr"`
	AllowedOrigins    []string `toml:"allowed_origins"`
	RateLimit         int      `toml:"rate_limit"`
	RateWindowSeconds int      `toml:"rate_window_seconds"`
}

// Config encapsulates all configuration values.
type Config struct {
	Logging   Logging   `toml:"logging"`
	Translate Translate `toml:"translate"`
	Speech    Speech    `toml:"speech"`
	OCR       OCR       `toml:"ocr"`
	Server    Server    `toml:"server"`
}

// Load reads path (or the default location when empty), then applies envFile
// and the process environment. It reports the resolved path and whether a
// file was found there.
func Load(path, envFile string) (*Config, string, bool, error) {
	cfg := Default()

	resolved, exists, err := resolvePath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := loadDotEnv(envFile); err != nil {
		return nil, "", false, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

// DefaultPath is $XDG_CONFIG_HOME/vox-translate/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "vox-translate", "config.toml"), nil
}

func resolvePath(path string) (string, bool, error) {
	if strings.TrimSpace(path) == "" {
		def, err := DefaultPath()
		if err != nil {
			return "", false, err
		}
		path = def
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %q is a directory", path)
	}
	return path, true, nil
}

func (t Translate) Timeout() time.Duration {
	return time.Duration(t.TimeoutSeconds) * time.Second
}

func (t Translate) Debounce() time.Duration {
	return time.Duration(t.DebounceMillis) * time.Millisecond
}

func (s Server) RateWindow() time.Duration {
	return time.Duration(s.RateWindowSeconds) * time.Second
}
