package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// loadDotEnv loads envFile, or ./.env when empty. A missing default file is
// fine; a missing explicit one is an error. Variables already set in the
// process environment win.
func loadDotEnv(envFile string) error {
	explicit := envFile != ""
	if !explicit {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", envFile, err)
	}
	return nil
}

type lookupFunc func(string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	list := func(key string, dst *[]string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			var out []string
			for _, part := range strings.Split(v, ",") {
				if p := strings.TrimSpace(part); p != "" {
					out = append(out, p)
				}
			}
			*dst = out
		}
	}
	var errs []error
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	flag := func(key string, dst *bool) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	str("VOX_LOG_LEVEL", &c.Logging.Level)
	flag("VOX_LOG_JSON", &c.Logging.JSON)

	str("VOX_LIBRETRANSLATE_URL", &c.Translate.LibreTranslateURL)
	str("VOX_LIBRETRANSLATE_API_KEY", &c.Translate.LibreTranslateAPIKey)
	str("VOX_MYMEMORY_URL", &c.Translate.MyMemoryURL)
	str("VOX_MYMEMORY_EMAIL", &c.Translate.MyMemoryEmail)
	num("VOX_TRANSLATE_TIMEOUT_SECONDS", &c.Translate.TimeoutSeconds)
	str("VOX_DEFAULT_DESTINATION", &c.Translate.DefaultDestination)
	num("VOX_DEBOUNCE_MS", &c.Translate.DebounceMillis)

	str("VOX_TTS_PROVIDER", &c.Speech.TTSProvider)
	str("VOX_GOOGLE_TTS_URL", &c.Speech.GoogleTTSURL)
	str("VOX_OPENAI_BASE_URL", &c.Speech.OpenAIBaseURL)
	str("VOX_OPENAI_TTS_MODEL", &c.Speech.OpenAITTSModel)
	str("VOX_OPENAI_VOICE", &c.Speech.OpenAIVoice)
	str("VOX_WHISPER_MODEL", &c.Speech.WhisperModel)
	str("VOX_RECOGNITION_LANGUAGE", &c.Speech.RecognitionLanguage)
	num("VOX_SAMPLE_RATE", &c.Speech.SampleRate)
	num("VOX_PAUSE_MS", &c.Speech.PauseMillis)
	str("VOX_TEMP_DIR", &c.Speech.TempDir)
	// The conventional variable is honoured so existing OpenAI setups work.
	str("OPENAI_API_KEY", &c.Speech.OpenAIAPIKey)
	str("VOX_OPENAI_API_KEY", &c.Speech.OpenAIAPIKey)

	list("VOX_OCR_LANGUAGES", &c.OCR.Languages)
	flag("VOX_OCR_PREPROCESS", &c.OCR.Preprocess)

	str("VOX_SERVER_ADDR", &c.Server.Addr)
	list("VOX_ALLOWED_ORIGINS", &c.Server.AllowedOrigins)
	num("VOX_RATE_LIMIT", &c.Server.RateLimit)

	return errors.Join(errs...)
}
