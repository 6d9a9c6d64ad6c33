package app

import (
	"context"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"vox-translate/internal/config"
	"vox-translate/internal/logger"
	"vox-translate/internal/ocr"
	"vox-translate/internal/speech"
	"vox-translate/internal/translate"
)

// TextExtractor pulls text out of an encoded image.
type TextExtractor interface {
	ExtractBytes(ctx context.Context, data []byte) (string, error)
}

// Services are the collaborators behind the window. A nil field disables
// the matching feature.
type Services struct {
	Translator  translate.Translator
	Detector    translate.Detector
	Synthesizer speech.Synthesizer
	Player      speech.Player
	Recorder    speech.Recorder
	Recognizer  speech.Recognizer
	OCR         TextExtractor
}

// NewTranslation builds the translation fallback chain and the detector
// that share one HTTP client.
func NewTranslation(cfg *config.Config, log logger.Logger) (*translate.Chain, *translate.FallbackDetector) {
	client := translate.NewHTTPClient(cfg.Translate.Timeout())
	libre := translate.NewLibreTranslate(cfg.Translate.LibreTranslateURL, cfg.Translate.LibreTranslateAPIKey, client)
	mymemory := translate.NewMyMemory(cfg.Translate.MyMemoryURL, cfg.Translate.MyMemoryEmail, client)

	chain := translate.NewChain(log,
		translate.Backend{Name: "dictionary", Translator: translate.Dictionary{}},
		translate.Backend{Name: "libretranslate", Translator: libre},
		translate.Backend{Name: "mymemory", Translator: mymemory},
	)
	return chain, translate.NewFallbackDetector(libre, log)
}

// NewOCR builds the Tesseract engine from configuration.
func NewOCR(cfg *config.Config, log logger.Logger) *ocr.Tesseract {
	return ocr.NewTesseract(cfg.OCR.Languages, cfg.OCR.Preprocess, log)
}

func BuildServices(cfg *config.Config, log logger.Logger) *Services {
	log = logger.OrNoOp(log)
	chain, detector := NewTranslation(cfg, log)

	var oa *openai.Client
	if cfg.Speech.OpenAIAPIKey != "" {
		oc := openai.DefaultConfig(cfg.Speech.OpenAIAPIKey)
		if cfg.Speech.OpenAIBaseURL != "" {
			oc.BaseURL = cfg.Speech.OpenAIBaseURL
		}
		oa = openai.NewClientWithConfig(oc)
	}

	var synth speech.Synthesizer
	switch {
	case cfg.Speech.TTSProvider == "openai" && oa != nil:
		synth = speech.NewOpenAISynthesizer(oa, cfg.Speech.OpenAITTSModel, cfg.Speech.OpenAIVoice)
	default:
		synth = speech.NewGoogleTTS(cfg.Speech.GoogleTTSURL, &http.Client{Timeout: 30 * time.Second})
	}

	var recognizer speech.Recognizer
	if oa != nil {
		recognizer = speech.NewWhisperRecognizer(oa, cfg.Speech.WhisperModel, cfg.Speech.TempDir)
	} else {
		log.Warning("Services", "speech recognition disabled, no OpenAI API key configured", nil)
	}

	return &Services{
		Translator:  chain,
		Detector:    detector,
		Synthesizer: synth,
		Player:      speech.NewSpeaker(cfg.Speech.TempDir, log),
		Recorder:    speech.NewMicrophone(endpointConfig(cfg.Speech), log),
		Recognizer:  recognizer,
		OCR:         NewOCR(cfg, log),
	}
}

// endpointConfig converts capture settings into the endpointer's terms.
func endpointConfig(s config.Speech) speech.EndpointConfig {
	ec := speech.DefaultEndpointConfig()
	ec.SampleRate = s.SampleRate
	if s.AmbientMillis > 0 {
		ec.AmbientDuration = time.Duration(s.AmbientMillis) * time.Millisecond
	}
	if s.PauseMillis > 0 {
		ec.PauseThreshold = time.Duration(s.PauseMillis) * time.Millisecond
	}
	if s.PhraseSeconds > 0 {
		ec.PhraseLimit = time.Duration(s.PhraseSeconds) * time.Second
	}
	if s.WaitSeconds > 0 {
		ec.WaitTimeout = time.Duration(s.WaitSeconds) * time.Second
	}
	return ec
}
