package translate

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

const DefaultLibreTranslateURL = "https://libretranslate.de"

// LibreTranslate talks to a LibreTranslate instance for both translation
// and detection.
type LibreTranslate struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewLibreTranslate(baseURL, apiKey string, client *http.Client) *LibreTranslate {
	if baseURL == "" {
		baseURL = DefaultLibreTranslateURL
	}
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &LibreTranslate{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

type libreTranslateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreTranslateResponse struct {
	TranslatedText   string `json:"translatedText"`
	DetectedLanguage *struct {
		Language   string  `json:"language"`
		Confidence float64 `json:"confidence"`
	} `json:"detectedLanguage"`
}

func (l *LibreTranslate) Translate(ctx context.Context, text, source, target string) (Result, error) {
	var resp libreTranslateResponse
	err := postJSON(ctx, l.client, l.baseURL+"/translate", libreTranslateRequest{
		Q:      text,
		Source: libreCode(source),
		Target: libreCode(target),
		Format: "text",
		APIKey: l.apiKey,
	}, &resp)
	if err != nil {
		return Result{}, fmt.Errorf("libretranslate translate: %w", err)
	}

	if strings.TrimSpace(resp.TranslatedText) == "" {
		return Result{}, fmt.Errorf("libretranslate: %w", ErrNoTranslation)
	}

	detected := normalizeCode(source)
	if resp.DetectedLanguage != nil && resp.DetectedLanguage.Language != "" {
		detected = fromLibreCode(resp.DetectedLanguage.Language)
	}

	return Result{
		Text:             resp.TranslatedText,
		Method:           "libretranslate",
		DetectedLanguage: detected,
	}, nil
}

type libreDetectRequest struct {
	Q      string `json:"q"`
	APIKey string `json:"api_key,omitempty"`
}

type libreDetection struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// Detect returns the most confident guess. Confidence is normalized to
// [0,1]; newer LibreTranslate releases report percentages.
func (l *LibreTranslate) Detect(ctx context.Context, text string) (Detection, error) {
	var resp []libreDetection
	err := postJSON(ctx, l.client, l.baseURL+"/detect", libreDetectRequest{Q: text, APIKey: l.apiKey}, &resp)
	if err != nil {
		return Detection{}, fmt.Errorf("libretranslate detect: %w", err)
	}
	if len(resp) == 0 {
		return Detection{}, fmt.Errorf("libretranslate: %w", ErrNoDetection)
	}

	sort.SliceStable(resp, func(i, j int) bool {
		return resp[i].Confidence > resp[j].Confidence
	})

	best := resp[0]
	confidence := best.Confidence
	if confidence > 1 {
		confidence /= 100
	}

	return Detection{
		Language:   fromLibreCode(best.Language),
		Confidence: confidence,
		Method:     "api",
	}, nil
}
