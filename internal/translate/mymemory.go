package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const DefaultMyMemoryURL = "https://api.mymemory.translated.net"

// MyMemory is the last remote fallback. It needs an explicit source, so an
// empty source is sent as "autodetect".
type MyMemory struct {
	baseURL string
	email   string
	client  *http.Client
}

func NewMyMemory(baseURL, email string, client *http.Client) *MyMemory {
	if baseURL == "" {
		baseURL = DefaultMyMemoryURL
	}
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &MyMemory{
		baseURL: strings.TrimRight(baseURL, "/"),
		email:   email,
		client:  client,
	}
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus  flexFloat `json:"responseStatus"`
	ResponseDetails string    `json:"responseDetails"`
	Matches         []struct {
		Translation string    `json:"translation"`
		Quality     flexFloat `json:"quality"`
	} `json:"matches"`
}

func (m *MyMemory) Translate(ctx context.Context, text, source, target string) (Result, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", myMemoryCode(source)+"|"+myMemoryCode(target))
	if m.email != "" {
		q.Set("de", m.email)
	}

	var resp myMemoryResponse
	if err := getJSON(ctx, m.client, m.baseURL+"/get?"+q.Encode(), &resp); err != nil {
		return Result{}, fmt.Errorf("mymemory: %w", err)
	}

	if status := int(resp.ResponseStatus); status != 0 && status != http.StatusOK {
		return Result{}, fmt.Errorf("mymemory status %d: %s", status, resp.ResponseDetails)
	}

	if translated := strings.TrimSpace(resp.ResponseData.TranslatedText); translated != "" {
		return Result{Text: translated, Method: "mymemory", DetectedLanguage: normalizeCode(source)}, nil
	}

	var best string
	var bestQuality flexFloat
	for _, match := range resp.Matches {
		if match.Translation != "" && match.Quality > bestQuality {
			best, bestQuality = match.Translation, match.Quality
		}
	}
	if best != "" {
		return Result{Text: best, Method: "mymemory-match", DetectedLanguage: normalizeCode(source)}, nil
	}

	return Result{}, fmt.Errorf("mymemory: %w", ErrNoTranslation)
}
