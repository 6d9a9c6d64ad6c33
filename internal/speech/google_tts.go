package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DefaultGoogleTTSURL = "https://translate.google.com"
	googleChunkRunes    = 100
)

// GoogleTTS uses the public Translate speech endpoint. Long text is split
// into chunks the endpoint accepts and the mp3 fragments are concatenated.
type GoogleTTS struct {
	baseURL string
	client  *http.Client
}

func NewGoogleTTS(baseURL string, client *http.Client) *GoogleTTS {
	if baseURL == "" {
		baseURL = DefaultGoogleTTSURL
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &GoogleTTS{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (g *GoogleTTS) Synthesize(ctx context.Context, text, lang string) (*Audio, error) {
	chunks := splitChunks(text, googleChunkRunes)
	if len(chunks) == 0 {
		return nil, ErrEmptyAudio
	}

	var out bytes.Buffer
	for i, chunk := range chunks {
		q := url.Values{}
		q.Set("ie", "UTF-8")
		q.Set("client", "tw-ob")
		q.Set("q", chunk)
		q.Set("tl", googleLang(lang))
		q.Set("total", strconv.Itoa(len(chunks)))
		q.Set("idx", strconv.Itoa(i))
		q.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/translate_tts?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0")

		resp, err := g.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		}
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
			resp.Body.Close()
			return nil, fmt.Errorf("%w: google tts http %d: %s", ErrServiceUnavailable, resp.StatusCode, strings.TrimSpace(string(b)))
		}
		_, err = io.Copy(&out, resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read google tts audio: %w", err)
		}
	}

	return &Audio{Data: out.Bytes(), Format: "mp3"}, nil
}

func googleLang(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "en"
	}
	if i := strings.IndexByte(code, '-'); i > 0 {
		return code[:i] + "-" + strings.ToUpper(code[i+1:])
	}
	return code
}

// splitChunks breaks text on whitespace into pieces of at most limit runes.
// Words longer than limit are cut.
func splitChunks(text string, limit int) []string {
	var chunks []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			chunks = append(chunks, string(cur))
			cur = cur[:0]
		}
	}

	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > limit {
			flush()
			chunks = append(chunks, string(w[:limit]))
			w = w[limit:]
		}
		if len(cur) > 0 && len(cur)+1+len(w) > limit {
			flush()
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		cur = append(cur, w...)
	}
	flush()

	return chunks
}
