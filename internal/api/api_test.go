package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vox-translate/internal/catalog"
	"vox-translate/internal/translate"
)

type fakeTranslator struct {
	gotSource, gotTarget string
	res                  translate.Result
	err                  error
}

func (f *fakeTranslator) Translate(_ context.Context, _, source, target string) (translate.Result, error) {
	f.gotSource, f.gotTarget = source, target
	return f.res, f.err
}

type fakeDetector struct {
	det translate.Detection
	err error
}

func (f fakeDetector) Detect(context.Context, string) (translate.Detection, error) {
	return f.det, f.err
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func TestTranslate(t *testing.T) {
	tr := &fakeTranslator{res: translate.Result{Text: "안녕하세요", Method: "libretranslate", DetectedLanguage: "en"}}
	h := NewRouter(tr, nil, catalog.Default(), nil, Options{})

	rec, body := do(t, h, http.MethodPost, "/api/translate", `{"text":"hello","sourceLang":"Tiếng Anh","targetLang":"Tiếng Hàn"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "안녕하세요", body["translatedText"])
	assert.Equal(t, "libretranslate", body["method"])
	assert.Equal(t, "en", body["detectedLanguage"])
	assert.Equal(t, "en", tr.gotSource)
	assert.Equal(t, "ko", tr.gotTarget)
}

func TestTranslateAcceptsCodesAndDefaultsSource(t *testing.T) {
	tr := &fakeTranslator{res: translate.Result{Text: "x", Method: "mymemory"}}
	h := NewRouter(tr, nil, catalog.Default(), nil, Options{})

	rec, _ := do(t, h, http.MethodPost, "/api/translate", `{"text":"hello","targetLang":"zh-cn"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en", tr.gotSource)
	assert.Equal(t, "zh-cn", tr.gotTarget)
}

func TestTranslateValidation(t *testing.T) {
	h := NewRouter(&fakeTranslator{}, nil, catalog.Default(), nil, Options{})

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing text", `{"targetLang":"vi"}`, "Missing required parameters"},
		{"missing target", `{"text":"hi"}`, "Missing required parameters"},
		{"bad json", `{"text":`, "Invalid JSON body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, h, http.MethodPost, "/api/translate", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, body["error"])
		})
	}
}

func TestTranslateServicesDown(t *testing.T) {
	tr := &fakeTranslator{err: fmt.Errorf("%w: %w", translate.ErrServiceUnavailable, errors.New("libretranslate: timeout"))}
	h := NewRouter(tr, nil, catalog.Default(), nil, Options{})

	rec, body := do(t, h, http.MethodPost, "/api/translate", `{"text":"hello","targetLang":"vi"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", body["translatedText"])
	assert.Equal(t, "original", body["method"])
	assert.Equal(t, "Translation services unavailable", body["error"])
}

func TestTranslateUnexpectedError(t *testing.T) {
	tr := &fakeTranslator{err: context.DeadlineExceeded}
	h := NewRouter(tr, nil, catalog.Default(), nil, Options{})

	rec, body := do(t, h, http.MethodPost, "/api/translate", `{"text":"hello","targetLang":"vi"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "hello", body["translatedText"])
	assert.Equal(t, "Translation service error", body["error"])
}

func TestDetect(t *testing.T) {
	det := fakeDetector{det: translate.Detection{Language: "vi", Confidence: 0.7, Method: "local-fallback"}}
	h := NewRouter(nil, det, catalog.Default(), nil, Options{})

	rec, body := do(t, h, http.MethodPost, "/api/detect", `{"text":"xin chào"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "vi", body["detectedLanguage"])
	assert.InDelta(t, 0.7, body["confidence"], 1e-9)
	assert.Equal(t, "local-fallback", body["method"])

	rec, body = do(t, h, http.MethodPost, "/api/detect", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing text parameter", body["error"])
}

func TestDetectError(t *testing.T) {
	h := NewRouter(nil, fakeDetector{err: context.Canceled}, catalog.Default(), nil, Options{})

	rec, body := do(t, h, http.MethodPost, "/api/detect", `{"text":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "en", body["fallbackLanguage"])
}

func TestMethodNotAllowed(t *testing.T) {
	h := NewRouter(&fakeTranslator{}, fakeDetector{}, catalog.Default(), nil, Options{})

	for _, path := range []string{"/api/translate", "/api/detect"} {
		rec, body := do(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, path)
		assert.Equal(t, "Method not allowed", body["error"])
	}
}

func TestUnconfiguredBackends(t *testing.T) {
	h := NewRouter(nil, nil, catalog.Default(), nil, Options{})

	rec, _ := do(t, h, http.MethodPost, "/api/translate", `{"text":"a","targetLang":"vi"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	rec, _ = do(t, h, http.MethodPost, "/api/detect", `{"text":"a"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLanguages(t *testing.T) {
	h := NewRouter(nil, nil, catalog.Default(), nil, Options{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/languages?q=nha", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Languages []language `json:"languages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []language{
		{Name: "Tiếng Tây Ban Nha", Code: "es"},
		{Name: "Tiếng Bồ Đào Nha", Code: "pt"},
	}, body.Languages)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/languages?q=xyz", nil))
	assert.JSONEq(t, `{"languages":[]}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	h := NewRouter(&fakeTranslator{}, nil, catalog.Default(), nil, Options{})

	req := httptest.NewRequest(http.MethodOptions, "/api/translate", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	h := NewRouter(nil, nil, catalog.Default(), nil, Options{RateLimit: 2, RateWindow: time.Minute})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/languages", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestServerStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewServer(ln.Addr().String(), NewRouter(nil, nil, catalog.Default(), nil, Options{}), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
