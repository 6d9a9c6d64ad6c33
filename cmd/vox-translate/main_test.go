package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "missing.toml")
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgPath, "--log-level", "error"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestLanguagesCommand(t *testing.T) {
	out, err := runCLI(t, "", "languages")
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(out, "\n"))
	assert.Contains(t, out, "Tiếng Anh")

	out, err = runCLI(t, "", "languages", "nha")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Tiếng Tây Ban Nha")
	assert.Contains(t, lines[1], "Tiếng Bồ Đào Nha")
}

func TestTranslateCommandUsesDictionary(t *testing.T) {
	out, err := runCLI(t, "", "translate", "--from", "en", "--to", "Tiếng Việt", "hello")
	require.NoError(t, err)
	assert.Equal(t, "xin chào\n", out)
}

func TestTranslateCommandReadsStdin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "/translate", r.URL.Path)
		assert.Equal(t, "ko", req["target"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"translatedText":"좋은 아침"}`))
	}))
	defer srv.Close()
	t.Setenv("VOX_LIBRETRANSLATE_URL", srv.URL)

	out, err := runCLI(t, "good morning everyone\n", "translate", "-t", "ko")
	require.NoError(t, err)
	assert.Equal(t, "좋은 아침\n", out)
}

func TestTranslateCommandRequiresText(t *testing.T) {
	_, err := runCLI(t, "   ", "translate")
	require.Error(t, err)
}

func TestOCRCommandRejectsNonImage(t *testing.T) {
	_, err := runCLI(t, "", "ocr", "notes.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image type")
}
