package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"vox-translate/internal/catalog"
	"vox-translate/internal/logger"
	"vox-translate/internal/translate"
)

const maxBodyBytes = 1 << 20

type handlers struct {
	translator translate.Translator
	detector   translate.Detector
	catalog    *catalog.Catalog
	logger     logger.Logger
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

type translateResponse struct {
	TranslatedText   string `json:"translatedText"`
	Method           string `json:"method,omitempty"`
	DetectedLanguage string `json:"detectedLanguage,omitempty"`
	Error            string `json:"error,omitempty"`
	Details          string `json:"details,omitempty"`
}

type detectRequest struct {
	Text string `json:"text"`
}

type detectResponse struct {
	DetectedLanguage string  `json:"detectedLanguage"`
	Confidence       float64 `json:"confidence"`
	Method           string  `json:"method"`
}

type language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (h *handlers) Translate(w http.ResponseWriter, r *http.Request) {
	if h.translator == nil {
		writeError(w, http.StatusServiceUnavailable, "Translation is not configured")
		return
	}

	var req translateRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" || strings.TrimSpace(req.TargetLang) == "" {
		writeError(w, http.StatusBadRequest, "Missing required parameters")
		return
	}

	source := h.resolve(req.SourceLang)
	target := h.resolve(req.TargetLang)

	res, err := h.translator.Translate(r.Context(), req.Text, source, target)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, translateResponse{
			TranslatedText:   res.Text,
			Method:           res.Method,
			DetectedLanguage: res.DetectedLanguage,
		})
	case errors.Is(err, translate.ErrServiceUnavailable):
		h.logger.Warning("API", "translation services unavailable", map[string]interface{}{
			"source": source,
			"target": target,
			"error":  err.Error(),
		})
		writeJSON(w, http.StatusOK, translateResponse{
			TranslatedText: req.Text,
			Method:         "original",
			Error:          "Translation services unavailable",
		})
	default:
		h.logger.Error("API", err, map[string]interface{}{"route": "translate"})
		writeJSON(w, http.StatusInternalServerError, translateResponse{
			TranslatedText: req.Text,
			Error:          "Translation service error",
			Details:        err.Error(),
		})
	}
}

func (h *handlers) Detect(w http.ResponseWriter, r *http.Request) {
	if h.detector == nil {
		writeError(w, http.StatusServiceUnavailable, "Detection is not configured")
		return
	}

	var req detectRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "Missing text parameter")
		return
	}

	det, err := h.detector.Detect(r.Context(), req.Text)
	if err != nil {
		h.logger.Error("API", err, map[string]interface{}{"route": "detect"})
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":            "Language detection service error",
			"details":          err.Error(),
			"fallbackLanguage": "en",
		})
		return
	}

	writeJSON(w, http.StatusOK, detectResponse{
		DetectedLanguage: det.Language,
		Confidence:       det.Confidence,
		Method:           det.Method,
	})
}

func (h *handlers) Languages(w http.ResponseWriter, r *http.Request) {
	out := []language{}
	if h.catalog != nil {
		for name := range h.catalog.Filter(r.URL.Query().Get("q")) {
			entry, _ := h.catalog.Lookup(name)
			out = append(out, language{Name: entry.DisplayName, Code: entry.Code})
		}
	}
	writeJSON(w, http.StatusOK, map[string][]language{"languages": out})
}

// resolve maps a display name or code to a code, defaulting to English as
// the web client always has.
func (h *handlers) resolve(nameOrCode string) string {
	if h.catalog == nil {
		if strings.TrimSpace(nameOrCode) == "" {
			return "en"
		}
		return nameOrCode
	}
	return h.catalog.Resolve(nameOrCode, "en")
}

func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
