// Package translate turns text in one language into another and guesses
// the language a text is written in.
//
// Translation runs through a Chain of backends tried in order: a same
// language short-circuit, a small phrase dictionary, LibreTranslate and
// finally MyMemory. Detection asks LibreTranslate first and falls back to a
// local script and vocabulary heuristic.
package translate

import (
	"context"
	"errors"
)

var (
	// ErrServiceUnavailable means every configured backend failed.
	ErrServiceUnavailable = errors.New("translation service unavailable")
	// ErrNoTranslation means a backend answered but had nothing to offer.
	ErrNoTranslation = errors.New("no translation found")
	ErrNoDetection   = errors.New("no language detected")
	ErrEmptyText     = errors.New("text is empty")
)

// Result is a translated text and the backend that produced it.
type Result struct {
	Text             string
	Method           string
	DetectedLanguage string
}

// Detection is a best-effort language guess.
type Detection struct {
	Language   string
	Confidence float64
	Method     string
}

type Translator interface {
	// Translate converts text from source to target. An empty source lets
	// the backend detect it.
	Translate(ctx context.Context, text, source, target string) (Result, error)
}

type Detector interface {
	Detect(ctx context.Context, text string) (Detection, error)
}
