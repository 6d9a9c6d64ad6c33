// Package ocr extracts text from image files with Tesseract after an
// OpenCV cleanup pass.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/otiai10/gosseract/v2"

	"vox-translate/internal/logger"
)

var (
	ErrImageRead   = errors.New("cannot read image")
	ErrRecognition = errors.New("text recognition failed")
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tif", ".tiff", ".webp"}

// ImageExtensions lists what the file picker should offer.
func ImageExtensions() []string {
	out := make([]string, len(imageExtensions))
	copy(out, imageExtensions)
	return out
}

func IsImagePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Tesseract reads text out of images.
type Tesseract struct {
	languages  []string
	preprocess bool
	logger     logger.Logger
}

func NewTesseract(languages []string, preprocess bool, log logger.Logger) *Tesseract {
	if len(languages) == 0 {
		languages = []string{"vie", "eng"}
	}
	return &Tesseract{languages: languages, preprocess: preprocess, logger: logger.OrNoOp(log)}
}

func (t *Tesseract) ExtractText(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageRead, err)
	}

	t.logger.Debug("OCR", "image loaded", map[string]interface{}{
		"path": filepath.Base(path),
		"size": humanize.Bytes(uint64(len(data))),
	})

	return t.ExtractBytes(ctx, data)
}

// prepare binarizes data, passing through formats OpenCV cannot decode.
func (t *Tesseract) prepare(data []byte) ([]byte, error) {
	cleaned, level, err := Preprocess(data)
	if errors.Is(err, errUndecodable) {
		t.logger.Debug("OCR", "skipping preprocessing", map[string]interface{}{
			"reason": err.Error(),
		})
		return data, nil
	}
	if err != nil {
		return nil, err
	}
	t.logger.Debug("OCR", "image binarized", map[string]interface{}{
		"otsu_level": level,
	})
	return cleaned, nil
}

func (t *Tesseract) ExtractBytes(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrImageRead)
	}

	if t.preprocess {
		prepared, err := t.prepare(data)
		if err != nil {
			return "", err
		}
		data = prepared
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.languages...); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognition, err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageRead, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognition, err)
	}

	text = strings.TrimSpace(text)
	t.logger.Info("OCR", "text extracted", map[string]interface{}{
		"chars": len([]rune(text)),
	})
	return text, nil
}
