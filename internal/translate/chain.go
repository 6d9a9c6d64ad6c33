package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vox-translate/internal/logger"
)

// Backend is a named link of a Chain.
type Backend struct {
	Name       string
	Translator Translator
}

// Chain tries its backends in order and returns the first success.
type Chain struct {
	backends []Backend
	log      logger.Logger
}

func NewChain(log logger.Logger, backends ...Backend) *Chain {
	return &Chain{backends: backends, log: logger.OrNoOp(log)}
}

func (c *Chain) Translate(ctx context.Context, text, source, target string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyText
	}
	if source != "" && sameLanguage(source, target) {
		return Result{Text: text, Method: "identity", DetectedLanguage: normalizeCode(source)}, nil
	}

	var errs []error
	for _, b := range c.backends {
		start := time.Now()
		res, err := b.Translator.Translate(ctx, text, source, target)
		if err == nil {
			c.log.Debug("Translator", "translation completed", map[string]interface{}{
				"backend":  b.Name,
				"source":   source,
				"target":   target,
				"duration": time.Since(start).String(),
			})
			return res, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		if !errors.Is(err, ErrNoTranslation) {
			c.log.Warning("Translator", "backend failed", map[string]interface{}{
				"backend": b.Name,
				"error":   err.Error(),
			})
		}
		errs = append(errs, fmt.Errorf("%s: %w", b.Name, err))
	}

	if len(errs) == 0 {
		return Result{}, ErrServiceUnavailable
	}
	return Result{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, errors.Join(errs...))
}
