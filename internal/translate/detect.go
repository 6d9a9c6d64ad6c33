package translate

import (
	"context"
	"errors"
	"strings"

	"vox-translate/internal/logger"
)

// DefaultConfidenceFloor is the remote confidence below which the local
// heuristic gets a say.
const DefaultConfidenceFloor = 0.6

// FallbackDetector prefers a remote detector and falls back to DetectLocal
// when the remote is missing, failing, empty or unsure.
type FallbackDetector struct {
	remote Detector
	floor  float64
	log    logger.Logger
}

func NewFallbackDetector(remote Detector, log logger.Logger) *FallbackDetector {
	return &FallbackDetector{
		remote: remote,
		floor:  DefaultConfidenceFloor,
		log:    logger.OrNoOp(log),
	}
}

func (d *FallbackDetector) Detect(ctx context.Context, text string) (Detection, error) {
	if strings.TrimSpace(text) == "" {
		return Detection{Language: "en", Method: "default"}, nil
	}
	if d.remote == nil {
		return Detection{Language: DetectLocal(text), Confidence: 0.8, Method: "local"}, nil
	}

	remote, err := d.remote.Detect(ctx, text)
	switch {
	case errors.Is(err, ErrNoDetection):
		return Detection{Language: DetectLocal(text), Confidence: 0.8, Method: "local"}, nil
	case err != nil:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Detection{}, ctxErr
		}
		d.log.Warning("Detector", "remote detection failed, using local heuristic", map[string]interface{}{
			"error": err.Error(),
		})
		return Detection{Language: DetectLocal(text), Confidence: 0.7, Method: "local-fallback"}, nil
	}

	if remote.Confidence < d.floor {
		if local := DetectLocal(text); local != remote.Language {
			d.log.Debug("Detector", "low confidence remote guess overridden", map[string]interface{}{
				"remote":     remote.Language,
				"confidence": remote.Confidence,
				"local":      local,
			})
			return Detection{Language: local, Confidence: 0.7, Method: "combined"}, nil
		}
	}

	remote.Method = "api"
	return remote, nil
}
