// Package api exposes translation, detection and the language catalog over
// HTTP for browser and script clients.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"vox-translate/internal/catalog"
	"vox-translate/internal/logger"
	"vox-translate/internal/translate"
)

type Options struct {
	AllowedOrigins []string
	// RateLimit is requests per RateWindow per client IP; zero disables it.
	RateLimit  int
	RateWindow time.Duration
}

// NewRouter wires the API routes. Any of translator and detector may be
// nil, in which case the matching route answers 503.
func NewRouter(tr translate.Translator, det translate.Detector, cat *catalog.Catalog, log logger.Logger, opts Options) http.Handler {
	h := &handlers{
		translator: tr,
		detector:   det,
		catalog:    cat,
		logger:     logger.OrNoOp(log),
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(ar chi.Router) {
		if opts.RateLimit > 0 {
			window := opts.RateWindow
			if window <= 0 {
				window = time.Minute
			}
			ar.Use(httprate.LimitByIP(opts.RateLimit, window))
		}
		ar.Post("/translate", h.Translate)
		ar.Post("/detect", h.Detect)
		ar.Get("/languages", h.Languages)
	})

	return r
}

func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Debug("API", "request served", map[string]interface{}{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
				"request_id": middleware.GetReqID(r.Context()),
			})
		})
	}
}
