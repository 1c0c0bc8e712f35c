package web

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/northlight-studio/website/pkg/clientip"
	"github.com/northlight-studio/website/pkg/httpserver"
	"github.com/northlight-studio/website/pkg/logger"
	"github.com/northlight-studio/website/pkg/requestid"
)

// NewRouter wires the site's routes onto a chi router.
func NewRouter(h *Handler, log *slog.Logger) chi.Router {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(recoverMiddleware(log))
	r.Use(logMiddleware(log))

	r.Get("/", h.home)
	r.Get("/about", h.about)
	r.Get("/work", h.workIndex)
	r.Get("/work/{slug}", h.workItem)
	r.Get("/blog", h.blogIndex)
	r.Get("/blog/{slug}", h.blogPost)
	r.Get("/contact", h.contactForm)
	r.Post("/contact", h.contactSubmit)
	r.Get("/privacy", h.privacy)
	r.Get("/demo", h.demo)
	r.Get("/demo/gradient-fade", h.demoGradient)

	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), log))

	staticFS, err := fs.Sub(assets, "static")
	if err != nil {
		// The static directory is embedded at compile time; this cannot
		// fail at runtime.
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.NotFound(h.notFound)

	return r
}

// statusWriter captures the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func logMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("client_ip", clientip.Get(r)),
			)
		})
	}
}

func recoverMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.ErrorContext(r.Context(), "panic in handler",
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())),
						logger.Component("web"),
					)
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
