// Package httpapi exposes the form designer over HTTP: form records, the
// designer canvas, publishing, share pages and submissions.
package httpapi

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-formdesigner/pkg/fields"
	"github.com/goliatone/go-formdesigner/pkg/forms"
	"github.com/goliatone/go-formdesigner/pkg/render"
)

// Option customises a Handler.
type Option func(*Handler)

// WithLogger sets the handler logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithRegistry sets the field registry used for validation and designer edits.
func WithRegistry(reg *fields.Registry) Option {
	return func(h *Handler) {
		if reg != nil {
			h.registry = reg
		}
	}
}

// WithRenderers sets the renderer registry. Pages use the "html" renderer.
func WithRenderers(renderers *render.Registry) Option {
	return func(h *Handler) {
		h.renderers = renderers
	}
}

// WithBaseURL prefixes share links and the OpenAPI server entry.
func WithBaseURL(url string) Option {
	return func(h *Handler) {
		h.baseURL = url
	}
}

// WithAssets mounts static files under /assets/.
func WithAssets(files fs.FS) Option {
	return func(h *Handler) {
		h.assets = files
	}
}

// Handler serves the HTTP surface on top of a forms.Service.
type Handler struct {
	service   *forms.Service
	registry  *fields.Registry
	renderers *render.Registry
	logger    *slog.Logger
	baseURL   string
	assets    fs.FS
}

// New constructs a Handler.
func New(service *forms.Service, opts ...Option) *Handler {
	h := &Handler{
		service: service,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	if h.registry == nil {
		h.registry = fields.Default()
	}
	return h
}

// Routes builds the chi router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestContext)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/schema/content", h.contentSchema)

		r.Route("/forms", func(r chi.Router) {
			r.Post("/", h.createForm)
			r.Get("/", h.listForms)
			r.Get("/stats", h.userStats)

			r.Route("/{formID}", func(r chi.Router) {
				r.Use(formContext("formID"))
				r.Get("/", h.getForm)
				r.Put("/", h.updateContent)
				r.Patch("/publish", h.publish)
				r.Get("/stats", h.formStats)
				r.Get("/openapi", h.openAPI)
				r.Get("/schema", h.submissionSchema)
				r.Post("/submissions", h.createSubmission)
				r.Get("/submissions", h.submissionsTable)

				r.Post("/drop", h.drop)
				r.Put("/elements/{elementID}", h.updateElement)
				r.Delete("/elements/{elementID}", h.removeElement)
			})
		})
	})

	r.With(formContext("formID")).Get("/builder/{formID}", h.builderPage)
	r.With(formContext("formID")).Get("/preview/{formID}", h.previewPage)
	r.Get("/submit/{shareURL}", h.sharePage)
	r.Post("/submit/{shareURL}", h.shareSubmit)

	if h.assets != nil {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(h.assets))))
	}
	return r
}

func urlParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// Serve runs handler on addr until ctx is canceled, then shuts down within
// timeout.
func Serve(ctx context.Context, addr string, handler http.Handler, timeout time.Duration, logger *slog.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "server listening", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	logger.InfoContext(shutdownCtx, "server shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
