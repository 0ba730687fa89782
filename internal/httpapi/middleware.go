package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-formdesigner/internal/logctx"
)

// requestContext stores the request attributes for logctx and logs the
// outcome of every request.
func (h *Handler) requestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logctx.WithRequestData(r.Context(), &logctx.RequestData{
			RequestID:  middleware.GetReqID(r.Context()),
			Method:     r.Method,
			Path:       r.URL.Path,
			RemoteAddr: r.RemoteAddr,
			UserAgent:  r.UserAgent(),
		})

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.logger.DebugContext(ctx, "request served",
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

// formContext tags the request with the form id from the route and the
// acting user.
func formContext(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logctx.WithFormData(r.Context(), &logctx.FormData{
				FormID: urlParam(r, param),
				UserID: userID(r),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
