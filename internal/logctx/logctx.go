// Package logctx carries request and form attributes through a context and
// adds them to every slog record emitted with that context.
package logctx

import (
	"context"
	"log/slog"
)

// Handler wraps another slog.Handler and appends the "req" and "form" groups
// found in the record context.
type Handler struct {
	slog.Handler
}

// New wraps h.
func New(h slog.Handler) Handler {
	return Handler{Handler: h}
}

func (h Handler) Handle(ctx context.Context, r slog.Record) error {
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		r.AddAttrs(slog.Group("req",
			slog.String("id", rd.RequestID),
			slog.String("method", rd.Method),
			slog.String("path", rd.Path),
			slog.String("remote_addr", rd.RemoteAddr),
			slog.String("user_agent", rd.UserAgent),
		))
	}

	if fd, ok := ctx.Value(formDataKey{}).(*FormData); ok {
		r.AddAttrs(slog.Group("form",
			slog.String("id", fd.FormID),
			slog.String("user_id", fd.UserID),
		))
	}

	return h.Handler.Handle(ctx, r)
}

func (h Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h Handler) WithGroup(name string) slog.Handler {
	return Handler{Handler: h.Handler.WithGroup(name)}
}

type requestDataKey struct{}

// RequestData describes the inbound HTTP request.
type RequestData struct {
	RequestID  string
	Method     string
	Path       string
	RemoteAddr string
	UserAgent  string
}

func WithRequestData(ctx context.Context, data *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, data)
}

// RequestDataFrom returns the request data stored in ctx, if any.
func RequestDataFrom(ctx context.Context) (*RequestData, bool) {
	rd, ok := ctx.Value(requestDataKey{}).(*RequestData)
	return rd, ok
}

type formDataKey struct{}

// FormData identifies the form a request operates on and the acting user.
type FormData struct {
	FormID string
	UserID string
}

func WithFormData(ctx context.Context, data *FormData) context.Context {
	return context.WithValue(ctx, formDataKey{}, data)
}
