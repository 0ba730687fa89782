package httpapi

import (
	"errors"
	"net/http"

	"github.com/goliatone/go-formdesigner/pkg/capture"
	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/forms"
	"github.com/goliatone/go-formdesigner/pkg/render"
)

// pageRenderer is the renderer used for HTML pages.
const pageRenderer = "html"

func renderForm(form forms.Form, elements []element.Instance) render.Form {
	return render.Form{
		ID:          form.ID,
		Name:        form.Name,
		Description: form.Description,
		Elements:    elements,
	}
}

func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, status int, form render.Form, opts render.RenderOptions) {
	asJSON, ok := negotiatePage(w, r)
	if !ok {
		return
	}
	if asJSON {
		views, err := render.Views(h.registry, form, opts)
		if err != nil {
			h.writeDomainError(w, r, err)
			return
		}
		writeJSON(w, status, pageViews{FormID: form.ID, Mode: opts.Mode, Views: views})
		return
	}
	if h.renderers == nil {
		http.Error(w, "renderers not configured", http.StatusInternalServerError)
		return
	}
	out, contentType, err := h.renderers.Render(r.Context(), pageRenderer, form, opts)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "page render failed", "mode", opts.Mode, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

// writePageError maps domain errors onto plain-text responses for pages.
func (h *Handler) writePageError(w http.ResponseWriter, r *http.Request, err error) {
	status, _ := statusOf(err)
	switch {
	case errors.Is(err, forms.ErrNotPublished):
		// Unpublished share links look like unknown ones.
		status = http.StatusNotFound
	case status == http.StatusInternalServerError:
		h.logger.ErrorContext(r.Context(), "page failed", "error", err)
	}
	http.Error(w, http.StatusText(status), status)
}

func (h *Handler) builderPage(w http.ResponseWriter, r *http.Request) {
	form, elements, err := h.ownedElements(r)
	if err != nil {
		h.writePageError(w, r, err)
		return
	}
	mode := render.ModeDesigner
	if r.URL.Query().Get("panel") == "properties" {
		mode = render.ModeProperties
	}
	h.writePage(w, r, http.StatusOK, renderForm(form, elements), render.RenderOptions{
		Mode:       mode,
		SelectedID: r.URL.Query().Get("selected"),
		Locale:     r.URL.Query().Get("locale"),
	})
}

func (h *Handler) previewPage(w http.ResponseWriter, r *http.Request) {
	form, elements, err := h.ownedElements(r)
	if err != nil {
		h.writePageError(w, r, err)
		return
	}
	h.writePage(w, r, http.StatusOK, renderForm(form, elements), render.RenderOptions{
		Mode:   render.ModePreview,
		Locale: r.URL.Query().Get("locale"),
	})
}

// sharePage serves the submission page of a published form and counts the
// visit.
func (h *Handler) sharePage(w http.ResponseWriter, r *http.Request) {
	shareURL := urlParam(r, "shareURL")
	form, err := h.service.OpenShared(r.Context(), shareURL, userID(r))
	if err != nil {
		h.writePageError(w, r, err)
		return
	}
	elements, err := element.Parse([]byte(form.Content))
	if err != nil {
		h.writePageError(w, r, err)
		return
	}
	h.writePage(w, r, http.StatusOK, renderForm(form, elements), render.RenderOptions{
		Mode:   render.ModeSubmit,
		Action: "/submit/" + shareURL,
		Locale: r.URL.Query().Get("locale"),
	})
}

// shareSubmit validates a posted submission page. Invalid posts re-render the
// form with the failing fields flagged.
func (h *Handler) shareSubmit(w http.ResponseWriter, r *http.Request) {
	shareURL := urlParam(r, "shareURL")
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	form, err := h.service.SharedForm(ctx, shareURL)
	if err != nil {
		h.writePageError(w, r, err)
		return
	}
	elements, err := element.Parse([]byte(form.Content))
	if err != nil {
		h.writePageError(w, r, err)
		return
	}

	session := h.captureSession(form.ID, elements, postedValues(r, elements))
	result, err := session.Submit(ctx)
	opts := render.RenderOptions{
		Mode:    render.ModeSubmit,
		Session: session,
		Action:  "/submit/" + shareURL,
		Locale:  r.URL.Query().Get("locale"),
	}
	switch {
	case err != nil:
		h.logger.WarnContext(ctx, "shared submission failed", "error", err)
		status, _ := statusOf(err)
		h.writePage(w, r, status, renderForm(form, elements), opts)
	case result.State == capture.StateInvalid:
		h.writePage(w, r, http.StatusUnprocessableEntity, renderForm(form, elements), opts)
	default:
		h.writePage(w, r, http.StatusOK, renderForm(form, elements), opts)
	}
}

// postedValues reads the input elements from a submitted page. Unchecked
// checkboxes are absent from the body and count as "false".
func postedValues(r *http.Request, elements []element.Instance) map[string]string {
	values := make(map[string]string, len(elements))
	for _, inst := range elements {
		if !inst.Type.IsInput() {
			continue
		}
		if inst.Type == element.TypeCheckbox {
			if r.PostForm.Get(inst.ID) == "true" {
				values[inst.ID] = "true"
			} else {
				values[inst.ID] = "false"
			}
			continue
		}
		if posted, ok := r.PostForm[inst.ID]; ok && len(posted) > 0 {
			values[inst.ID] = posted[0]
		}
	}
	return values
}
