package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-formdesigner/pkg/capture"
	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/export"
	"github.com/goliatone/go-formdesigner/pkg/forms"
)

type createFormRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateContentRequest struct {
	Content *string `json:"content"`
}

// submissionRequest accepts either a values object or a serialized payload.
type submissionRequest struct {
	Values  map[string]string `json:"values"`
	Content string            `json:"content"`
}

type submissionResponse struct {
	FormID  string          `json:"formId"`
	Payload json.RawMessage `json:"payload"`
}

// formResponse adds the public share link to a form record.
type formResponse struct {
	forms.Form
	ShareLink string `json:"shareLink,omitempty"`
}

func (h *Handler) formResponse(form forms.Form) formResponse {
	out := formResponse{Form: form}
	if form.Published {
		out.ShareLink = h.baseURL + "/submit/" + form.ShareURL
	}
	return out
}

func (h *Handler) createForm(w http.ResponseWriter, r *http.Request) {
	var req createFormRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	form, err := h.service.CreateForm(r.Context(), userID(r), req.Name, req.Description)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.formResponse(form))
}

func (h *Handler) listForms(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListForms(r.Context(), userID(r))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	out := make([]formResponse, 0, len(list))
	for _, form := range list {
		out = append(out, h.formResponse(form))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) userStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context(), userID(r))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) getForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.service.GetForm(r.Context(), userID(r), urlParam(r, "formID"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.formResponse(form))
}

func (h *Handler) updateContent(w http.ResponseWriter, r *http.Request) {
	var req updateContentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if req.Content == nil {
		writeError(w, http.StatusBadRequest, "INVALID_CONTENT", "content is required")
		return
	}
	ctx := r.Context()
	uid, formID := userID(r), urlParam(r, "formID")
	if err := h.service.UpdateContent(ctx, uid, formID, []byte(*req.Content)); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	form, err := h.service.GetForm(ctx, uid, formID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.formResponse(form))
}

func (h *Handler) publish(w http.ResponseWriter, r *http.Request) {
	form, err := h.service.Publish(r.Context(), userID(r), urlParam(r, "formID"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.formResponse(form))
}

func (h *Handler) formStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.FormStats(r.Context(), userID(r), urlParam(r, "formID"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) submissionsTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.SubmissionsTable(r.Context(), userID(r), urlParam(r, "formID"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

// createSubmission validates a payload against a published form and records
// it through the capture engine.
func (h *Handler) createSubmission(w http.ResponseWriter, r *http.Request) {
	var req submissionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	values := req.Values
	if values == nil {
		if strings.TrimSpace(req.Content) == "" {
			writeError(w, http.StatusBadRequest, "INVALID_SUBMISSION", "values or content is required")
			return
		}
		decoded, err := capture.DecodePayload([]byte(req.Content))
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_SUBMISSION", err.Error())
			return
		}
		values = decoded
	}

	ctx := r.Context()
	form, elements, err := h.publishedElements(r, urlParam(r, "formID"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	session := h.captureSession(form.ID, elements, values)
	result, err := session.Submit(ctx)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	if result.State == capture.StateInvalid {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error:   "submission has invalid fields",
			Code:    "INVALID_SUBMISSION",
			Invalid: result.Invalid,
		})
		return
	}
	writeJSON(w, http.StatusCreated, submissionResponse{FormID: form.ID, Payload: result.Payload})
}

func (h *Handler) publishedElements(r *http.Request, formID string) (forms.Form, []element.Instance, error) {
	form, err := h.service.PublishedForm(r.Context(), formID)
	if err != nil {
		return forms.Form{}, nil, err
	}
	elements, err := element.Parse([]byte(form.Content))
	if err != nil {
		return forms.Form{}, nil, fmt.Errorf("%w: %v", forms.ErrInvalidContent, err)
	}
	return form, elements, nil
}

// captureSession prepares a session recording into the service and seeds it
// with values.
func (h *Handler) captureSession(formID string, elements []element.Instance, values map[string]string) *capture.Session {
	session := capture.NewSession(formID, elements, h.service,
		capture.WithRegistry(h.registry),
		capture.WithLogger(h.logger),
	)
	for _, inst := range elements {
		if value, ok := values[inst.ID]; ok {
			session.SubmitValue(inst.ID, value)
		}
	}
	return session
}

func (h *Handler) ownedElements(r *http.Request) (forms.Form, []element.Instance, error) {
	form, err := h.service.GetForm(r.Context(), userID(r), urlParam(r, "formID"))
	if err != nil {
		return forms.Form{}, nil, err
	}
	elements, err := element.Parse([]byte(form.Content))
	if err != nil {
		return forms.Form{}, nil, fmt.Errorf("%w: %v", forms.ErrInvalidContent, err)
	}
	return form, elements, nil
}

func (h *Handler) openAPI(w http.ResponseWriter, r *http.Request) {
	form, elements, err := h.ownedElements(r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	doc, err := export.OpenAPI(r.Context(), export.Form{
		ID:          form.ID,
		Name:        form.Name,
		Description: form.Description,
		Elements:    elements,
	}, export.OpenAPIOptions{ServerURL: h.baseURL})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) submissionSchema(w http.ResponseWriter, r *http.Request) {
	form, elements, err := h.ownedElements(r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, export.SubmissionSchema(form.Name, elements))
}

func (h *Handler) contentSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, export.ContentSchema())
}
