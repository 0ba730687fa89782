package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/goliatone/go-formdesigner/pkg/designer"
	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/forms"
	"github.com/goliatone/go-formdesigner/pkg/placement"
)

type dropRequest struct {
	Source struct {
		Type      string `json:"type"`
		ElementID string `json:"elementId"`
	} `json:"source"`
	Target struct {
		ElementID string `json:"elementId"`
		Half      string `json:"half"`
	} `json:"target"`
}

type canvasResponse struct {
	Mutation  string          `json:"mutation,omitempty"`
	Index     int             `json:"index"`
	ElementID string          `json:"elementId,omitempty"`
	Elements  json.RawMessage `json:"elements"`
}

// designerSession opens the canvas of a form owned by the caller. Saves go
// back through the service ownership checks.
func (h *Handler) designerSession(r *http.Request) (*designer.Session, error) {
	uid := userID(r)
	form, err := h.service.GetForm(r.Context(), uid, urlParam(r, "formID"))
	if err != nil {
		return nil, err
	}
	session := designer.NewSession(form.ID,
		designer.WithRegistry(h.registry),
		designer.WithPersister(h.service.Persister(uid)),
	)
	if err := session.Load([]byte(form.Content)); err != nil {
		return nil, fmt.Errorf("%w: %v", forms.ErrInvalidContent, err)
	}
	return session, nil
}

func (h *Handler) writeCanvas(w http.ResponseWriter, r *http.Request, session *designer.Session, resp canvasResponse) {
	content, err := session.Content()
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	resp.Elements = content
	writeJSON(w, http.StatusOK, resp)
}

func parseDrop(req dropRequest) (placement.Source, placement.Target, error) {
	var src placement.Source
	switch {
	case req.Source.Type != "":
		typ, err := element.ParseType(req.Source.Type)
		if err != nil {
			return src, placement.Target{}, err
		}
		src = placement.PaletteSource(typ)
	case req.Source.ElementID != "":
		src = placement.ElementSource(req.Source.ElementID)
	default:
		return src, placement.Target{}, fmt.Errorf("source type or elementId is required")
	}

	if req.Target.ElementID == "" {
		return src, placement.CanvasTarget(), nil
	}
	half, err := placement.ParseHalf(req.Target.Half)
	if err != nil {
		return src, placement.Target{}, err
	}
	return src, placement.ElementTarget(req.Target.ElementID, half), nil
}

// drop applies one drag-and-drop gesture to the stored canvas.
func (h *Handler) drop(w http.ResponseWriter, r *http.Request) {
	var req dropRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	src, tgt, err := parseDrop(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_DROP", err.Error())
		return
	}

	session, err := h.designerSession(r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	mutation, err := session.Drop(src, tgt)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	resp := canvasResponse{Mutation: mutation.Kind.String(), Index: mutation.Index, ElementID: mutation.ElementID}
	if mutation.Kind == placement.MutationInsert {
		resp.ElementID = mutation.Element.ID
	}
	if mutation.Kind != placement.MutationNone {
		if err := session.Save(r.Context()); err != nil {
			h.writeDomainError(w, r, err)
			return
		}
	}
	h.writeCanvas(w, r, session, resp)
}

// updateElement replaces the attributes of one element after schema checks.
func (h *Handler) updateElement(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ExtraAttributes json.RawMessage `json:"extraAttributes"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}
	if len(body.ExtraAttributes) == 0 || string(body.ExtraAttributes) == "null" {
		writeError(w, http.StatusBadRequest, "INVALID_ATTRIBUTES", "extraAttributes is required")
		return
	}
	session, err := h.designerSession(r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	id := urlParam(r, "elementID")
	current, ok := session.Store().Get(id)
	if !ok {
		h.writeDomainError(w, r, fmt.Errorf("%w: %q", designer.ErrElementNotFound, id))
		return
	}
	attrs, err := element.DecodeAttributes(current.Type, body.ExtraAttributes)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ATTRIBUTES", err.Error())
		return
	}
	if err := session.ApplyProperties(id, attrs); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	if err := session.Save(r.Context()); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeCanvas(w, r, session, canvasResponse{Index: session.Store().Index(id), ElementID: id})
}

func (h *Handler) removeElement(w http.ResponseWriter, r *http.Request) {
	session, err := h.designerSession(r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	id := urlParam(r, "elementID")
	index := session.Store().Index(id)
	if index < 0 {
		h.writeDomainError(w, r, fmt.Errorf("%w: %q", designer.ErrElementNotFound, id))
		return
	}
	session.Remove(id)
	if err := session.Save(r.Context()); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeCanvas(w, r, session, canvasResponse{Mutation: "remove", Index: index, ElementID: id})
}
