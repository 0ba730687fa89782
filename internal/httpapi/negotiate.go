package httpapi

import (
	"errors"
	"net/http"

	"github.com/elnormous/contenttype"

	"github.com/goliatone/go-formdesigner/pkg/fields"
	"github.com/goliatone/go-formdesigner/pkg/render"
)

var (
	jsonMediaType = contenttype.NewMediaType("application/json")
	htmlMediaType = contenttype.NewMediaType("text/html")
	// Listed first, HTML wins ties.
	pageMediaTypes = []contenttype.MediaType{htmlMediaType, jsonMediaType}
)

var errUnsupportedMediaType = errors.New("httpapi: content-type must be application/json")

// requireJSON rejects bodies declared with a non-JSON Content-Type. A missing
// header is accepted.
func requireJSON(r *http.Request) error {
	if r.Header.Get("Content-Type") == "" {
		return nil
	}
	ctype, err := contenttype.GetMediaType(r)
	if err != nil || !ctype.Matches(jsonMediaType) {
		return errUnsupportedMediaType
	}
	return nil
}

// writeDecodeError reports a request body decodeJSON refused.
func writeDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errUnsupportedMediaType) {
		writeError(w, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
}

// pageViews is the JSON representation of a page: the field views the HTML
// renderer would lay out.
type pageViews struct {
	FormID string        `json:"formId"`
	Mode   render.Mode   `json:"mode"`
	Views  []fields.View `json:"views"`
}

// negotiatePage reports whether the client asked for the JSON representation
// of a page. ok is false when neither HTML nor JSON is acceptable; a 406 has
// been written by then.
func negotiatePage(w http.ResponseWriter, r *http.Request) (asJSON, ok bool) {
	if r.Header.Get("Accept") == "" {
		return false, true
	}
	accepted, _, err := contenttype.GetAcceptableMediaType(r, pageMediaTypes)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotAcceptable), http.StatusNotAcceptable)
		return false, false
	}
	return accepted.Matches(jsonMediaType), true
}
