package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicy = sync.OnceValue(func() *bluemonday.Policy {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		return policy
	})
	iconPolicy = sync.OnceValue(newIconPolicy)
)

// SanitizeText cleans author markup for paragraph bodies. Line breaks are kept
// as <br>.
func SanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := textPolicy().Sanitize(trimmed)
	return strings.ReplaceAll(cleaned, "\n", "<br>")
}

// SanitizeIcon keeps inline SVG markup only.
func SanitizeIcon(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(iconPolicy().Sanitize(trimmed))
}

func newIconPolicy() *bluemonday.Policy {
	policy := bluemonday.StrictPolicy()
	policy.AllowElements("svg", "g", "path", "circle", "rect", "line", "polyline", "polygon", "title")

	policy.AllowAttrs(
		"xmlns", "viewBox", "width", "height", "fill", "stroke",
		"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
		"role", "focusable", "class",
	).OnElements("svg")

	for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon"} {
		policy.AllowAttrs(
			"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
			"points", "rx", "ry", "width", "height", "fill", "stroke",
		).OnElements(el)
	}
	return policy
}
