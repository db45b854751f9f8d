package render

import (
	"net/http"
	"strings"
)

// HXRequestHeader is the header htmx sets on every request it issues.
const HXRequestHeader = "HX-Request"

// IsHTMXRequest reports whether the request was initiated by htmx.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(HXRequestHeader), "true")
}
