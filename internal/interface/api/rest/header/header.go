package header

import (
	"net/http"
	"strings"
)

// HX-Trigger event the index page listens to for a total refresh.
const UpdateTotalEvent = "updateTotal"

// IsFormContentType returns true if the content type of the
// request is application/x-www-form-urlencoded.
func IsFormContentType(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(contentType, ";"); i > -1 {
		contentType = contentType[0:i]
	}
	return contentType == "application/x-www-form-urlencoded"
}

// TriggerUpdateTotal asks the page to reload the revenue total.
// Must be called before the body is written.
func TriggerUpdateTotal(w http.ResponseWriter) {
	w.Header().Set("HX-Trigger", UpdateTotalEvent)
}

// SetHTML sets the content type of an HTML response.
func SetHTML(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

// SetText sets the content type of a plain text response.
func SetText(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
}
