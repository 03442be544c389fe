package binder

import (
	"mime"
	"net/http"
	"strings"
)

// mediaType returns the lowercased media type of the request body without
// parameters, or "" when the header is absent or malformed.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return strings.ToLower(mt)
}

// hasBody reports whether the method is expected to carry a request body.
func hasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodDelete:
		return false
	}
	return r.Body != nil && r.Body != http.NoBody
}

// isDataStar reports whether the request was issued by the DataStar client.
func isDataStar(r *http.Request) bool {
	if r.Header.Get("Datastar-Request") == "true" {
		return true
	}
	return r.Method == http.MethodGet && r.URL.Query().Has("datastar")
}
