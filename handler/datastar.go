package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Element patch modes re-exported for use with WithPatchMode.
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchRemove  = datastar.ElementPatchModeRemove
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
)

// IsDataStar reports whether r was issued by the DataStar client: either the
// Datastar-Request header is set, the client accepts an event stream, or a
// GET carries signals in the "datastar" query parameter.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get("Datastar-Request") == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	return r.Method == http.MethodGet && r.URL.Query().Has("datastar")
}

// WantsJSON reports whether a non-DataStar client expects a JSON answer.
func WantsJSON(r *http.Request) bool {
	if IsDataStar(r) {
		return false
	}
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
