package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures how a component is patched into the page.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector of the element to patch.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the target.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component with its own patch options, for TemplMulti.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

// Patch builds a TemplPatch.
func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// Templ renders component as HTML, or as a single element patch for
// DataStar requests.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return TemplMulti(Patch(component, opts...))
}

// TemplMulti sends one element patch per component to DataStar clients and
// concatenates the components for regular requests.
func TemplMulti(patches ...TemplPatch) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if IsDataStar(r) {
			sse := datastar.NewSSE(w, r)
			for _, p := range patches {
				if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
					return err
				}
			}
			return nil
		}

		components := make([]templ.Component, len(patches))
		for i, p := range patches {
			components[i] = p.Component
		}
		return renderHTML(w, r, http.StatusOK, components...)
	})
}

func renderHTML(w http.ResponseWriter, r *http.Request, status int, components ...templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	for _, c := range components {
		if err := c.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}
