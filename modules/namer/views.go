package namer

import "github.com/a-h/templ"

// Candidate is one generated name with its URL-safe handle.
type Candidate struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
}

// StyleOption is a selectable style.
type StyleOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PageParams renders the full generator page.
type PageParams struct {
	Form       GenerateRequest
	Styles     []StyleOption
	Candidates []Candidate
}

// ResultsParams renders the results area. A nil Candidates shows the empty
// state hint.
type ResultsParams struct {
	Candidates []Candidate
	Style      string
}

// ToastParams renders a notification.
type ToastParams struct {
	Title   string
	Message string
	Type    string // "success", "warning" or "error"
}

// Views are the components the service renders.
type Views struct {
	Page    func(PageParams) templ.Component
	Results func(ResultsParams) templ.Component
	Toast   func(ToastParams) templ.Component
}

// Element IDs the service patches.
const (
	ResultsID        = "results"
	ToastContainerID = "toast-container"
)
