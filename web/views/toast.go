package views

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/ideabloom/handler"
	"github.com/dmitrymomot/ideabloom/modules/namer"
)

// Toast renders a notification that fades out by itself.
func Toast(p namer.ToastParams) templ.Component {
	return component(func(h *html) {
		kind := p.Type
		switch kind {
		case "success", "warning", "error":
		default:
			kind = "success"
		}
		h.raw(`<div role="status" onanimationend="this.remove()"`)
		h.attr("class", "toast toast-"+kind)
		h.raw(`><strong>`)
		h.text(p.Title)
		h.raw(`</strong>`)
		if p.Message != "" {
			h.raw(`<p>`)
			h.text(p.Message)
			h.raw(`</p>`)
		}
		h.raw(`</div>`)
	})
}

// ErrorToast adapts handler error toasts.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	title := "Something went wrong"
	if p.Type == "warning" {
		title = "Please check your input"
	}
	return Toast(namer.ToastParams{Title: title, Message: p.Message, Type: p.Type})
}

// ErrorPage renders a full error page.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return Layout("Error | "+Title, component(func(h *html) {
		h.raw(`<main><section class="card"><h1>`)
		h.text(strconv.Itoa(p.StatusCode) + " " + http.StatusText(p.StatusCode))
		h.raw(`</h1><p>`)
		h.text(p.Error)
		h.raw(`</p>`)
		if p.RequestID != "" {
			h.raw(`<p><small>Request ID: `)
			h.text(p.RequestID)
			h.raw(`</small></p>`)
		}
		h.raw(`<p><a href="/">Back to the generator</a></p></section></main>`)
	}))
}
