package views

import (
	"encoding/json"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/ideabloom/modules/namer"
	"github.com/dmitrymomot/ideabloom/pkg/namegen"
)

// Title is shown in the page header and the browser tab.
const Title = "Idea Bloom Craft"

type field struct {
	name        string
	label       string
	placeholder string
	value       string
}

// Page renders the generator form and the results area.
func Page(p namer.PageParams) templ.Component {
	return Layout(Title, component(func(h *html) {
		h.raw(`<main><header><h1>`)
		h.text(Title)
		h.raw(`</h1><p class="subtitle">Generate unique, catchy names for your next big project</p></header>`)
		h.render(form(p))
		h.render(Results(namer.ResultsParams{Candidates: p.Candidates}))
		h.raw(`</main>`)
		h.render(toastContainer())
	}))
}

func form(p namer.PageParams) templ.Component {
	return component(func(h *html) {
		style := p.Form.Style
		if style == "" {
			style = namegen.DefaultStyle.String()
		}

		h.raw(`<form class="card" method="post" action="/generate" data-on:submit="@post('/generate')" data-indicator:_loading`)
		h.attr("data-signals", signals(p.Form, style))
		h.raw(`><div class="grid">`)

		for _, f := range []field{
			{"industry", "Industry", "e.g. Technology, Food, Health", p.Form.Industry},
			{"theme", "Theme/Purpose", "e.g. Blog, App, E-commerce", p.Form.Theme},
			{"attributes", "Key Attributes (comma-separated)", "e.g. innovative, sustainable, creative", p.Form.Attributes},
		} {
			h.raw(`<div><label`)
			h.attr("for", f.name)
			h.raw(`>`)
			h.text(f.label)
			h.raw(`</label><input type="text"`)
			h.attr("id", f.name)
			h.attr("name", f.name)
			h.attr("placeholder", f.placeholder)
			h.attr("value", f.value)
			h.attr("maxlength", strconv.Itoa(namer.MaxFieldLength))
			h.raw(` data-bind:` + f.name + `></div>`)
		}

		h.raw(`<div><label for="style">Naming Style</label><select id="style" name="style" data-bind:style>`)
		for _, opt := range p.Styles {
			h.raw(`<option`)
			h.attr("value", opt.Value)
			if opt.Value == style {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(opt.Label)
			h.raw(`</option>`)
		}
		h.raw(`</select></div></div>`)

		h.raw(`<button type="submit" class="primary" data-attr:disabled="$_loading">`)
		h.raw(`<span data-show="!$_loading">Generate Names</span>`)
		h.raw(`<span data-show="$_loading" style="display:none">Generating...</span>`)
		h.raw(`</button></form>`)
	})
}

// signals is the initial DataStar store. Signals starting with an underscore
// stay on the client.
func signals(f namer.GenerateRequest, style string) string {
	b, err := json.Marshal(map[string]string{
		"industry":   f.Industry,
		"theme":      f.Theme,
		"attributes": f.Attributes,
		"style":      style,
		"_copied":    "",
	})
	if err != nil {
		return "{}"
	}
	return string(b)
}

// Results renders the candidate grid, or the empty state hint before the
// first batch. The root element keeps the results ID so it can be patched.
func Results(p namer.ResultsParams) templ.Component {
	return component(func(h *html) {
		h.raw(`<section class="card"`)
		h.attr("id", namer.ResultsID)
		if p.Style != "" {
			h.attr("data-style", p.Style)
		}
		h.raw(`>`)

		if len(p.Candidates) == 0 {
			h.raw(`<p class="empty">Fill in the details and click &#34;Generate Names&#34; to see suggestions.</p></section>`)
			return
		}

		h.raw(`<h2>Name Suggestions</h2><div class="grid">`)
		for _, c := range p.Candidates {
			h.raw(`<div class="name"><div><strong>`)
			h.text(c.Name)
			h.raw(`</strong><small>@`)
			h.text(c.Handle)
			h.raw(`</small></div><button type="button" class="copy"`)
			h.attr("data-name", c.Name)
			h.raw(` data-on:click="navigator.clipboard.writeText(el.dataset.name); $_copied = el.dataset.name; setTimeout(() => $_copied = '', 2000)">Copy</button></div>`)
		}
		h.raw(`</div></section>`)
	})
}

// toastContainer holds server toasts and the client-side copy notification.
func toastContainer() templ.Component {
	return component(func(h *html) {
		h.raw(`<div`)
		h.attr("id", namer.ToastContainerID)
		h.raw(` aria-live="polite">`)
		h.raw(`<div class="toast toast-success" style="display:none" data-show="$_copied !== ''">`)
		h.raw(`<strong>Copied!</strong><p data-text="'&#34;' + $_copied + '&#34; copied to clipboard'"></p></div>`)
		h.raw(`</div>`)
	})
}
