package views

import "github.com/a-h/templ"

// DataStarScript is the client bundle loaded by every page.
const DataStarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

const styles = `
*{box-sizing:border-box}
body{margin:0;font-family:system-ui,-apple-system,sans-serif;background:linear-gradient(135deg,#f5f3ff,#ecfeff);color:#1f2937;min-height:100vh}
main{max-width:960px;margin:0 auto;padding:3rem 1.25rem}
header{text-align:center;margin-bottom:2.5rem}
h1{font-size:2.5rem;margin:0 0 .5rem;background:linear-gradient(90deg,#7c3aed,#0891b2);-webkit-background-clip:text;background-clip:text;color:transparent}
.subtitle{color:#6b7280;margin:0}
.card{background:#fff;border-radius:1rem;box-shadow:0 10px 30px rgba(0,0,0,.06);padding:1.5rem;margin-bottom:2rem}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(200px,1fr));gap:1rem}
label{display:block;font-weight:600;font-size:.9rem;margin-bottom:.35rem}
input,select{width:100%;padding:.6rem .75rem;border:1px solid #d1d5db;border-radius:.5rem;font:inherit}
button{cursor:pointer;border:0;border-radius:.5rem;font:inherit}
.primary{margin-top:1.25rem;width:100%;padding:.8rem;background:#7c3aed;color:#fff;font-weight:600}
.primary[disabled]{opacity:.6;cursor:wait}
.name{display:flex;justify-content:space-between;align-items:center;border:1px solid #e5e7eb;border-radius:.75rem;padding:1rem}
.name strong{display:block;font-size:1.1rem}
.name small{color:#6b7280}
.copy{background:#f3f4f6;padding:.4rem .7rem}
.empty{text-align:center;color:#6b7280}
#toast-container{position:fixed;top:1rem;right:1rem;display:flex;flex-direction:column;gap:.5rem;z-index:10}
.toast{min-width:240px;padding:.75rem 1rem;border-radius:.5rem;color:#fff;box-shadow:0 6px 20px rgba(0,0,0,.15);animation:toast 4s forwards}
.toast p{margin:.25rem 0 0;font-size:.9rem}
.toast-success{background:#059669}.toast-warning{background:#d97706}.toast-error{background:#dc2626}
@keyframes toast{0%{opacity:0;transform:translateY(-.5rem)}10%,85%{opacity:1;transform:none}100%{opacity:0}}
`

// Layout wraps body in the HTML document shell.
func Layout(title string, body templ.Component) templ.Component {
	return component(func(h *html) {
		h.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title><style>`)
		h.raw(styles)
		h.raw(`</style><script type="module"`)
		h.attr("src", DataStarScript)
		h.raw(`></script></head><body>`)
		h.render(body)
		h.raw(`</body></html>`)
	})
}
