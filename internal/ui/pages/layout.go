package pages

import (
	"github.com/a-h/templ"
	"github.com/kristofferme/leader/internal/ctxkeys"
)

const (
	htmxScript     = "https://cdn.jsdelivr.net/npm/htmx.org@2.0.4/dist/htmx.min.js"
	chartScript    = "https://cdn.jsdelivr.net/npm/chart.js@4.4.7/dist/chart.umd.min.js"
	tailwindScript = "https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"
)

// Layout wraps content in the HTML document shell.
func Layout(title string, content templ.Component) templ.Component {
	return component(func(m *markup) {
		nonce := templ.GetNonce(m.ctx)

		appName := "Leader Compass"
		if cfg := ctxkeys.Config(m.ctx); cfg != nil && cfg.AppName != "" {
			appName = cfg.AppName
		}
		if title != "" {
			title += " · " + appName
		} else {
			title = appName
		}

		m.raw("<!DOCTYPE html>")
		m.open("html", "lang", "en")
		m.open("head")
		m.raw(`<meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.el("title", "", title)
		m.raw(`<link rel="stylesheet" href="/assets/css/app.css">`)
		for _, src := range []string{tailwindScript, htmxScript, chartScript} {
			m.open("script", "src", src, "nonce", nonce)
			m.close("script")
		}
		m.open("script", "src", "/assets/js/timeline.js", "nonce", nonce, "defer", "")
		m.close("script")
		m.close("head")

		headers := jsonAttr(map[string]string{"X-CSRF-Token": ctxkeys.CSRFToken(m.ctx)})
		m.open("body", "class", "min-h-screen bg-slate-950 text-slate-100 antialiased", "hx-headers", headers)
		m.open("main", "class", "mx-auto max-w-6xl px-4 py-8")
		m.open("header", "class", "mb-6 flex items-baseline justify-between")
		m.el("h1", "text-2xl font-semibold tracking-tight", appName)
		m.close("header")
		m.render(content)
		m.close("main")
		m.close("body")
		m.close("html")
	})
}

// csrfField is the hidden token for forms posted without htmx.
func csrfField(m *markup) {
	m.open("input", "type", "hidden", "name", "csrf_token", "value", ctxkeys.CSRFToken(m.ctx))
}
