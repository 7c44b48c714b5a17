package pages

import (
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"
)

// markup writes HTML and keeps the first write error.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

// component adapts a markup-writing function to templ.Component.
func component(fn func(m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{ctx: ctx, w: w}
		fn(m)
		return m.err
	})
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// text writes s escaped.
func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (m *markup) attr(name, value string) {
	m.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (m *markup) render(c templ.Component) {
	if m.err != nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

// open writes an opening tag with attributes given as name/value pairs.
func (m *markup) open(tag string, attrs ...string) {
	m.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		m.attr(attrs[i], attrs[i+1])
	}
	m.raw(">")
}

func (m *markup) close(tag string) {
	m.raw("</" + tag + ">")
}

// el writes a complete element with escaped text content.
func (m *markup) el(tag, class, content string) {
	if class == "" {
		m.open(tag)
	} else {
		m.open(tag, "class", class)
	}
	m.text(content)
	m.close(tag)
}

// jsonAttr encodes values for hx-vals and hx-headers.
func jsonAttr(values map[string]string) string {
	b, err := json.Marshal(values)
	if err != nil {
		return "{}"
	}
	return string(b)
}
