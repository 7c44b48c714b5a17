package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// Parser renders the journal's free-text fields. Raw HTML in the source is
// dropped (goldmark's default), so output is safe to embed.
type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			&frontmatter.Extender{},
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
			goldmarkhtml.WithXHTML(),
		),
	)

	return &Parser{
		md: md,
	}
}

func (p *Parser) Parse(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := p.md.Convert(source, &buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderString renders a note; empty input renders to an empty string.
func (p *Parser) RenderString(source string) (string, error) {
	if source == "" {
		return "", nil
	}
	html, err := p.Parse([]byte(source))
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(html)), nil
}

func (p *Parser) ParseWithFrontmatter(source []byte) (content []byte, meta map[string]any, err error) {
	context := parser.NewContext()
	var buf bytes.Buffer

	err = p.md.Convert(source, &buf, parser.WithContext(context))
	if err != nil {
		return nil, nil, err
	}

	data := frontmatter.Get(context)
	if data == nil {
		meta = make(map[string]any)
	} else {
		err = data.Decode(&meta)
		if err != nil {
			meta = make(map[string]any)
		}
	}

	return buf.Bytes(), meta, nil
}

// DecodeFrontmatter decodes the frontmatter block of source into v. It
// reports false when source has no frontmatter.
func (p *Parser) DecodeFrontmatter(source []byte, v any) (bool, error) {
	context := parser.NewContext()
	p.md.Parser().Parse(text.NewReader(source), parser.WithContext(context))

	data := frontmatter.Get(context)
	if data == nil {
		return false, nil
	}

	err := data.Decode(v)
	if err != nil {
		return true, err
	}
	return true, nil
}
