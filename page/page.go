// Package page loads the Markdown document shown by copylink and extracts
// the links that become copy buttons.
package page

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Target is one copyable link found on the page.
type Target struct {
	Label   string
	Payload string
}

type Page struct {
	Path    string
	source  []byte
	title   string
	targets []Target

	style    string
	rendered map[int]string // width -> rendered body
}

// Load reads and parses a Markdown file.
func Load(path string) (Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Page{}, fmt.Errorf("reading page: %w", err)
	}
	p := Parse(data)
	p.Path = path
	if p.title == "" {
		p.title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// Parse builds a Page from Markdown source.
func Parse(src []byte) Page {
	md := goldmark.New(goldmark.WithExtensions(extension.Linkify))
	doc := md.Parser().Parse(text.NewReader(src))

	p := Page{source: src, rendered: make(map[int]string)}
	seen := make(map[string]bool)
	add := func(label, payload string) {
		if payload == "" || seen[payload] {
			return
		}
		seen[payload] = true
		if label == "" {
			label = payload
		}
		p.targets = append(p.targets, Target{Label: label, Payload: payload})
	}

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 1 && p.title == "" {
				p.title = plainText(node, src)
			}
		case *ast.Link:
			add(plainText(node, src), string(node.Destination))
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			add(string(node.Label(src)), string(node.URL(src)))
		}
		return ast.WalkContinue, nil
	})

	return p
}

func plainText(n ast.Node, src []byte) string {
	var b bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.CodeSpan:
			for cc := t.FirstChild(); cc != nil; cc = cc.NextSibling() {
				if seg, ok := cc.(*ast.Text); ok {
					b.Write(seg.Segment.Value(src))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func (p Page) Title() string     { return p.title }
func (p Page) Targets() []Target { return p.targets }
func (p Page) Empty() bool       { return len(bytes.TrimSpace(p.source)) == 0 }

// SetStyle picks the glamour style ("auto", "dark", "light", "notty", ...).
func (p *Page) SetStyle(style string) {
	if style != p.style {
		p.style = style
		p.rendered = make(map[int]string)
	}
}

// Render returns the terminal rendering of the page body wrapped to width.
// Results are cached per width. On renderer errors the raw Markdown is returned.
func (p *Page) Render(width int) string {
	if p.Empty() {
		return ""
	}
	if p.rendered == nil {
		p.rendered = make(map[int]string)
	}
	if cached, ok := p.rendered[width]; ok {
		return cached
	}

	styleOpt := glamour.WithAutoStyle()
	if p.style != "" && p.style != "auto" {
		styleOpt = glamour.WithStandardStyle(p.style)
	}
	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return string(p.source)
	}
	out, err := renderer.Render(string(p.source))
	if err != nil {
		return string(p.source)
	}

	out = strings.TrimRight(out, "\n ")
	p.rendered[width] = out
	return out
}
