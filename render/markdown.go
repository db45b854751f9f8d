package render

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// md keeps the reply's line breaks; raw HTML in the reply is dropped by
// goldmark's default (unsafe disabled) renderer.
var md = goldmark.New(goldmark.WithRendererOptions(gmhtml.WithHardWraps()))

// MarkdownToHTML renders model output for display. The text itself is not
// altered or parsed beyond Markdown.
func MarkdownToHTML(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
