// Package render turns page state into HTML: the full page, and the sidebar
// and result fragments htmx swaps in place.
package render

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// NoticeLevel selects the notice styling.
type NoticeLevel string

const (
	LevelInfo    NoticeLevel = "info"
	LevelSuccess NoticeLevel = "success"
	LevelWarning NoticeLevel = "warning"
	LevelError   NoticeLevel = "error"
)

// Notice is a one-line message shown above a form or result.
type Notice struct {
	Level NoticeLevel `json:"level"`
	Text  string      `json:"text"`
}

// PageData is everything the templates need for one render.
type PageData struct {
	Lang       string
	T          *message.Printer
	Configured bool
	// KeyNotice is shown in the sidebar under the key form.
	KeyNotice *Notice
	Item      string
	// Notice is shown in the main column above the result.
	Notice *Notice
	Result template.HTML
}

// HasResult reports whether a reply should be shown.
func (d PageData) HasResult() bool { return d.Result != "" }

// Page renders the whole document.
func Page(d PageData) templ.Component {
	return templ.FromGoHTML(pages.Lookup("page.html"), d)
}

// Sidebar renders only the credential panel.
func Sidebar(d PageData) templ.Component {
	return templ.FromGoHTML(pages.Lookup("sidebar"), d)
}

// Result renders only the notice and reply region of the main column.
func Result(d PageData) templ.Component {
	return templ.FromGoHTML(pages.Lookup("result"), d)
}
