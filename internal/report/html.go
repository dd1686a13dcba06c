package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/page.html
var pageHTML string

var (
	page     = template.Must(template.New("page").Parse(pageHTML))
	markdown = goldmark.New(goldmark.WithExtensions(extension.Table))
)

// HTML renders r as a standalone printable page. The body is the Markdown
// rendering converted by goldmark; raw HTML in field values is not passed
// through.
func HTML(r *Report) ([]byte, error) {
	md, err := Markdown(r)
	if err != nil {
		return nil, err
	}
	var body bytes.Buffer
	if err := markdown.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("failed to convert report markdown: %w", err)
	}

	var out bytes.Buffer
	err = page.Execute(&out, struct {
		Title string
		Body  template.HTML
	}{
		Title: fmt.Sprintf("%s Report: %s", r.Firm, r.Client.Name),
		Body:  template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render report page: %w", err)
	}
	return out.Bytes(), nil
}
