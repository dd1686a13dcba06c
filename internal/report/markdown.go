package report

import (
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"wealthdesk/internal/analytics"
	"wealthdesk/internal/models"
)

//go:embed templates/*.md
var templates embed.FS

func funcs(m Money) template.FuncMap {
	return template.FuncMap{
		"money": m.Format,
		"pct":   func(p analytics.Percent) string { return p.Format(2) },
		"pct1":  func(p analytics.Percent) string { return p.Format(1) },
		"units": func(u float64) string { return strconv.FormatFloat(u, 'f', -1, 64) },
		"cell":  markdownCell,
		"longdate": func(d models.Date) string {
			if d.IsZero() {
				return "-"
			}
			return d.Time().Format("January 2, 2006")
		},
		"shortdate": func(d models.Date) string {
			if d.IsZero() {
				return "no date"
			}
			return d.Time().Format("Jan 2")
		},
	}
}

// markdownCell keeps a value on one table row.
func markdownCell(v any) string {
	s := fmt.Sprint(v)
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	if s == "" {
		return "-"
	}
	return s
}

// Markdown renders r as a Markdown document.
func Markdown(r *Report) (string, error) {
	tmpl, err := template.New("report.md").Funcs(funcs(NewMoney(r.Currency))).ParseFS(templates, "templates/report.md")
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, r); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return b.String(), nil
}
