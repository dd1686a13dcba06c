package report

import (
	"fmt"
	"regexp"
	"strings"
)

// Format is a report output format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
	FormatXLSX     Format = "xlsx"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatMarkdown, FormatHTML, FormatPDF, FormatXLSX}

// ParseFormat resolves a format name, case-insensitively. "markdown" is an
// alias of "md".
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "markdown" {
		return FormatMarkdown, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported report format %q", s)
}

// ContentType is the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName is the download name of a report, for example
// "DS_Partners_Report_Alice_Johnson.pdf".
func FileName(firm, clientName string, f Format) string {
	under := func(s string) string { return whitespace.ReplaceAllString(strings.TrimSpace(s), "_") }
	return fmt.Sprintf("%s_Report_%s.%s", under(firm), under(clientName), f)
}
