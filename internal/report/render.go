package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// Render writes r to w in format f.
func Render(w io.Writer, r *Report, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatMarkdown:
		md, err := Markdown(r)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, md)
		return err
	case FormatHTML:
		page, err := HTML(r)
		if err != nil {
			return err
		}
		_, err = w.Write(page)
		return err
	case FormatPDF:
		return PDF(w, r)
	case FormatXLSX:
		return XLSX(w, r)
	}
	return fmt.Errorf("unsupported report format %q", f)
}
