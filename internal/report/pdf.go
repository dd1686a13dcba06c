package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin    = 15.0
	pdfLineH     = 6.0
	pdfRowH      = 6.5
	pdfBodyWidth = 210 - 2*pdfMargin
)

type pdfTable struct {
	headers []string
	widths  []float64
	aligns  []string
	rows    [][]string
	size    float64
}

// PDF renders r as an A4 document. The core fonts only cover Latin-1, so
// amounts carry the currency code rather than its symbol.
func PDF(w io.Writer, r *Report) error {
	m := NewMoney(r.Currency)
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(fmt.Sprintf("%s Report: %s", r.Firm, r.Client.Name)), false)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(r.Firm+" Portfolio Report"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, "Generated on "+r.AsOf.Time().Format("January 2, 2006"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	section(pdf, "Client")
	c := r.Client
	pairs := [][2]string{
		{"Name", c.Name},
		{"Company", c.Company},
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"Status", string(c.Status)},
		{"Segment", string(c.Segment)},
		{"Demat ID", c.DematID},
	}
	for _, kv := range pairs {
		if kv[1] == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(30, pdfLineH, kv[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, pdfLineH, tr(kv[1]), "", 1, "L", false, 0, "")
	}

	p := r.Portfolio
	section(pdf, "Portfolio Performance")
	drawTable(pdf, tr, pdfTable{
		headers: []string{"Invested", "Current Value", "Absolute Return", "CAGR / XIRR"},
		widths:  []float64{45, 45, 45, 45},
		aligns:  []string{"R", "R", "R", "R"},
		rows: [][]string{{
			m.ASCII(p.TotalInvested),
			m.ASCII(p.TotalCurrent),
			p.AbsoluteReturn.Format(2),
			p.CAGR.Format(2) + " / " + p.XIRR.Format(2),
		}},
		size: 9,
	})

	section(pdf, "Asset Allocation")
	alloc := pdfTable{
		headers: []string{"Asset Class", "Invested", "Current Value", "Weight"},
		widths:  []float64{60, 45, 45, 30},
		aligns:  []string{"L", "R", "R", "R"},
		size:    9,
	}
	for _, a := range p.Allocation {
		alloc.rows = append(alloc.rows, []string{string(a.AssetClass), m.ASCII(a.Invested), m.ASCII(a.Current), a.Weight.Format(1)})
	}
	drawTable(pdf, tr, alloc)

	section(pdf, "Holdings Detail")
	detail := pdfTable{
		headers: []string{"Holding", "Class", "Purchased", "Units", "Avg Cost", "Price", "Invested", "Current", "CAGR"},
		widths:  []float64{30, 20, 18, 12, 20, 20, 22, 22, 16},
		aligns:  []string{"L", "L", "L", "R", "R", "R", "R", "R", "R"},
		size:    7,
	}
	for _, hp := range p.Holdings {
		h := hp.Holding
		detail.rows = append(detail.rows, []string{
			h.Name,
			string(h.AssetClass),
			h.PurchaseDate.String(),
			strconv.FormatFloat(h.Units, 'f', -1, 64),
			m.ASCII(h.AverageCost),
			m.ASCII(h.CurrentPrice),
			m.ASCII(hp.Invested),
			m.ASCII(hp.Current),
			hp.CAGR.Format(2),
		})
	}
	drawTable(pdf, tr, detail)

	section(pdf, "Folios")
	folios := pdfTable{
		headers: []string{"Folio", "Provider", "Notes"},
		widths:  []float64{40, 60, 80},
		aligns:  []string{"L", "L", "L"},
		size:    9,
	}
	for _, f := range r.Folios {
		folios.rows = append(folios.rows, []string{f.FolioNumber, f.Provider, f.Notes})
	}
	drawTable(pdf, tr, folios)

	section(pdf, "Pending Tasks")
	pdf.SetFont("Helvetica", "", 9)
	if len(r.PendingTasks) == 0 {
		pdf.CellFormat(0, pdfLineH, "No pending tasks.", "", 1, "L", false, 0, "")
	}
	for _, t := range r.PendingTasks {
		due := "no date"
		if !t.DueDate.IsZero() {
			due = t.DueDate.Time().Format("Jan 2")
		}
		line := fmt.Sprintf("- %s (%s, %s) due %s", t.Title, t.Priority, t.Status, due)
		pdf.MultiCell(0, pdfLineH, tr(line), "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to build pdf: %w", err)
	}
	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(pdfBodyWidth, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func drawTable(pdf *gofpdf.Fpdf, tr func(string) string, t pdfTable) {
	if len(t.rows) == 0 {
		pdf.SetFont("Helvetica", "", t.size)
		pdf.CellFormat(0, pdfLineH, "None recorded.", "", 1, "L", false, 0, "")
		return
	}
	pdf.SetFont("Helvetica", "B", t.size)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range t.headers {
		pdf.CellFormat(t.widths[i], pdfRowH, h, "1", 0, t.aligns[i], true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", t.size)
	for _, row := range t.rows {
		for i, v := range row {
			pdf.CellFormat(t.widths[i], pdfRowH, tr(v), "1", 0, t.aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}
}
