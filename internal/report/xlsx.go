package report

import (
	"fmt"
	"io"

	"wealthdesk/internal/analytics"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary  = "Summary"
	sheetHoldings = "Holdings"
	sheetFolios   = "Folios"
	sheetTasks    = "Tasks"
)

// XLSX writes r as a workbook with one sheet per report section.
func XLSX(w io.Writer, r *Report) error {
	f, err := Workbook(r)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// newWorkbook creates a file whose sheets are named, in order, by sheets.
func newWorkbook(sheets ...string) (*excelize.File, error) {
	f := excelize.NewFile()
	for i, name := range sheets {
		var err error
		if i == 0 {
			err = f.SetSheetName("Sheet1", name)
		} else {
			_, err = f.NewSheet(name)
		}
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to add sheet %q: %w", name, err)
		}
	}
	return f, nil
}

// Workbook builds the report workbook. Callers must Close it.
func Workbook(r *Report) (_ *excelize.File, err error) {
	m := NewMoney(r.Currency)
	f, err := newWorkbook(sheetSummary, sheetHoldings, sheetFolios, sheetTasks)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
		}
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, err
	}

	p := r.Portfolio
	pct := func(v analytics.Percent) any {
		if !v.Valid() {
			return "n/a"
		}
		return m.Round(float64(v))
	}

	summary := [][]any{
		{"Firm", r.Firm},
		{"Client", r.Client.Name},
		{"Company", r.Client.Company},
		{"Email", r.Client.Email},
		{"Status", string(r.Client.Status)},
		{"Generated", r.AsOf.String()},
		{"Currency", m.Code()},
		{},
		{"Invested", m.Round(p.TotalInvested)},
		{"Current Value", m.Round(p.TotalCurrent)},
		{"Gain", m.Round(p.Gain)},
		{"Absolute Return %", pct(p.AbsoluteReturn)},
		{"CAGR %", pct(p.CAGR)},
		{"XIRR %", pct(p.XIRR)},
		{},
		{"Asset Class", "Invested", "Current Value", "Weight %"},
	}
	for _, a := range p.Allocation {
		summary = append(summary, []any{string(a.AssetClass), m.Round(a.Invested), m.Round(a.Current), pct(a.Weight)})
	}
	if err := writeRows(f, sheetSummary, summary); err != nil {
		return nil, err
	}
	allocHeader := len(summary) - len(p.Allocation)
	if err := f.SetCellStyle(sheetSummary, cell(1, allocHeader), cell(4, allocHeader), headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetSummary, "A", "D", 20); err != nil {
		return nil, err
	}

	holdings := [][]any{{"Holding", "Asset Class", "Purchased", "Units", "Average Cost", "Current Price", "Invested", "Current Value", "Gain", "CAGR %"}}
	for _, hp := range p.Holdings {
		h := hp.Holding
		holdings = append(holdings, []any{
			h.Name, string(h.AssetClass), h.PurchaseDate.String(), h.Units,
			h.AverageCost, h.CurrentPrice, m.Round(hp.Invested), m.Round(hp.Current), m.Round(hp.Gain),
			pct(hp.CAGR),
		})
	}
	if err := writeTable(f, sheetHoldings, holdings, headerStyle); err != nil {
		return nil, err
	}
	if len(holdings) > 1 {
		if err := f.SetCellStyle(sheetHoldings, cell(5, 2), cell(9, len(holdings)), moneyStyle); err != nil {
			return nil, err
		}
	}

	folios := [][]any{{"Folio", "Provider", "Notes"}}
	for _, fo := range r.Folios {
		folios = append(folios, []any{fo.FolioNumber, fo.Provider, fo.Notes})
	}
	if err := writeTable(f, sheetFolios, folios, headerStyle); err != nil {
		return nil, err
	}

	tasks := [][]any{{"Task", "Due", "Priority", "Status", "Assigned To"}}
	for _, t := range r.PendingTasks {
		tasks = append(tasks, []any{t.Title, t.DueDate.String(), string(t.Priority), string(t.Status), t.AssignedTo})
	}
	if err := writeTable(f, sheetTasks, tasks, headerStyle); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if err := f.SetSheetRow(sheet, cell(1, i+1), &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func writeTable(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	width := len(rows[0])
	if err := f.SetCellStyle(sheet, cell(1, 1), cell(width, 1), headerStyle); err != nil {
		return err
	}
	last, _ := excelize.ColumnNumberToName(width)
	return f.SetColWidth(sheet, "A", last, 18)
}
