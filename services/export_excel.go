package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateJobCostExcel creates the job cost summary workbook and returns
// the file contents as a byte slice.
func GenerateJobCostExcel(report JobCostReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := report.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Job Cost Summary"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through Q).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", "P", "Q"}
	lastCol := columns[len(columns)-1] // "Q"

	widths := []float64{10, 28, 24, 12, 14, 14, 14, 12, 12, 12, 12, 12, 12, 14, 14, 10, 10}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	styles, err := newReportStyles(f)
	if err != nil {
		return nil, err
	}

	// ── Header Rows (1-2) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(report.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", styles.title)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "Generated: "+report.GeneratedDate)
	f.SetCellStyle(sheetName, "A2", lastCol+"2", styles.subtitle)

	// ── Row 4: Column Headers ───────────────────────────────────────────

	headers := []string{
		"Job #", "Job Name", "Customer", "Status",
		"Contract", "Change Orders", "Total Revenue",
		"Insurance", "Labor", "Stamps", "Materials", "Subs/Bond", "Equipment",
		"Total Cost", "Profit", "Margin %", "Man Days",
	}
	for i, h := range headers {
		cell := fmt.Sprintf("%s4", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", styles.header)

	// ── Data Rows (starting row 5) ──────────────────────────────────────

	row := 5
	for _, r := range report.Rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.JobNumber))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.JobName))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.CustomerName))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.Status))
		f.SetCellValue(sheetName, "E"+rowStr, FormatUSD(r.Contract))
		f.SetCellValue(sheetName, "F"+rowStr, FormatUSD(r.ChangeOrders))
		f.SetCellValue(sheetName, "G"+rowStr, FormatUSD(r.TotalRevenue))
		f.SetCellValue(sheetName, "H"+rowStr, FormatUSD(r.Insurance))
		f.SetCellValue(sheetName, "I"+rowStr, FormatUSD(r.Labor))
		f.SetCellValue(sheetName, "J"+rowStr, FormatUSD(r.Stamps))
		f.SetCellValue(sheetName, "K"+rowStr, FormatUSD(r.Material))
		f.SetCellValue(sheetName, "L"+rowStr, FormatUSD(r.SubsBond))
		f.SetCellValue(sheetName, "M"+rowStr, FormatUSD(r.Equipment))
		f.SetCellValue(sheetName, "N"+rowStr, FormatUSD(r.TotalCost))
		f.SetCellValue(sheetName, "O"+rowStr, FormatUSD(r.Profit))
		f.SetCellValue(sheetName, "P"+rowStr, FormatPercent(r.MarginPct))
		f.SetCellValue(sheetName, "Q"+rowStr, r.ManDays)

		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, styles.data)
		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++

	summaries := []struct {
		label string
		value string
	}{
		{"Total Revenue:", FormatUSD(report.TotalRevenue)},
		{"Total Costs:", FormatUSD(report.TotalCost)},
		{"Total Profit:", FormatUSD(report.TotalProfit)},
		{"Avg Margin:", FormatPercent(report.AvgMarginPct)},
	}
	for _, s := range summaries {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "N"+rowStr, s.label)
		f.SetCellStyle(sheetName, "N"+rowStr, "N"+rowStr, styles.summaryLabel)
		f.SetCellValue(sheetName, "O"+rowStr, s.value)
		f.SetCellStyle(sheetName, "O"+rowStr, "O"+rowStr, styles.summaryValue)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateCustomerSummaryExcel creates the customer summary workbook.
func GenerateCustomerSummaryExcel(report CustomerReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Customer Summary"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]

	widths := []float64{30, 10, 12, 16, 16, 16, 12}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	styles, err := newReportStyles(f)
	if err != nil {
		return nil, err
	}

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", report.Title)
	f.SetCellStyle(sheetName, "A1", lastCol+"1", styles.title)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "Generated: "+report.GeneratedDate)
	f.SetCellStyle(sheetName, "A2", lastCol+"2", styles.subtitle)

	headers := []string{"Customer", "Jobs", "Active Jobs", "Total Revenue", "Total Cost", "Profit", "Margin %"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s4", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", styles.header)

	row := 5
	for _, r := range report.Rows {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.CustomerName))
		f.SetCellValue(sheetName, "B"+rowStr, r.JobCount)
		f.SetCellValue(sheetName, "C"+rowStr, r.ActiveJobs)
		f.SetCellValue(sheetName, "D"+rowStr, FormatUSD(r.TotalRevenue))
		f.SetCellValue(sheetName, "E"+rowStr, FormatUSD(r.TotalCost))
		f.SetCellValue(sheetName, "F"+rowStr, FormatUSD(r.Profit))
		f.SetCellValue(sheetName, "G"+rowStr, FormatPercent(r.MarginPct))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, styles.data)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// reportStyles holds the style ids shared by both report workbooks.
type reportStyles struct {
	title        int
	subtitle     int
	header       int
	data         int
	summaryLabel int
	summaryValue int
}

func newReportStyles(f *excelize.File) (reportStyles, error) {
	var s reportStyles
	var err error

	s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}

	s.subtitle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return s, fmt.Errorf("create subtitle style: %w", err)
	}

	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#1E3A5F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}

	s.data, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create data style: %w", err)
	}

	s.summaryLabel, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return s, fmt.Errorf("create summary label style: %w", err)
	}

	s.summaryValue, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return s, fmt.Errorf("create summary value style: %w", err)
	}

	return s, nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
