package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateJobCostPDF creates a PDF of the job cost summary using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateJobCostPDF(report JobCostReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addReportHeader(m, report)
	addReportTableHeader(m)
	for _, r := range report.Rows {
		addReportTableRow(m, r)
	}
	addReportSummary(m, report)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addReportHeader adds the title and generated date to the PDF.
func addReportHeader(m core.Maroto, report JobCostReport) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(report.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Generated: %s", report.GeneratedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addReportTableHeader adds the column header row for the summary table.
func addReportTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 30, Green: 58, Blue: 95}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("Job #", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Job Name", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Customer", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Status", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Revenue", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Cost", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Profit", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Margin", headerText)).WithStyle(&headerCell),
		),
	)
}

// addReportTableRow adds a single job row to the summary table.
func addReportTableRow(m core.Maroto, r JobCostRow) {
	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(r.JobNumber, baseText)),
			col.New(2).Add(text.New(r.JobName, leftText)),
			col.New(2).Add(text.New(r.CustomerName, leftText)),
			col.New(1).Add(text.New(r.Status, baseText)),
			col.New(2).Add(text.New(FormatUSD(r.TotalRevenue), rightText)),
			col.New(2).Add(text.New(FormatUSD(r.TotalCost), rightText)),
			col.New(1).Add(text.New(FormatUSD(r.Profit), rightText)),
			col.New(1).Add(text.New(FormatPercent(r.MarginPct), rightText)),
		),
	)
}

// addReportSummary adds the aggregate totals section at the bottom.
func addReportSummary(m core.Maroto, report JobCostReport) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := labelStyle

	lines := []struct {
		label string
		value string
	}{
		{"Total Revenue", FormatUSD(report.TotalRevenue)},
		{"Total Costs", FormatUSD(report.TotalCost)},
		{"Total Profit", FormatUSD(report.TotalProfit)},
		{"Avg Margin", FormatPercent(report.AvgMarginPct)},
	}
	for _, line := range lines {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(line.label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(line.value, valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}
}
