package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleJobCostReport() JobCostReport {
	return JobCostReport{
		Title:         "Job Cost Summary",
		GeneratedDate: "10/05/2024",
		Rows: []JobCostRow{
			{
				JobNumber: "550", JobName: "Linden Grove Apartments",
				CustomerName: "Promethean Construction", Status: "active",
				Contract: 485000, ChangeOrders: 8500, TotalRevenue: 493500,
				Insurance: 7200, Labor: 108000, Stamps: 15000, Material: 87000,
				SubsBond: 39000, Equipment: 16800, TotalCost: 273000,
				Profit: 220500, MarginPct: 44.7, ManDays: 300,
			},
			{
				JobNumber: "552", JobName: "Greenpoint Retail Center",
				CustomerName: "N/A", Status: "estimate",
			},
		},
		TotalRevenue: 493500,
		TotalCost:    273000,
		TotalProfit:  220500,
		AvgMarginPct: 44.7,
	}
}

func TestGenerateJobCostExcel(t *testing.T) {
	result, err := GenerateJobCostExcel(sampleJobCostReport())
	if err != nil {
		t.Fatalf("GenerateJobCostExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateJobCostExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Job Cost Summary" {
		t.Errorf("expected sheet 'Job Cost Summary', got %v", sheets)
	}

	title, _ := f.GetCellValue(sheets[0], "A1")
	if title != "Job Cost Summary" {
		t.Errorf("expected title in A1, got %q", title)
	}

	header, _ := f.GetCellValue(sheets[0], "A4")
	if header != "Job #" {
		t.Errorf("expected 'Job #' header in A4, got %q", header)
	}

	jobNumber, _ := f.GetCellValue(sheets[0], "A5")
	if jobNumber != "550" {
		t.Errorf("expected first job number in A5, got %q", jobNumber)
	}

	revenue, _ := f.GetCellValue(sheets[0], "G5")
	if revenue != "$493,500.00" {
		t.Errorf("expected formatted revenue in G5, got %q", revenue)
	}

	orphan, _ := f.GetCellValue(sheets[0], "C6")
	if orphan != "N/A" {
		t.Errorf("expected N/A customer in C6, got %q", orphan)
	}
}

func TestGenerateJobCostExcel_EmptyRows(t *testing.T) {
	report := JobCostReport{Title: "Job Cost Summary", GeneratedDate: "10/05/2024"}

	result, err := GenerateJobCostExcel(report)
	if err != nil {
		t.Fatalf("GenerateJobCostExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()
}

func TestGenerateCustomerSummaryExcel(t *testing.T) {
	report := CustomerReport{
		Title:         "Customer Summary",
		GeneratedDate: "10/05/2024",
		Rows: []CustomerSummary{
			{CustomerName: "Skanska USA", JobCount: 1, ActiveJobs: 1,
				TotalRevenue: 752000, TotalCost: 500000, Profit: 252000, MarginPct: 33.5},
			{CustomerName: "Promethean Construction", JobCount: 2, ActiveJobs: 1,
				TotalRevenue: 493500, TotalCost: 273000, Profit: 220500, MarginPct: 44.7},
		},
	}

	result, err := GenerateCustomerSummaryExcel(report)
	if err != nil {
		t.Fatalf("GenerateCustomerSummaryExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Customer Summary" {
		t.Errorf("expected sheet 'Customer Summary', got %v", sheets)
	}

	name, _ := f.GetCellValue(sheets[0], "A5")
	if name != "Skanska USA" {
		t.Errorf("expected highest-revenue customer first in A5, got %q", name)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"plain text", "Linden Grove", "Linden Grove"},
		{"empty", "", ""},
		{"formula equals", "=1+1", "'=1+1"},
		{"formula plus", "+SUM(A1)", "'+SUM(A1)"},
		{"formula minus", "-2+3", "'-2+3"},
		{"formula at", "@cmd", "'@cmd"},
		{"tab prefix", "\tdata", "'\tdata"},
		{"pipe prefix", "|pipe", "'|pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.input); got != tt.expect {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
