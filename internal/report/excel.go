// Package report materializes report templates over a generated dataset
// as Excel workbooks.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"invoiceflow/internal/domain/entity"
	"invoiceflow/internal/mockdata"
	"invoiceflow/internal/stats"
)

// Exporter writes report workbooks into a fixed output directory.
type Exporter struct {
	outputDir string
	logger    *zap.Logger
}

// NewExporter creates an exporter, ensuring the output directory exists.
func NewExporter(outputDir string, logger *zap.Logger) (*Exporter, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report output dir: %w", err)
	}
	return &Exporter{outputDir: outputDir, logger: logger}, nil
}

// Export writes one workbook for the given template over the dataset and
// returns the file path. now stamps the summary sheet and the file name.
func (e *Exporter) Export(tpl entity.ReportTemplate, ds *mockdata.Dataset, now time.Time) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	firstSheet := true
	for _, section := range tpl.Sections {
		var err error
		switch section {
		case "invoices":
			err = e.writeInvoiceSheet(f, ds.Invoices, firstSheet)
		case "summary":
			err = e.writeSummarySheet(f, ds, now, firstSheet)
		default:
			err = fmt.Errorf("unknown report section %q", section)
		}
		if err != nil {
			return "", err
		}
		firstSheet = false
	}

	path := filepath.Join(e.outputDir, fmt.Sprintf("%s-%s.xlsx", tpl.ID, now.Format("2006-01-02")))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}

	e.logger.Info("Report exported",
		zap.String("template", tpl.ID),
		zap.String("path", path))
	return path, nil
}

// sheet returns a ready sheet with the given name, reusing the default
// first sheet for the first section written.
func (e *Exporter) sheet(f *excelize.File, name string, first bool) (string, error) {
	if first {
		defaultName := f.GetSheetName(0)
		if err := f.SetSheetName(defaultName, name); err != nil {
			return "", err
		}
		return name, nil
	}
	if _, err := f.NewSheet(name); err != nil {
		return "", err
	}
	return name, nil
}

func (e *Exporter) writeInvoiceSheet(f *excelize.File, invoices []entity.Invoice, first bool) error {
	sheet, err := e.sheet(f, "Invoices", first)
	if err != nil {
		return err
	}

	headers := []string{"Invoice #", "Vendor", "Client", "Issue Date", "Due Date", "Status", "Category", "Subtotal", "Tax", "Discount", "Total", "Currency"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, inv := range invoices {
		values := []interface{}{
			inv.InvoiceNumber,
			inv.VendorName,
			inv.ClientName,
			inv.IssueDate.Format("2006-01-02"),
			inv.DueDate.Format("2006-01-02"),
			inv.Status,
			inv.Category,
			inv.Subtotal,
			inv.TaxAmount,
			inv.DiscountAmount,
			inv.Total,
			inv.Currency,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Exporter) writeSummarySheet(f *excelize.File, ds *mockdata.Dataset, now time.Time, first bool) error {
	sheet, err := e.sheet(f, "Summary", first)
	if err != nil {
		return err
	}

	s := stats.Dashboard(ds.Invoices, now)

	rows := [][]interface{}{
		{"Generated", now.Format(time.RFC3339)},
		{"Total invoices", s.TotalInvoices},
		{"Total amount", s.TotalAmount},
		{"Paid", s.PaidCount, s.PaidAmount},
		{"Pending", s.PendingCount, s.PendingAmount},
		{"Overdue", s.OverdueCount, s.OverdueAmount},
		{"Revenue growth (%)", s.RevenueGrowth},
		{},
		{"Category", "Total", "Invoices"},
	}
	for _, ct := range stats.CategoryBreakdown(ds.Invoices) {
		rows = append(rows, []interface{}{ct.Category, ct.Total, ct.Invoices})
	}

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
