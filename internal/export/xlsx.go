// Package export writes simulation results to an xlsx workbook: one sheet
// with the monthly ledger and one with the scalar summary.
package export

import (
	"fmt"

	"github.com/crandelmaker/mortgage-calculator/internal/simulation"
	"github.com/crandelmaker/mortgage-calculator/pkg/format"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	ledgerSheet  = "Mortgage Simulation"
	summarySheet = "Summary"
)

// Writer produces xlsx workbooks from simulation results.
type Writer struct {
	logger *zap.Logger
}

// NewWriter creates a workbook writer.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewWriter(logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{logger: logger}
}

// WriteWorkbook writes the monthly ledger and summary sheets to path.
func (w *Writer) WriteWorkbook(path string, cfg simulation.Config, result *simulation.Result) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", ledgerSheet); err != nil {
		return fmt.Errorf("failed to name ledger sheet: %w", err)
	}

	header := []interface{}{
		"Month", "Mortgage Balance", "Savings Balance", "Total Overpayments",
		"Monthly Income", "Monthly Expenses", "Overpayment", "Available Cash",
		"Mortgage Payment",
	}
	if err := f.SetSheetRow(ledgerSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write ledger header: %w", err)
	}

	for i, record := range result.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute ledger cell: %w", err)
		}
		row := []interface{}{
			record.Month, record.MortgageBalance, record.Savings,
			record.CumulativeOverpayments, record.Income, record.Expenses,
			record.Overpayment, record.AvailableCash, record.MortgagePayment,
		}
		if err := f.SetSheetRow(ledgerSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write ledger row %d: %w", i+2, err)
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	monthsToFree := "Not paid off"
	if result.Summary.PaidOff {
		monthsToFree = fmt.Sprintf("%d", result.Summary.MonthsToPayoff)
	}
	summaryRows := [][]interface{}{
		{"Metric", "Value"},
		{"Original Mortgage", format.Currency(cfg.Principal)},
		{"Mortgage Term (Months)", cfg.TermMonths},
		{"Months to Mortgage Free", monthsToFree},
		{"Total Interest Paid", format.Currency(result.Summary.TotalInterestPaid)},
		{"Interest Saved", format.Currency(result.Summary.InterestSaved)},
		{"Total Overpayments", format.Currency(result.Summary.TotalOverpayments)},
		{"Final Savings Balance", format.Currency(result.Summary.FinalSavings)},
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute summary cell: %w", err)
		}
		rowCopy := row
		if err := f.SetSheetRow(summarySheet, cell, &rowCopy); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}

	w.logger.Debug("wrote workbook",
		zap.String("op", "export.WriteWorkbook"),
		zap.String("path", path),
		zap.Int("records", len(result.Records)),
		zap.Int("events", len(result.Events)),
	)

	return nil
}
