// Package finance provides monthly cash-savings accrual computations.
package finance

import (
	"github.com/crandelmaker/mortgage-calculator/pkg/constants"
	"go.uber.org/zap"
)

// SavingsChange captures the computed deltas for the savings balance in a
// given month.
type SavingsChange struct {
	InterestBeforeTax float64
	Tax               float64
	Interest          float64
	Deposit           float64
	NetChange         float64
}

// SavingsProcessor handles monthly savings interest and deposits.
type SavingsProcessor struct {
	logger *zap.Logger
}

// NewSavingsProcessor creates a processor for savings calculations.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewSavingsProcessor(logger *zap.Logger) *SavingsProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SavingsProcessor{logger: logger}
}

// ApplyMonth applies one month of savings activity: after-tax interest on the
// pre-deposit balance plus the deposit of netCash, when netCash is positive.
// When netCash is zero or negative the balance is left untouched; deficits
// are not drawn from savings.
func (sp *SavingsProcessor) ApplyMonth(balance, netCash, annualRate, taxRate float64) (float64, SavingsChange) {
	var change SavingsChange

	if netCash <= 0 {
		sp.logger.Debug("no savings deposit this month",
			zap.String("op", "finance.ApplyMonth"),
			zap.Float64("netCash", netCash),
		)
		return balance, change
	}

	monthlyRate := annualRate / constants.MonthsPerYear
	change.InterestBeforeTax = balance * monthlyRate
	if change.InterestBeforeTax > 0 && taxRate > 0 {
		change.Tax = change.InterestBeforeTax * taxRate
	}
	change.Interest = change.InterestBeforeTax - change.Tax
	change.Deposit = netCash
	change.NetChange = change.Interest + change.Deposit

	return balance + change.NetChange, change
}
