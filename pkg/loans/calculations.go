// Package loans provides annuity payment calculations for repayment mortgages.
package loans

import (
	"math"

	"github.com/crandelmaker/mortgage-calculator/pkg/constants"
)

// CalculateMonthlyPayment calculates the level monthly payment that amortizes
// principal to zero over termMonths at the given annual rate, using the
// standard annuity formula. Rates are fractional (0.041 means 4.1%).
func CalculateMonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	if annualRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicRate := annualRate / constants.MonthsPerYear
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicRate / discountFactor
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(balance, annualRate float64) float64 {
	return balance * annualRate / constants.MonthsPerYear
}

// FullTermInterest calculates the total interest paid when a loan runs its
// full term at a single rate with no overpayments. This is the baseline used
// for interest-saved comparisons.
func FullTermInterest(principal, annualRate float64, termMonths int) float64 {
	payment := CalculateMonthlyPayment(principal, annualRate, termMonths)
	return payment*float64(termMonths) - principal
}
