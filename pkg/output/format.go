// Package output provides utilities for formatting and displaying
// simulation results.
package output

import (
	"fmt"

	"github.com/crandelmaker/mortgage-calculator/internal/simulation"
	"github.com/crandelmaker/mortgage-calculator/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report:
// the scalar summary, the overpayment schedule, and the monthly ledger.
func PrettyFormat(result *simulation.Result) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Summary ---\n")
	if result.Summary.PaidOff {
		fmt.Printf("Mortgage-free in    | %s (month %d)\n",
			format.Months(result.Summary.MonthsToPayoff), result.Summary.MonthsToPayoff)
	} else {
		fmt.Printf("Mortgage status     | %s\n", result.Summary.OutcomeLabel)
	}
	fmt.Printf("Total interest paid | %s\n", format.Currency(result.Summary.TotalInterestPaid))
	fmt.Printf("Interest saved      | %s\n", format.Currency(result.Summary.InterestSaved))
	fmt.Printf("Total overpayments  | %s\n", format.Currency(result.Summary.TotalOverpayments))
	fmt.Printf("Final savings       | %s\n", format.Currency(result.Summary.FinalSavings))

	if len(result.Events) > 0 {
		fmt.Printf("\n--- Overpayment schedule ---\n")
		fmt.Printf("Month | Amount        | Type\n")
		fmt.Printf("_____ | _____________ | ____\n")
		for _, event := range result.Events {
			_, _ = p.Printf("%5d | £%.2f | %s\n", event.Month, event.Amount, event.Kind)
		}
	}

	fmt.Printf("\n--- Monthly ledger ---\n")
	fmt.Printf("Month | Mortgage      | Savings       | Overpaid      | Payment\n")
	fmt.Printf("_____ | _____________ | _____________ | _____________ | _______\n")
	for _, record := range result.Records {
		_, _ = p.Printf("%5d | £%.2f | £%.2f | £%.2f | £%.2f\n",
			record.Month, record.MortgageBalance, record.Savings,
			record.CumulativeOverpayments, record.MortgagePayment)
	}
}

// CsvFormat outputs the monthly records in comma-separated value format.
func CsvFormat(result *simulation.Result) {
	fmt.Printf(`"month","mortgageBalance","savingsBalance","cumulativeOverpayments","income","expenses","overpayment","availableCash","mortgagePayment"`)
	fmt.Printf("\n")
	for _, record := range result.Records {
		fmt.Printf(`"%d","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			record.Month, record.MortgageBalance, record.Savings,
			record.CumulativeOverpayments, record.Income, record.Expenses,
			record.Overpayment, record.AvailableCash, record.MortgagePayment)
		fmt.Printf("\n")
	}
}
