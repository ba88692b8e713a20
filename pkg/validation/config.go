// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
)

// ValidateFixedPeriodCoverage warns when the declared fixed periods extend
// to or past the end of the mortgage term, leaving no variable-rate tail.
func ValidateFixedPeriodCoverage(totalFixedMonths, termMonths int) string {
	if totalFixedMonths >= termMonths {
		return fmt.Sprintf("Fixed periods cover %d months of a %d month term - no variable-rate period remains",
			totalFixedMonths, termMonths)
	}
	return ""
}

// ValidateEmergencyFund warns when the emergency fund floor starts above the
// savings balance, which suppresses every overpayment rule until savings
// grow past the floor.
func ValidateEmergencyFund(floor, startingSavings float64) string {
	if floor > startingSavings {
		return fmt.Sprintf("Emergency fund floor %.2f exceeds starting savings %.2f - no overpayments until savings grow",
			floor, startingSavings)
	}
	return ""
}

// ValidateHorizon warns when the simulation horizon is shorter than the
// mortgage term, since the mortgage cannot amortize naturally within it.
func ValidateHorizon(horizonMonths, termMonths int) string {
	if horizonMonths < termMonths {
		return fmt.Sprintf("Simulation horizon (%d months) is shorter than the mortgage term (%d months) - payoff requires overpayments",
			horizonMonths, termMonths)
	}
	return ""
}
