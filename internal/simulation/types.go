// Package simulation implements the month-by-month mortgage overpayment
// engine: the rate schedule, the overpayment policy rules, and the loop that
// advances the mortgage and savings balances until payoff or the horizon.
package simulation

import (
	"fmt"
)

// FixedPeriod declares one fixed-rate period by its duration. Periods are
// laid out contiguously starting at month 0, in declared order.
type FixedPeriod struct {
	Months int
	Rate   float64 // fractional annual rate, 0.041 means 4.1%
}

// Config is the immutable input to a simulation run. All rates are
// fractional annual rates.
type Config struct {
	Principal    float64
	TermMonths   int
	FixedPeriods []FixedPeriod
	VariableRate float64

	MonthlyIncome     float64
	MonthlyExpenses   float64
	IncomeGrowthRate  float64
	ExpenseGrowthRate float64

	StartingSavings float64
	SavingsRate     float64
	SavingsTaxRate  float64
	EmergencyFloor  float64

	MinOverpaymentThreshold float64
	HorizonMonths           int
}

// Validate rejects configurations that cannot be simulated. A failed check
// surfaces before any simulation state is created.
func (cfg Config) Validate() error {
	if cfg.Principal <= 0 {
		return fmt.Errorf("mortgage principal must be positive, got %.2f", cfg.Principal)
	}
	if cfg.TermMonths <= 0 {
		return fmt.Errorf("mortgage term must be positive, got %d months", cfg.TermMonths)
	}
	if cfg.HorizonMonths <= 0 {
		return fmt.Errorf("simulation horizon must be positive, got %d months", cfg.HorizonMonths)
	}
	for i, period := range cfg.FixedPeriods {
		if period.Months <= 0 {
			return fmt.Errorf("fixed period %d must have a positive duration, got %d months", i+1, period.Months)
		}
		if err := validateRate(fmt.Sprintf("fixed period %d rate", i+1), period.Rate); err != nil {
			return err
		}
	}
	if err := validateRate("variable rate", cfg.VariableRate); err != nil {
		return err
	}
	if err := validateRate("income growth rate", cfg.IncomeGrowthRate); err != nil {
		return err
	}
	if err := validateRate("expense growth rate", cfg.ExpenseGrowthRate); err != nil {
		return err
	}
	if err := validateRate("savings rate", cfg.SavingsRate); err != nil {
		return err
	}
	if err := validateRate("savings tax rate", cfg.SavingsTaxRate); err != nil {
		return err
	}
	if cfg.StartingSavings < 0 {
		return fmt.Errorf("starting savings must not be negative, got %.2f", cfg.StartingSavings)
	}
	if cfg.EmergencyFloor < 0 {
		return fmt.Errorf("emergency fund floor must not be negative, got %.2f", cfg.EmergencyFloor)
	}
	if cfg.MinOverpaymentThreshold < 0 {
		return fmt.Errorf("minimum overpayment threshold must not be negative, got %.2f", cfg.MinOverpaymentThreshold)
	}
	return nil
}

func validateRate(name string, rate float64) error {
	if rate < 0 || rate >= 1 {
		return fmt.Errorf("%s must be a fraction in [0, 1), got %v", name, rate)
	}
	return nil
}

// State is the mutable per-run state owned by the simulation loop. It is
// mutated exactly once per simulated month and discarded once the result is
// produced.
type State struct {
	Month           int
	MortgageBalance float64
	MonthlyPayment  float64
	Savings         float64
	MonthlyIncome   float64
	MonthlyExpenses float64
	InterestPaid    float64
	Overpayments    float64
	AnnualAllowance float64 // 10% of the balance at the start of the current year
	AllowanceUsed   bool
}

// OverpaymentEvent records one successful overpayment: the month it fired,
// the amount moved from savings to principal, and which rule fired.
type OverpaymentEvent struct {
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
	Kind   string  `json:"kind"`
}

// MonthlyRecord is the per-month output row. Records are appended in
// chronological order and never mutated afterward.
type MonthlyRecord struct {
	Month                  int     `json:"month"`
	MortgageBalance        float64 `json:"mortgageBalance"`
	Savings                float64 `json:"savings"`
	CumulativeOverpayments float64 `json:"cumulativeOverpayments"`
	Income                 float64 `json:"income"`
	Expenses               float64 `json:"expenses"`
	Overpayment            float64 `json:"overpayment"`
	AvailableCash          float64 `json:"availableCash"`
	MortgagePayment        float64 `json:"mortgagePayment"`
}

// Outcome is the terminal state a simulation run ended in.
type Outcome int

const (
	// Running means the simulation has not reached a terminal state. It
	// never appears in a finished result.
	Running Outcome = iota

	// PaidOff means the mortgage balance reached zero within the horizon.
	PaidOff

	// HorizonExhausted means the month counter reached the configured
	// horizon with an outstanding balance.
	HorizonExhausted
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case PaidOff:
		return "paid off"
	case HorizonExhausted:
		return "not paid off within horizon"
	default:
		return "running"
	}
}

// Summary holds the scalar results of a run.
type Summary struct {
	Outcome           Outcome `json:"-"`
	OutcomeLabel      string  `json:"outcome"`
	PaidOff           bool    `json:"paidOff"`
	MonthsToPayoff    int     `json:"monthsToPayoff,omitempty"` // valid only when PaidOff
	TotalInterestPaid float64 `json:"totalInterestPaid"`
	BaselineInterest  float64 `json:"baselineInterest"`
	InterestSaved     float64 `json:"interestSaved"`
	FinalSavings      float64 `json:"finalSavings"`
	TotalOverpayments float64 `json:"totalOverpayments"`
}

// Result is the complete output of a run: one record per completed month,
// the overpayment event log, and the scalar summary.
type Result struct {
	Records []MonthlyRecord    `json:"records"`
	Events  []OverpaymentEvent `json:"events"`
	Summary Summary            `json:"summary"`
}
