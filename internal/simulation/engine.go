package simulation

import (
	"github.com/crandelmaker/mortgage-calculator/pkg/constants"
	"github.com/crandelmaker/mortgage-calculator/pkg/finance"
	"github.com/crandelmaker/mortgage-calculator/pkg/loans"
	"go.uber.org/zap"
)

// Engine runs mortgage overpayment simulations. Each run owns an independent
// State, so a single Engine may serve concurrent runs.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a simulation engine.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Run validates the configuration and simulates month by month until the
// mortgage is paid off or the horizon is exhausted. The result holds one
// record per completed month, the overpayment event log, and the scalar
// summary including the interest saved against a no-overpayment baseline at
// the first rate.
func (e *Engine) Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	schedule := NewRateSchedule(cfg.FixedPeriods, cfg.VariableRate)
	policy := NewPolicyEngine(e.logger, schedule, cfg.EmergencyFloor, cfg.MinOverpaymentThreshold)
	savings := finance.NewSavingsProcessor(e.logger)

	state := &State{
		MortgageBalance: cfg.Principal,
		MonthlyPayment:  loans.CalculateMonthlyPayment(cfg.Principal, schedule.FirstRate(), cfg.TermMonths),
		Savings:         cfg.StartingSavings,
		MonthlyIncome:   cfg.MonthlyIncome,
		MonthlyExpenses: cfg.MonthlyExpenses,
	}

	result := &Result{}
	outcome := HorizonExhausted
	monthsToPayoff := 0

	for month := 0; month < cfg.HorizonMonths; month++ {
		state.Month = month

		// Terminal check at the top of the month.
		if state.MortgageBalance <= 0 {
			state.MortgageBalance = 0
			state.MonthlyPayment = 0
			outcome = PaidOff
			monthsToPayoff = month
			e.logger.Debug("mortgage paid off",
				zap.String("op", "simulation.Run"),
				zap.Int("month", month),
			)
			break
		}

		// Year boundary: refresh the annual allowance from the balance at
		// this instant and apply income/expense growth (skipped at month 0).
		if month%constants.MonthsPerYear == 0 {
			state.AnnualAllowance = constants.AnnualAllowanceRate * state.MortgageBalance
			state.AllowanceUsed = false
			if month > 0 {
				state.MonthlyIncome *= 1 + cfg.IncomeGrowthRate
				state.MonthlyExpenses *= 1 + cfg.ExpenseGrowthRate
			}
		}

		availableCash := state.MonthlyIncome - state.MonthlyExpenses
		overpaidThisMonth := 0.0

		// Rule 1: end-of-fixed-period sweep. The boundary itself forces a
		// payment recalculation at the post-boundary rate over the full
		// remaining term, whether or not cash moved.
		sweepEvent, boundary := policy.ApplyPeriodEndSweep(state)
		if boundary {
			if sweepEvent != nil {
				result.Events = append(result.Events, *sweepEvent)
				overpaidThisMonth += sweepEvent.Amount
			}
			if state.MortgageBalance > 0 {
				remaining := cfg.TermMonths - month
				if remaining > 0 {
					state.MonthlyPayment = loans.CalculateMonthlyPayment(state.MortgageBalance, schedule.RateAt(month), remaining)
					e.logger.Debug("recalculated monthly payment",
						zap.String("op", "simulation.Run"),
						zap.Int("month", month),
						zap.Float64("rate", schedule.RateAt(month)),
						zap.Int("remainingMonths", remaining),
						zap.Float64("payment", state.MonthlyPayment),
					)
				}
			}
		} else if variableEvent := policy.ApplyVariableSweep(state); variableEvent != nil {
			// Rule 2: variable-period threshold sweep.
			result.Events = append(result.Events, *variableEvent)
			overpaidThisMonth += variableEvent.Amount
		}

		// Regular scheduled payment. The principal portion is truncated to
		// the outstanding balance so the final payment clears the mortgage
		// exactly instead of overshooting below zero.
		rate := schedule.RateAt(month)
		interest := loans.CalculateInterestPayment(state.MortgageBalance, rate)
		principalPortion := state.MonthlyPayment - interest
		if principalPortion > state.MortgageBalance {
			principalPortion = state.MortgageBalance
		}
		state.MortgageBalance -= principalPortion
		state.InterestPaid += interest
		mortgagePayment := interest + principalPortion
		availableCash -= mortgagePayment

		// Rule 3: annual allowance, evaluated after the regular payment.
		if allowanceEvent := policy.ApplyAnnualAllowance(state); allowanceEvent != nil {
			result.Events = append(result.Events, *allowanceEvent)
			overpaidThisMonth += allowanceEvent.Amount
		}

		// Savings accrual on the pre-deposit balance.
		state.Savings, _ = savings.ApplyMonth(state.Savings, availableCash, cfg.SavingsRate, cfg.SavingsTaxRate)

		result.Records = append(result.Records, MonthlyRecord{
			Month:                  month,
			MortgageBalance:        state.MortgageBalance,
			Savings:                state.Savings,
			CumulativeOverpayments: state.Overpayments,
			Income:                 state.MonthlyIncome,
			Expenses:               state.MonthlyExpenses,
			Overpayment:            overpaidThisMonth,
			AvailableCash:          availableCash,
			MortgagePayment:        mortgagePayment,
		})
	}

	baseline := loans.FullTermInterest(cfg.Principal, schedule.FirstRate(), cfg.TermMonths)

	result.Summary = Summary{
		Outcome:           outcome,
		OutcomeLabel:      outcome.String(),
		PaidOff:           outcome == PaidOff,
		TotalInterestPaid: state.InterestPaid,
		BaselineInterest:  baseline,
		InterestSaved:     baseline - state.InterestPaid,
		FinalSavings:      state.Savings,
		TotalOverpayments: state.Overpayments,
	}
	if outcome == PaidOff {
		result.Summary.MonthsToPayoff = monthsToPayoff
	}

	e.logger.Debug("simulation complete",
		zap.String("op", "simulation.Run"),
		zap.String("outcome", outcome.String()),
		zap.Int("months", len(result.Records)),
		zap.Float64("interestPaid", state.InterestPaid),
		zap.Float64("overpayments", state.Overpayments),
	)

	return result, nil
}
