package simulation

import (
	"fmt"

	"github.com/crandelmaker/mortgage-calculator/pkg/mathutil"
	"go.uber.org/zap"
)

// PolicyEngine evaluates the three overpayment rules for a month, in fixed
// priority order: the end-of-fixed-period sweep, the variable-period
// threshold sweep (only when the first did not fire), and the annual
// allowance. All rules move cash from savings to principal, capped at the
// outstanding balance.
type PolicyEngine struct {
	logger         *zap.Logger
	schedule       *RateSchedule
	emergencyFloor float64
	minThreshold   float64
}

// NewPolicyEngine creates a policy engine for one simulation run.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewPolicyEngine(logger *zap.Logger, schedule *RateSchedule, emergencyFloor, minThreshold float64) *PolicyEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PolicyEngine{
		logger:         logger,
		schedule:       schedule,
		emergencyFloor: emergencyFloor,
		minThreshold:   minThreshold,
	}
}

// spareCash is the savings above the emergency floor available for sweeping.
func (pe *PolicyEngine) spareCash(state *State) float64 {
	return mathutil.Max(0, state.Savings-pe.emergencyFloor)
}

// applyOverpayment moves amount from savings to principal, capped at the
// outstanding balance, and returns the amount actually applied.
func (pe *PolicyEngine) applyOverpayment(state *State, amount float64) float64 {
	amount = mathutil.Min(amount, state.MortgageBalance)
	state.MortgageBalance -= amount
	state.Savings -= amount
	state.Overpayments += amount
	return amount
}

// ApplyPeriodEndSweep evaluates rule 1: on the end boundary of any fixed
// period, sweep all spare cash above the emergency floor into the mortgage.
// The boolean reports whether the month was a period-end boundary at all,
// which suppresses rule 2 and triggers a payment recalculation even when no
// cash moved. A successful sweep also clears the annual-allowance flag, so
// the annual rule may fire a second time later in the same year.
func (pe *PolicyEngine) ApplyPeriodEndSweep(state *State) (*OverpaymentEvent, bool) {
	index, boundary := pe.schedule.PeriodEndingAt(state.Month)
	if !boundary {
		return nil, false
	}

	lumpSum := pe.spareCash(state)
	if lumpSum <= 0 {
		return nil, true
	}

	applied := pe.applyOverpayment(state, lumpSum)
	state.AllowanceUsed = false

	pe.logger.Debug("end-of-fixed-period sweep",
		zap.String("op", "simulation.ApplyPeriodEndSweep"),
		zap.Int("month", state.Month),
		zap.Int("period", index+1),
		zap.Float64("amount", applied),
	)

	return &OverpaymentEvent{
		Month:  state.Month,
		Amount: applied,
		Kind:   fmt.Sprintf("End of fixed period %d", index+1),
	}, true
}

// ApplyVariableSweep evaluates rule 2: strictly after the last fixed period
// ends, sweep spare cash whenever it reaches the configured minimum
// threshold. Only meaningful when fixed periods exist and rule 1 did not
// fire this month.
func (pe *PolicyEngine) ApplyVariableSweep(state *State) *OverpaymentEvent {
	if !pe.schedule.HasFixedPeriods() || state.Month <= pe.schedule.LastFixedEnd() {
		return nil
	}

	potential := pe.spareCash(state)
	if potential < pe.minThreshold || potential <= 0 {
		return nil
	}

	applied := pe.applyOverpayment(state, potential)
	if applied <= 0 {
		return nil
	}

	pe.logger.Debug("variable-period threshold sweep",
		zap.String("op", "simulation.ApplyVariableSweep"),
		zap.Int("month", state.Month),
		zap.Float64("amount", applied),
	)

	return &OverpaymentEvent{
		Month:  state.Month,
		Amount: applied,
		Kind:   "Variable rate period",
	}
}

// ApplyAnnualAllowance evaluates rule 3: once per calendar year of the
// mortgage, overpay the minimum of spare cash, the 10%-of-balance allowance
// computed at the year's first month, and the outstanding balance. Fires
// only when spare cash reaches the minimum threshold.
func (pe *PolicyEngine) ApplyAnnualAllowance(state *State) *OverpaymentEvent {
	if state.AllowanceUsed || state.Savings <= pe.emergencyFloor {
		return nil
	}

	spare := state.Savings - pe.emergencyFloor
	if spare < pe.minThreshold {
		return nil
	}

	amount := mathutil.Min(spare, state.AnnualAllowance)
	amount = mathutil.Min(amount, state.MortgageBalance)
	if amount <= 0 {
		return nil
	}

	applied := pe.applyOverpayment(state, amount)
	state.AllowanceUsed = true

	year := state.Month/12 + 1
	pe.logger.Debug("annual allowance overpayment",
		zap.String("op", "simulation.ApplyAnnualAllowance"),
		zap.Int("month", state.Month),
		zap.Int("year", year),
		zap.Float64("amount", applied),
	)

	return &OverpaymentEvent{
		Month:  state.Month,
		Amount: applied,
		Kind:   fmt.Sprintf("Annual overpayment (Year %d)", year),
	}
}
