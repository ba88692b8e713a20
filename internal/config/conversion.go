// Package config defines conversion utilities for configuration objects.
package config

import (
	"github.com/crandelmaker/mortgage-calculator/internal/simulation"
	"github.com/crandelmaker/mortgage-calculator/pkg/constants"
)

// ToSimulationConfig converts the file-facing configuration (percentage
// rates, emergency fund possibly in months of income) into the fractional
// value object the simulation engine consumes.
func (c *Configuration) ToSimulationConfig() simulation.Config {
	cfg := simulation.Config{
		Principal:    c.Mortgage.Principal,
		TermMonths:   c.Mortgage.TermMonths,
		VariableRate: percentToFraction(c.Mortgage.VariableRate),

		MonthlyIncome:     c.Cashflow.MonthlyIncome,
		MonthlyExpenses:   c.Cashflow.MonthlyExpenses,
		IncomeGrowthRate:  percentToFraction(c.Cashflow.IncomeGrowth),
		ExpenseGrowthRate: percentToFraction(c.Cashflow.ExpenseGrowth),

		StartingSavings: c.Savings.StartingBalance,
		SavingsRate:     percentToFraction(c.Savings.InterestRate),
		SavingsTaxRate:  percentToFraction(c.Savings.TaxRate),
		EmergencyFloor:  c.EmergencyFloor(),

		MinOverpaymentThreshold: c.Overpayments.MinimumThreshold,
		HorizonMonths:           c.Simulation.HorizonMonths,
	}

	for _, period := range c.Mortgage.FixedPeriods {
		cfg.FixedPeriods = append(cfg.FixedPeriods, simulation.FixedPeriod{
			Months: period.Months,
			Rate:   percentToFraction(period.Rate),
		})
	}

	return cfg
}

func percentToFraction(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}
