// Package config defines the data structures related to configuration and
// includes functions for loading and converting the config.
package config

import (
	"fmt"
	"io"

	"github.com/crandelmaker/mortgage-calculator/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-calculator. Rates are
// expressed as percentages in the file (4.1 means 4.1%) and converted to
// fractions for the simulation engine.
type Configuration struct {
	Mortgage     Mortgage
	Cashflow     Cashflow
	Savings      Savings
	Overpayments Overpayments
	Simulation   Simulation
	Logging      LoggingConfig `yaml:"logging,omitempty"`
	Output       OutputConfig  `yaml:"output,omitempty"`
}

// Mortgage holds the loan parameters.
type Mortgage struct {
	Principal    float64
	TermMonths   int
	FixedPeriods []FixedPeriod
	VariableRate float64 // percent
}

// FixedPeriod declares one fixed-rate period by duration and rate.
type FixedPeriod struct {
	Months int
	Rate   float64 // percent
}

// Cashflow holds the monthly income/expense parameters and their annual
// growth rates.
type Cashflow struct {
	MonthlyIncome   float64
	MonthlyExpenses float64
	IncomeGrowth    float64 // percent per year
	ExpenseGrowth   float64 // percent per year
}

// Savings holds the cash-savings parameters. The emergency fund floor may be
// given as an absolute amount or in months of income; the absolute amount
// wins when both are set.
type Savings struct {
	StartingBalance     float64
	InterestRate        float64 // percent
	TaxRate             float64 // percent withheld from interest
	EmergencyFund       float64 // absolute floor
	EmergencyFundMonths float64 // floor in months of income
}

// Overpayments holds the overpayment policy parameters.
type Overpayments struct {
	MinimumThreshold float64
}

// Simulation holds the run parameters.
type Simulation struct {
	HorizonMonths int
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format   string `yaml:"format,omitempty"`   // pretty, csv
	XlsxFile string `yaml:"xlsxFile,omitempty"` // optional workbook output path
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory reader. Used by the HTTP server for uploaded configs.
func LoadConfigurationFromReader(reader io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// EmergencyFloor resolves the configured emergency fund to an absolute
// amount.
func (c *Configuration) EmergencyFloor() float64 {
	if c.Savings.EmergencyFund > 0 {
		return c.Savings.EmergencyFund
	}
	return c.Savings.EmergencyFundMonths * c.Cashflow.MonthlyIncome
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard invariants are enforced separately by the
// simulation engine before a run starts.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	totalFixedMonths := 0
	for _, period := range c.Mortgage.FixedPeriods {
		totalFixedMonths += period.Months
	}

	if warning := validation.ValidateFixedPeriodCoverage(totalFixedMonths, c.Mortgage.TermMonths); warning != "" {
		warnings = append(warnings, warning)
	}
	if warning := validation.ValidateEmergencyFund(c.EmergencyFloor(), c.Savings.StartingBalance); warning != "" {
		warnings = append(warnings, warning)
	}
	if warning := validation.ValidateHorizon(c.Simulation.HorizonMonths, c.Mortgage.TermMonths); warning != "" {
		warnings = append(warnings, warning)
	}

	return warnings
}
