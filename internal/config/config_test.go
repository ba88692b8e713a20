package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const exampleYAML = `mortgage:
  principal: 100000
  termMonths: 300
  fixedPeriods:
    - months: 24
      rate: 4.1
    - months: 60
      rate: 3.4
  variableRate: 5.0
cashflow:
  monthlyIncome: 3130
  monthlyExpenses: 2000
  incomeGrowth: 2.0
  expenseGrowth: 2.0
savings:
  startingBalance: 16000
  interestRate: 3.6
  taxRate: 20.0
  emergencyFundMonths: 4
overpayments:
  minimumThreshold: 1000
simulation:
  horizonMonths: 360
logging:
  level: debug
  format: console
output:
  format: csv
`

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeTempConfig(t, exampleYAML)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Mortgage.Principal != 100000 {
		t.Errorf("Mortgage.Principal = %v, expected 100000", conf.Mortgage.Principal)
	}
	if conf.Mortgage.TermMonths != 300 {
		t.Errorf("Mortgage.TermMonths = %d, expected 300", conf.Mortgage.TermMonths)
	}
	if len(conf.Mortgage.FixedPeriods) != 2 {
		t.Fatalf("len(FixedPeriods) = %d, expected 2", len(conf.Mortgage.FixedPeriods))
	}
	if conf.Mortgage.FixedPeriods[0].Months != 24 || conf.Mortgage.FixedPeriods[0].Rate != 4.1 {
		t.Errorf("FixedPeriods[0] = %+v, expected 24 months at 4.1", conf.Mortgage.FixedPeriods[0])
	}
	if conf.Mortgage.VariableRate != 5.0 {
		t.Errorf("Mortgage.VariableRate = %v, expected 5.0", conf.Mortgage.VariableRate)
	}
	if conf.Cashflow.MonthlyIncome != 3130 {
		t.Errorf("Cashflow.MonthlyIncome = %v, expected 3130", conf.Cashflow.MonthlyIncome)
	}
	if conf.Savings.TaxRate != 20.0 {
		t.Errorf("Savings.TaxRate = %v, expected 20.0", conf.Savings.TaxRate)
	}
	if conf.Overpayments.MinimumThreshold != 1000 {
		t.Errorf("Overpayments.MinimumThreshold = %v, expected 1000", conf.Overpayments.MinimumThreshold)
	}
	if conf.Simulation.HorizonMonths != 360 {
		t.Errorf("Simulation.HorizonMonths = %d, expected 360", conf.Simulation.HorizonMonths)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("Logging = %+v, expected debug/console", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, expected csv", conf.Output.Format)
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(exampleYAML))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	if conf.Mortgage.Principal != 100000 {
		t.Errorf("Mortgage.Principal = %v, expected 100000", conf.Mortgage.Principal)
	}
	if len(conf.Mortgage.FixedPeriods) != 2 {
		t.Errorf("len(FixedPeriods) = %d, expected 2", len(conf.Mortgage.FixedPeriods))
	}
	if conf.Simulation.HorizonMonths != 360 {
		t.Errorf("Simulation.HorizonMonths = %d, expected 360", conf.Simulation.HorizonMonths)
	}
}

func TestLoadConfigurationFromReaderInvalidYAML(t *testing.T) {
	_, err := LoadConfigurationFromReader(strings.NewReader("mortgage: ["))
	if err == nil {
		t.Error("LoadConfigurationFromReader() error = nil, expected a parse error")
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadConfiguration() error = nil, expected an error for a missing file")
	}
}

func TestEmergencyFloor(t *testing.T) {
	tests := []struct {
		name     string
		savings  Savings
		income   float64
		expected float64
	}{
		{
			name:     "Months of income",
			savings:  Savings{EmergencyFundMonths: 4},
			income:   3130,
			expected: 12520,
		},
		{
			name:     "Absolute amount",
			savings:  Savings{EmergencyFund: 10000},
			income:   3130,
			expected: 10000,
		},
		{
			name:     "Absolute amount wins over months",
			savings:  Savings{EmergencyFund: 10000, EmergencyFundMonths: 4},
			income:   3130,
			expected: 10000,
		},
		{
			name:     "Neither set",
			savings:  Savings{},
			income:   3130,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := Configuration{
				Savings:  tt.savings,
				Cashflow: Cashflow{MonthlyIncome: tt.income},
			}
			if result := conf.EmergencyFloor(); result != tt.expected {
				t.Errorf("EmergencyFloor() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestToSimulationConfig(t *testing.T) {
	conf := Configuration{
		Mortgage: Mortgage{
			Principal:  100000,
			TermMonths: 300,
			FixedPeriods: []FixedPeriod{
				{Months: 24, Rate: 4.1},
			},
			VariableRate: 5.0,
		},
		Cashflow: Cashflow{
			MonthlyIncome:   3130,
			MonthlyExpenses: 2000,
			IncomeGrowth:    2.0,
			ExpenseGrowth:   2.0,
		},
		Savings: Savings{
			StartingBalance:     16000,
			InterestRate:        3.6,
			TaxRate:             20.0,
			EmergencyFundMonths: 4,
		},
		Overpayments: Overpayments{MinimumThreshold: 1000},
		Simulation:   Simulation{HorizonMonths: 360},
	}

	cfg := conf.ToSimulationConfig()

	if cfg.Principal != 100000 || cfg.TermMonths != 300 || cfg.HorizonMonths != 360 {
		t.Errorf("scalar fields not carried over: %+v", cfg)
	}
	if len(cfg.FixedPeriods) != 1 {
		t.Fatalf("len(FixedPeriods) = %d, expected 1", len(cfg.FixedPeriods))
	}
	if cfg.FixedPeriods[0].Rate != 0.041 {
		t.Errorf("FixedPeriods[0].Rate = %v, expected 0.041", cfg.FixedPeriods[0].Rate)
	}
	if cfg.VariableRate != 0.05 {
		t.Errorf("VariableRate = %v, expected 0.05", cfg.VariableRate)
	}
	if cfg.IncomeGrowthRate != 0.02 || cfg.ExpenseGrowthRate != 0.02 {
		t.Errorf("growth rates = %v/%v, expected 0.02/0.02", cfg.IncomeGrowthRate, cfg.ExpenseGrowthRate)
	}
	if cfg.SavingsRate != 0.036 {
		t.Errorf("SavingsRate = %v, expected 0.036", cfg.SavingsRate)
	}
	if cfg.SavingsTaxRate != 0.2 {
		t.Errorf("SavingsTaxRate = %v, expected 0.2", cfg.SavingsTaxRate)
	}
	if cfg.EmergencyFloor != 12520 {
		t.Errorf("EmergencyFloor = %v, expected 12520", cfg.EmergencyFloor)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("converted config failed validation: %v", err)
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(*Configuration)
		expectedPhrases []string
	}{
		{
			name:            "Clean configuration",
			mutate:          func(c *Configuration) {},
			expectedPhrases: nil,
		},
		{
			name: "Fixed periods cover the whole term",
			mutate: func(c *Configuration) {
				c.Mortgage.FixedPeriods = []FixedPeriod{{Months: 300, Rate: 4.1}}
			},
			expectedPhrases: []string{"no variable-rate period"},
		},
		{
			name: "Emergency floor above starting savings",
			mutate: func(c *Configuration) {
				c.Savings.EmergencyFundMonths = 10
			},
			expectedPhrases: []string{"exceeds starting savings"},
		},
		{
			name: "Horizon shorter than term",
			mutate: func(c *Configuration) {
				c.Simulation.HorizonMonths = 120
			},
			expectedPhrases: []string{"shorter than the mortgage term"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := Configuration{
				Mortgage: Mortgage{
					Principal:    100000,
					TermMonths:   300,
					FixedPeriods: []FixedPeriod{{Months: 24, Rate: 4.1}},
					VariableRate: 5.0,
				},
				Cashflow: Cashflow{MonthlyIncome: 3130, MonthlyExpenses: 2000},
				Savings: Savings{
					StartingBalance:     16000,
					InterestRate:        3.6,
					TaxRate:             20.0,
					EmergencyFundMonths: 4,
				},
				Overpayments: Overpayments{MinimumThreshold: 1000},
				Simulation:   Simulation{HorizonMonths: 360},
			}
			tt.mutate(&conf)

			warnings := conf.ValidateConfiguration()

			if len(tt.expectedPhrases) == 0 && len(warnings) != 0 {
				t.Fatalf("ValidateConfiguration() = %v, expected no warnings", warnings)
			}
			for _, phrase := range tt.expectedPhrases {
				found := false
				for _, warning := range warnings {
					if strings.Contains(warning, phrase) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected a warning containing %q, got %v", phrase, warnings)
				}
			}
		})
	}
}
