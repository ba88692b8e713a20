package simulation

import "testing"

func TestRateScheduleDerivation(t *testing.T) {
	schedule := NewRateSchedule([]FixedPeriod{
		{Months: 24, Rate: 0.041},
		{Months: 60, Rate: 0.034},
	}, 0.05)

	periods := schedule.Periods()
	if len(periods) != 2 {
		t.Fatalf("Periods() returned %d periods, expected 2", len(periods))
	}

	if periods[0].Start != 0 || periods[0].End != 24 {
		t.Errorf("first period = [%d, %d), expected [0, 24)", periods[0].Start, periods[0].End)
	}
	if periods[1].Start != 24 || periods[1].End != 84 {
		t.Errorf("second period = [%d, %d), expected [24, 84)", periods[1].Start, periods[1].End)
	}
	if schedule.LastFixedEnd() != 84 {
		t.Errorf("LastFixedEnd() = %d, expected 84", schedule.LastFixedEnd())
	}
}

func TestRateAt(t *testing.T) {
	schedule := NewRateSchedule([]FixedPeriod{
		{Months: 24, Rate: 0.041},
		{Months: 60, Rate: 0.034},
	}, 0.05)

	tests := []struct {
		name     string
		month    int
		expected float64
	}{
		{"First month", 0, 0.041},
		{"Last month of first period", 23, 0.041},
		{"Boundary belongs to second period", 24, 0.034},
		{"Inside second period", 50, 0.034},
		{"Last month of second period", 83, 0.034},
		{"Boundary past last period is variable", 84, 0.05},
		{"Deep into variable period", 200, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rate := schedule.RateAt(tt.month); rate != tt.expected {
				t.Errorf("RateAt(%d) = %v, expected %v", tt.month, rate, tt.expected)
			}
		})
	}
}

func TestRateAtNoFixedPeriods(t *testing.T) {
	schedule := NewRateSchedule(nil, 0.05)

	if rate := schedule.RateAt(0); rate != 0.05 {
		t.Errorf("RateAt(0) = %v, expected 0.05", rate)
	}
	if schedule.FirstRate() != 0.05 {
		t.Errorf("FirstRate() = %v, expected 0.05", schedule.FirstRate())
	}
	if schedule.HasFixedPeriods() {
		t.Errorf("HasFixedPeriods() = true, expected false")
	}
	if schedule.LastFixedEnd() != 0 {
		t.Errorf("LastFixedEnd() = %d, expected 0", schedule.LastFixedEnd())
	}
}

func TestPeriodEndingAt(t *testing.T) {
	schedule := NewRateSchedule([]FixedPeriod{
		{Months: 24, Rate: 0.041},
		{Months: 60, Rate: 0.034},
	}, 0.05)

	tests := []struct {
		name        string
		month       int
		expectIndex int
		expectFound bool
	}{
		{"End of first period", 24, 0, true},
		{"End of second period", 84, 1, true},
		{"Mid-period month", 50, 0, false},
		{"Month zero", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, found := schedule.PeriodEndingAt(tt.month)
			if found != tt.expectFound {
				t.Fatalf("PeriodEndingAt(%d) found = %t, expected %t", tt.month, found, tt.expectFound)
			}
			if found && index != tt.expectIndex {
				t.Errorf("PeriodEndingAt(%d) index = %d, expected %d", tt.month, index, tt.expectIndex)
			}
		})
	}
}

func TestFirstRate(t *testing.T) {
	schedule := NewRateSchedule([]FixedPeriod{{Months: 24, Rate: 0.041}}, 0.05)
	if schedule.FirstRate() != 0.041 {
		t.Errorf("FirstRate() = %v, expected 0.041", schedule.FirstRate())
	}
}
