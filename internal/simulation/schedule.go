package simulation

// RatePeriod is a derived fixed-rate interval: [Start, End) in month
// indices, with the fractional annual rate in force during it.
type RatePeriod struct {
	Start int
	End   int
	Rate  float64
}

// RateSchedule resolves the applicable annual rate for any month of the
// simulation. Fixed periods are contiguous by construction, so at most one
// matches a given month; months past the last fixed period fall back to the
// variable rate. The table is small (a handful of periods), so lookups are a
// linear scan.
type RateSchedule struct {
	periods      []RatePeriod
	variableRate float64
}

// NewRateSchedule derives the fixed-rate intervals by cumulative-summing the
// declared durations starting at month 0.
func NewRateSchedule(fixed []FixedPeriod, variableRate float64) *RateSchedule {
	schedule := &RateSchedule{variableRate: variableRate}
	start := 0
	for _, period := range fixed {
		schedule.periods = append(schedule.periods, RatePeriod{
			Start: start,
			End:   start + period.Months,
			Rate:  period.Rate,
		})
		start += period.Months
	}
	return schedule
}

// RateAt returns the annual rate applicable at the given month.
func (s *RateSchedule) RateAt(month int) float64 {
	for _, period := range s.periods {
		if period.Start <= month && month < period.End {
			return period.Rate
		}
	}
	return s.variableRate
}

// FirstRate returns the rate in force at month 0: the first fixed period's
// rate, or the variable rate when no fixed periods are configured.
func (s *RateSchedule) FirstRate() float64 {
	if len(s.periods) == 0 {
		return s.variableRate
	}
	return s.periods[0].Rate
}

// PeriodEndingAt returns the index of the fixed period whose end boundary is
// exactly the given month, if any.
func (s *RateSchedule) PeriodEndingAt(month int) (int, bool) {
	for i, period := range s.periods {
		if month == period.End {
			return i, true
		}
	}
	return 0, false
}

// LastFixedEnd returns the end boundary of the final fixed period, or 0 when
// no fixed periods are configured.
func (s *RateSchedule) LastFixedEnd() int {
	if len(s.periods) == 0 {
		return 0
	}
	return s.periods[len(s.periods)-1].End
}

// HasFixedPeriods reports whether any fixed periods are configured.
func (s *RateSchedule) HasFixedPeriods() bool {
	return len(s.periods) > 0
}

// Periods returns the derived fixed-rate intervals.
func (s *RateSchedule) Periods() []RatePeriod {
	return s.periods
}
