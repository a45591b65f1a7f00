package models

import "strings"

// Frequency is the cadence of scheduled payments. The engine only ever
// operates on the canonical values below; legacy spellings coming from
// stored agreements are translated by ParseFrequency at the boundary.
type Frequency string

// Canonical frequency constants
const (
	FrequencyEvery3Days  Frequency = "every_3_days"
	FrequencyWeekly      Frequency = "weekly"
	FrequencyBiweekly    Frequency = "biweekly"
	FrequencyEvery4Weeks Frequency = "every_4_weeks"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyQuarterly   Frequency = "quarterly"
	FrequencyYearly      Frequency = "yearly"
	FrequencyOnce        Frequency = "once"
)

// frequencyAliases maps legacy codes still present in old agreement rows
// onto canonical values. Output for an alias must stay identical to the
// output for its canonical value, so translation happens before any
// scheduling or labeling logic runs.
var frequencyAliases = map[string]Frequency{
	"3_days":        FrequencyEvery3Days,
	"3-days":        FrequencyEvery3Days,
	"three_days":    FrequencyEvery3Days,
	"every-week":    FrequencyWeekly,
	"each_week":     FrequencyWeekly,
	"fortnightly":   FrequencyBiweekly,
	"every-2-weeks": FrequencyBiweekly,
	"every-4-weeks": FrequencyEvery4Weeks,
	"4_weeks":       FrequencyEvery4Weeks,
	"every-month":   FrequencyMonthly,
	"each_month":    FrequencyMonthly,
	"every-quarter": FrequencyQuarterly,
	"3_months":      FrequencyQuarterly,
	"every-year":    FrequencyYearly,
	"annual":        FrequencyYearly,
	"annually":      FrequencyYearly,
	"one_time":      FrequencyOnce,
	"one-time":      FrequencyOnce,
	"single":        FrequencyOnce,
	"custom_days":   FrequencyOnce,
	"custom-days":   FrequencyOnce,
}

// ParseFrequency normalizes a raw frequency code. Unknown codes are
// returned as-is rather than rejected: downstream scheduling falls back to
// monthly stepping and labeling falls back to "Payment N", so an
// unrecognized but non-empty code never blocks a schedule.
func ParseFrequency(code string) Frequency {
	c := strings.ToLower(strings.TrimSpace(code))
	if canonical, ok := frequencyAliases[c]; ok {
		return canonical
	}
	return Frequency(c)
}

// Valid reports whether f is one of the canonical frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyEvery3Days, FrequencyWeekly, FrequencyBiweekly,
		FrequencyEvery4Weeks, FrequencyMonthly, FrequencyQuarterly,
		FrequencyYearly, FrequencyOnce:
		return true
	}
	return false
}

func (f Frequency) String() string {
	return string(f)
}
