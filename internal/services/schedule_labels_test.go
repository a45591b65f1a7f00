package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peerlend/schedule-engine/internal/models"
)

func TestFormatDueDate(t *testing.T) {
	assert.Equal(t, "5 Apr 2025", FormatDueDate(date(2025, time.April, 5)))
	assert.Equal(t, "28 Feb 2025", FormatDueDate(date(2025, time.February, 28)))
}

func TestRelativeLabel(t *testing.T) {
	tests := []struct {
		name       string
		index      int
		frequency  models.Frequency
		offsetDays int
		want       string
	}{
		{"monthly first", 1, models.FrequencyMonthly, 30, "1 month after loan start"},
		{"monthly third", 3, models.FrequencyMonthly, 30, "3 months after loan start"},
		{"monthly zero offset", 1, models.FrequencyMonthly, 0, "On loan start"},
		{"weekly first", 1, models.FrequencyWeekly, 7, "1 week after loan start"},
		{"weekly offset inferred by rounding", 1, models.FrequencyWeekly, 8, "1 week after loan start"},
		{"biweekly second", 2, models.FrequencyBiweekly, 14, "4 weeks after loan start"},
		{"every 4 weeks second", 2, models.FrequencyEvery4Weeks, 28, "8 weeks after loan start"},
		{"quarterly second", 2, models.FrequencyQuarterly, 91, "6 months after loan start"},
		{"yearly first", 1, models.FrequencyYearly, 365, "1 year after loan start"},
		{"yearly second", 2, models.FrequencyYearly, 365, "2 years after loan start"},
		{"every 3 days second", 2, models.FrequencyEvery3Days, 3, "6 days after loan start"},
		{"once at start", 1, models.FrequencyOnce, 0, "On loan start"},
		{"once offset", 1, models.FrequencyOnce, 45, "45 days after loan start"},
		{"once second row steps by offset", 2, models.FrequencyOnce, 45, "90 days after loan start"},
		{"once zero offset later row", 3, models.FrequencyOnce, 0, "On loan start"},
		{"unknown code falls back", 4, models.Frequency("whenever"), 30, "Payment 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeLabel(tt.index, tt.frequency, tt.offsetDays))
		})
	}
}

// Legacy alias codes must keep producing the exact strings the canonical
// codes produce, since the strings are persisted by callers.
func TestRelativeLabel_AliasParity(t *testing.T) {
	aliases := map[string]models.Frequency{
		"every-month": models.FrequencyMonthly,
		"every-week":  models.FrequencyWeekly,
		"fortnightly": models.FrequencyBiweekly,
		"custom_days": models.FrequencyOnce,
		"annual":      models.FrequencyYearly,
	}
	for legacy, canonical := range aliases {
		for index := 1; index <= 3; index++ {
			assert.Equal(t,
				RelativeLabel(index, canonical, 30),
				RelativeLabel(index, models.ParseFrequency(legacy), 30),
				"alias %q index %d", legacy, index)
		}
	}
}
