package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peerlend/schedule-engine/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonthsKeepingDay(t *testing.T) {
	tests := []struct {
		name   string
		in     time.Time
		months int
		want   time.Time
	}{
		{"plain month", date(2025, time.March, 15), 1, date(2025, time.April, 15)},
		{"clamp to february", date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{"clamp to leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"no cumulative drift", date(2025, time.January, 31), 2, date(2025, time.March, 31)},
		{"clamp to 30-day month", date(2025, time.March, 31), 1, date(2025, time.April, 30)},
		{"year rollover", date(2025, time.November, 15), 3, date(2026, time.February, 15)},
		{"negative months", date(2025, time.March, 31), -1, date(2025, time.February, 28)},
		{"negative year rollover", date(2025, time.January, 15), -2, date(2024, time.November, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonthsKeepingDay(tt.in, tt.months))
		})
	}
}

func TestAddYears(t *testing.T) {
	assert.Equal(t, date(2025, time.February, 28), AddYears(date(2024, time.February, 29), 1))
	assert.Equal(t, date(2028, time.February, 29), AddYears(date(2024, time.February, 29), 4))
	assert.Equal(t, date(2026, time.July, 4), AddYears(date(2025, time.July, 4), 1))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, date(2025, time.January, 31), AddDays(date(2025, time.January, 1), 30))
	assert.Equal(t, date(2024, time.December, 31), AddDays(date(2025, time.January, 1), -1))
}

func TestAddOnePeriod(t *testing.T) {
	start := date(2025, time.January, 31)

	assert.Equal(t, date(2025, time.February, 3), AddOnePeriod(start, models.FrequencyEvery3Days))
	assert.Equal(t, date(2025, time.February, 7), AddOnePeriod(start, models.FrequencyWeekly))
	assert.Equal(t, date(2025, time.February, 14), AddOnePeriod(start, models.FrequencyBiweekly))
	assert.Equal(t, date(2025, time.February, 28), AddOnePeriod(start, models.FrequencyEvery4Weeks))
	assert.Equal(t, date(2025, time.February, 28), AddOnePeriod(start, models.FrequencyMonthly))
	assert.Equal(t, date(2025, time.April, 30), AddOnePeriod(start, models.FrequencyQuarterly))
	assert.Equal(t, date(2026, time.January, 31), AddOnePeriod(start, models.FrequencyYearly))

	// unknown codes fall back to monthly instead of failing
	assert.Equal(t, date(2025, time.February, 28), AddOnePeriod(start, models.Frequency("whenever")))
}

func TestNormalizeFirstDueDate(t *testing.T) {
	transfer := date(2025, time.January, 15)

	// due date after the transfer passes through unchanged
	due := date(2025, time.February, 1)
	assert.Equal(t, due, NormalizeFirstDueDate(transfer, due, models.FrequencyMonthly))

	// due on the transfer date is pushed one full period out
	assert.Equal(t, date(2025, time.February, 15),
		NormalizeFirstDueDate(transfer, transfer, models.FrequencyMonthly))

	// due before the transfer date as well
	assert.Equal(t, date(2025, time.January, 22),
		NormalizeFirstDueDate(transfer, date(2024, time.December, 1), models.FrequencyWeekly))

	// time-of-day on either side is ignored
	lateTransfer := time.Date(2025, time.January, 15, 23, 30, 0, 0, time.UTC)
	earlyDue := time.Date(2025, time.January, 15, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, date(2025, time.February, 15),
		NormalizeFirstDueDate(lateTransfer, earlyDue, models.FrequencyMonthly))
}

func TestGeneratePaymentDates(t *testing.T) {
	transfer := date(2025, time.January, 1)
	firstDue := date(2025, time.January, 31)

	dates, normalized := GeneratePaymentDates(transfer, firstDue, models.FrequencyMonthly, 4)

	assert.Equal(t, firstDue, normalized)
	assert.Equal(t, []time.Time{
		date(2025, time.January, 31),
		date(2025, time.February, 28), // clamped
		date(2025, time.March, 28),    // steps from the clamped day
		date(2025, time.April, 28),
	}, dates)
}

func TestGeneratePaymentDates_NormalizesFirst(t *testing.T) {
	transfer := date(2025, time.March, 10)

	dates, normalized := GeneratePaymentDates(transfer, transfer, models.FrequencyWeekly, 3)

	assert.Equal(t, date(2025, time.March, 17), normalized)
	assert.Equal(t, []time.Time{
		date(2025, time.March, 17),
		date(2025, time.March, 24),
		date(2025, time.March, 31),
	}, dates)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 30, daysBetween(date(2025, time.January, 1), date(2025, time.January, 31)))
	assert.Equal(t, 0, daysBetween(date(2025, time.January, 1), date(2025, time.January, 1)))
	// leap day counts
	assert.Equal(t, 29, daysBetween(date(2024, time.February, 1), date(2024, time.March, 1)))
}
