package services

import (
	"math"
	"time"

	"github.com/peerlend/schedule-engine/internal/models"
	"github.com/peerlend/schedule-engine/pkg/logger"
)

// AddDays returns date shifted by n calendar days. n may be negative.
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// AddMonthsKeepingDay adds n months, keeping the day-of-month. When the
// original day does not exist in the target month (31 Jan + 1 month), the
// result clamps to the last valid day of that month. The clamp applies to
// this call only; a later call restarts from its own input's day.
func AddMonthsKeepingDay(date time.Time, n int) time.Time {
	year, month, day := date.Date()
	total := int(month) - 1 + n
	targetYear := year + total/12
	targetMonth := total % 12
	if targetMonth < 0 {
		targetMonth += 12
		targetYear--
	}
	m := time.Month(targetMonth + 1)
	if last := daysInMonth(targetYear, m); day > last {
		day = last
	}
	return time.Date(targetYear, m, day, 0, 0, 0, 0, date.Location())
}

// AddYears adds n years keeping month and day, except that Feb 29 clamps
// to Feb 28 when the target year is not a leap year.
func AddYears(date time.Time, n int) time.Time {
	year, month, day := date.Date()
	targetYear := year + n
	if month == time.February && day == 29 && !isLeapYear(targetYear) {
		day = 28
	}
	return time.Date(targetYear, month, day, 0, 0, 0, 0, date.Location())
}

// AddOnePeriod advances date by one payment period of the given frequency.
// Unrecognized codes are logged and treated as monthly so that scheduling
// is never blocked by a bad code.
func AddOnePeriod(date time.Time, frequency models.Frequency) time.Time {
	switch frequency {
	case models.FrequencyEvery3Days:
		return AddDays(date, 3)
	case models.FrequencyWeekly:
		return AddDays(date, 7)
	case models.FrequencyBiweekly:
		return AddDays(date, 14)
	case models.FrequencyEvery4Weeks:
		return AddDays(date, 28)
	case models.FrequencyMonthly, models.FrequencyOnce:
		return AddMonthsKeepingDay(date, 1)
	case models.FrequencyQuarterly:
		return AddMonthsKeepingDay(date, 3)
	case models.FrequencyYearly:
		return AddMonthsKeepingDay(date, 12)
	default:
		logger.Warn("unknown payment frequency, defaulting to monthly", "frequency", frequency.String())
		return AddMonthsKeepingDay(date, 1)
	}
}

// NormalizeFirstDueDate guarantees the first due date falls strictly after
// the transfer date. A first due date on or before the transfer would make
// a zero-length first period with zero (or undefined) interest, which the
// rest of the engine assumes cannot happen.
func NormalizeFirstDueDate(transferDate, firstDueDate time.Time, frequency models.Frequency) time.Time {
	transfer := truncateToDay(transferDate)
	due := truncateToDay(firstDueDate)
	if !due.After(transfer) {
		return AddOnePeriod(transfer, frequency)
	}
	return due
}

// GeneratePaymentDates produces the ordered calendar dates of every
// scheduled payment: the normalized first due date, then count-1 further
// periods. The normalized first due date is returned as well since callers
// need it for duration and label computations.
func GeneratePaymentDates(transferDate, firstDueDate time.Time, frequency models.Frequency, count int) ([]time.Time, time.Time) {
	normalized := NormalizeFirstDueDate(transferDate, firstDueDate, frequency)

	dates := make([]time.Time, 0, count)
	current := normalized
	for i := 0; i < count; i++ {
		dates = append(dates, current)
		current = AddOnePeriod(current, frequency)
	}
	return dates, normalized
}

// daysBetween counts whole calendar days from a to b, ignoring
// time-of-day and DST by comparing UTC midnights.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Round(ub.Sub(ua).Hours() / 24))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
