package services

import (
	"fmt"
	"math"
	"time"

	"github.com/peerlend/schedule-engine/internal/models"
)

// FormatDueDate renders a concrete payment date as a short display string,
// e.g. "5 Apr 2025".
func FormatDueDate(date time.Time) string {
	return date.Format("2 Jan 2006")
}

// RelativeLabel renders the position of a payment before a real start date
// exists, e.g. "3 months after loan start". The unit follows the frequency
// family; the first payment's position in that unit is inferred from the
// offset in days by rounded division (a 30-day offset on a monthly loan is
// "1 month"). A resolved offset of zero reads "On loan start", and an
// unrecognized frequency falls back to "Payment N".
func RelativeLabel(index int, frequency models.Frequency, offsetDays int) string {
	switch frequency {
	case models.FrequencyEvery3Days:
		return countedLabel(offsetDays+(index-1)*3, "day")
	case models.FrequencyWeekly:
		return countedLabel(roundDiv(offsetDays, 7)+(index-1), "week")
	case models.FrequencyBiweekly:
		return countedLabel(roundDiv(offsetDays, 7)+(index-1)*2, "week")
	case models.FrequencyEvery4Weeks:
		return countedLabel(roundDiv(offsetDays, 7)+(index-1)*4, "week")
	case models.FrequencyMonthly:
		return countedLabel(roundDiv(offsetDays, 30)+(index-1), "month")
	case models.FrequencyQuarterly:
		return countedLabel(roundDiv(offsetDays, 30)+(index-1)*3, "month")
	case models.FrequencyYearly:
		return countedLabel(roundDiv(offsetDays, 365)+(index-1), "year")
	case models.FrequencyOnce:
		return countedLabel(offsetDays*index, "day")
	default:
		return fmt.Sprintf("Payment %d", index)
	}
}

// countedLabel renders "N unit(s) after loan start", or "On loan start"
// when the count resolves to zero.
func countedLabel(n int, unit string) string {
	if n == 0 {
		return "On loan start"
	}
	if n == 1 {
		return fmt.Sprintf("1 %s after loan start", unit)
	}
	return fmt.Sprintf("%d %ss after loan start", n, unit)
}

func roundDiv(a, b int) int {
	return int(math.Round(float64(a) / float64(b)))
}
