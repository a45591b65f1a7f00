package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peerlend/schedule-engine/internal/models"
)

// daysPerYear is the simple-interest day-count convention: actual elapsed
// days over a fixed 365-day year, no leap-day adjustment to the rate.
const daysPerYear = 365

// dailyRate converts a decimal percent annual rate into a per-day rate.
func dailyRate(annualRatePercent float64) decimal.Decimal {
	return decimal.NewFromFloat(annualRatePercent).
		Div(decimal.NewFromInt(100 * daysPerYear))
}

// principalSlice returns the per-payment principal in cents. The base
// slice is floored so it can never over-draw the principal; the final
// payment absorbs the remainder, which is therefore always non-negative,
// the balance never dips below zero and lands on exactly zero.
func principalSlice(principalCents int64, count int) int64 {
	return principalCents / int64(count)
}

// buildActualSchedule computes an equal-principal amortization over
// concrete payment dates. Interest for each period prorates over the
// actual elapsed calendar days of that period:
//
//	interest = outstandingBefore × (annualRate/365) × days
//
// Monetary figures are rounded to the cent independently per row at
// emission. Total interest accumulates the unrounded per-period values and
// is rounded once at the end (sum-then-round).
func buildActualSchedule(cfg *models.ScheduleConfig, transferDate time.Time, paymentDates []time.Time) *models.Schedule {
	count := len(paymentDates)
	rate := dailyRate(cfg.AnnualRatePercent)
	base := principalSlice(cfg.PrincipalCents, count)

	rows := make([]models.ScheduleRow, 0, count)
	outstanding := cfg.PrincipalCents
	previous := truncateToDay(transferDate)
	totalInterest := decimal.Zero

	for i := 1; i <= count; i++ {
		due := paymentDates[i-1]
		days := daysBetween(previous, due)

		rowPrincipal := base
		if i == count {
			rowPrincipal = outstanding
		}

		interest := decimal.NewFromInt(outstanding).
			Mul(rate).
			Mul(decimal.NewFromInt(int64(days)))
		totalInterest = totalInterest.Add(interest)
		interestCents := interest.Round(0).IntPart()

		outstanding -= rowPrincipal
		dueCopy := due
		rows = append(rows, models.ScheduleRow{
			Index:          i,
			DueDate:        &dueCopy,
			PrincipalCents: rowPrincipal,
			InterestCents:  interestCents,
			TotalCents:     rowPrincipal + interestCents,
			BalanceCents:   outstanding,
		})
		previous = due
	}

	totalInterestCents := totalInterest.Round(0).IntPart()
	last := paymentDates[count-1]

	return &models.Schedule{
		Rows:               rows,
		TotalInterestCents: totalInterestCents,
		TotalToRepayCents:  cfg.PrincipalCents + totalInterestCents,
		DurationMonths:     durationMonths(transferDate, last),
		Preview:            false,
	}
}

// durationMonths is a coarse display aid: whole-month difference between
// the transfer date and the last payment date, never negative. It feeds no
// financial computation.
func durationMonths(transferDate, lastPaymentDate time.Time) int {
	months := (lastPaymentDate.Year()-transferDate.Year())*12 +
		int(lastPaymentDate.Month()) - int(transferDate.Month())
	if months < 0 {
		return 0
	}
	return months
}
