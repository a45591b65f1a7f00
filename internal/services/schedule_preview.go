package services

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/peerlend/schedule-engine/internal/models"
	"github.com/peerlend/schedule-engine/pkg/logger"
)

// nominalPeriodDays is the days-per-period table used before a real
// calendar date exists. Real months and years are not exactly 30/365 days,
// so preview totals drift slightly from the actual schedule once dates
// materialize; that drift is accepted and bounded.
func nominalPeriodDays(frequency models.Frequency, offsetDays int) int {
	switch frequency {
	case models.FrequencyEvery3Days:
		return 3
	case models.FrequencyWeekly:
		return 7
	case models.FrequencyBiweekly:
		return 14
	case models.FrequencyEvery4Weeks:
		return 28
	case models.FrequencyMonthly:
		return 30
	case models.FrequencyQuarterly:
		return 91
	case models.FrequencyYearly:
		return 365
	case models.FrequencyOnce:
		return offsetDays
	default:
		logger.Warn("unknown payment frequency, assuming 30-day periods", "frequency", frequency.String())
		return 30
	}
}

// buildPreviewSchedule approximates the amortization before the loan has
// been accepted. Row 1 accrues over the configured first-payment offset;
// every later row accrues over the nominal period length. Slicing and
// rounding follow the actual engine exactly so the two regimes stay
// numerically consistent.
func buildPreviewSchedule(cfg *models.ScheduleConfig, offsetDays, count int) *models.Schedule {
	rate := dailyRate(cfg.AnnualRatePercent)
	base := principalSlice(cfg.PrincipalCents, count)
	periodDays := nominalPeriodDays(cfg.Frequency, offsetDays)

	rows := make([]models.ScheduleRow, 0, count)
	outstanding := cfg.PrincipalCents
	totalInterest := decimal.Zero
	elapsedDays := 0

	for i := 1; i <= count; i++ {
		days := periodDays
		if i == 1 {
			days = offsetDays
		}
		elapsedDays += days

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
		rows = append(rows, models.ScheduleRow{
			Index:          i,
			Label:          RelativeLabel(i, cfg.Frequency, offsetDays),
			PrincipalCents: rowPrincipal,
			InterestCents:  interestCents,
			TotalCents:     rowPrincipal + interestCents,
			BalanceCents:   outstanding,
		})
	}

	totalInterestCents := totalInterest.Round(0).IntPart()

	return &models.Schedule{
		Rows:               rows,
		TotalInterestCents: totalInterestCents,
		TotalToRepayCents:  cfg.PrincipalCents + totalInterestCents,
		DurationMonths:     int(math.Round(float64(elapsedDays) / 30)),
		Preview:            true,
	}
}
