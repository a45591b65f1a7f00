package models

import (
	"fmt"
	"time"
)

// Repayment type constants
const (
	RepaymentTypeOneTime      = "one_time"
	RepaymentTypeInstallments = "installments"
)

// Loan start mode constants
const (
	StartModeFixedDate      = "fixed_date"
	StartModeUponAcceptance = "upon_acceptance"
)

// ScheduleConfig is the input to the schedule engine. Monetary amounts are
// integer cents; the annual rate is a decimal percent (5.0 means 5%).
// The config is treated as immutable once handed to the engine.
type ScheduleConfig struct {
	PrincipalCents    int64     `json:"principal_cents"`
	AnnualRatePercent float64   `json:"annual_rate_percent"`
	RepaymentType     string    `json:"repayment_type"`
	InstallmentCount  int       `json:"installment_count"`
	Frequency         Frequency `json:"frequency"`
	StartMode         string    `json:"start_mode"`

	// StartDate is the money-transfer date. Required for fixed_date mode;
	// for upon_acceptance it becomes known once the borrower accepts.
	StartDate *time.Time `json:"start_date,omitempty"`

	// FirstDueDate optionally pins the first payment date. When nil the
	// first due date is StartDate + FirstPaymentOffsetDays.
	FirstDueDate *time.Time `json:"first_due_date,omitempty"`

	// FirstPaymentOffsetDays is used when no explicit first due date is
	// supplied, and drives preview-mode accrual and labels.
	FirstPaymentOffsetDays int `json:"first_payment_offset_days"`

	// HasStartDate indicates whether a real start date is currently known.
	// Setting it without StartDate is a configuration contradiction and is
	// rejected, never silently downgraded to a preview.
	HasStartDate bool `json:"has_start_date"`
}

// Validate makes the engine's preconditions explicit. Callers are expected
// to validate before computing; GenerateSchedule calls this as a backstop.
func (c *ScheduleConfig) Validate() error {
	if c.PrincipalCents < 0 {
		return fmt.Errorf("principal must not be negative, got %d", c.PrincipalCents)
	}
	if c.AnnualRatePercent < 0 {
		return fmt.Errorf("annual rate must not be negative, got %.4f", c.AnnualRatePercent)
	}
	switch c.RepaymentType {
	case RepaymentTypeOneTime:
		// installment count is forced to 1 downstream
	case RepaymentTypeInstallments:
		if c.InstallmentCount < 1 {
			return fmt.Errorf("installment count must be at least 1, got %d", c.InstallmentCount)
		}
	default:
		return fmt.Errorf("unknown repayment type %q", c.RepaymentType)
	}
	switch c.StartMode {
	case StartModeFixedDate, StartModeUponAcceptance:
	default:
		return fmt.Errorf("unknown start mode %q", c.StartMode)
	}
	if c.FirstPaymentOffsetDays < 0 {
		return fmt.Errorf("first payment offset must not be negative, got %d", c.FirstPaymentOffsetDays)
	}
	return nil
}

// Installments returns the effective number of payments: one_time loans
// always produce a single payment regardless of the configured count.
func (c *ScheduleConfig) Installments() int {
	if c.RepaymentType == RepaymentTypeOneTime {
		return 1
	}
	return c.InstallmentCount
}

// LoanStart is the resolved start of a loan: either an actual transfer
// date, or a preview anchored on the first-payment offset. Resolving the
// mode flags into this single value once at the boundary keeps the two
// regimes from disagreeing mid-computation.
type LoanStart struct {
	date       *time.Time
	offsetDays int
}

// ActualStart builds a LoanStart with a concrete transfer date.
func ActualStart(date time.Time) LoanStart {
	return LoanStart{date: &date}
}

// PreviewStart builds a LoanStart for a loan not yet accepted.
func PreviewStart(offsetDays int) LoanStart {
	return LoanStart{offsetDays: offsetDays}
}

// IsActual reports whether a concrete transfer date is known.
func (s LoanStart) IsActual() bool {
	return s.date != nil
}

// Date returns the transfer date; only meaningful when IsActual.
func (s LoanStart) Date() time.Time {
	return *s.date
}

// OffsetDays returns the preview first-payment offset.
func (s LoanStart) OffsetDays() int {
	return s.offsetDays
}

// ScheduleRow is one scheduled payment. Exactly one of DueDate and Label
// is set: actual schedules carry concrete dates, previews carry relative
// labels. principal + interest == total for every row after rounding.
type ScheduleRow struct {
	Index          int        `json:"index"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	Label          string     `json:"label,omitempty"`
	PrincipalCents int64      `json:"principal_cents"`
	InterestCents  int64      `json:"interest_cents"`
	TotalCents     int64      `json:"total_cents"`
	BalanceCents   int64      `json:"balance_cents"`
}

// Schedule is the full engine output: ordered rows plus grand totals.
// Every call returns a fresh value; callers must not mutate rows.
type Schedule struct {
	Rows               []ScheduleRow `json:"rows"`
	TotalInterestCents int64         `json:"total_interest_cents"`
	TotalToRepayCents  int64         `json:"total_to_repay_cents"`
	DurationMonths     int           `json:"duration_months"`
	Preview            bool          `json:"preview"`
}
