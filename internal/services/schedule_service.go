package services

import (
	"context"
	"fmt"

	"github.com/peerlend/schedule-engine/internal/models"
)

// ScheduleService computes repayment schedules. It is a pure computation
// with no state, safe for concurrent use.
type ScheduleService struct{}

// NewScheduleService creates a new schedule service
func NewScheduleService() *ScheduleService {
	return &ScheduleService{}
}

// GenerateSchedule computes the full repayment schedule for a loan
// configuration. When a real start date is known it builds the actual
// schedule over concrete calendar dates; otherwise it builds a preview
// approximation with relative labels. Both regimes return the same
// Schedule shape, so callers never need to know which path ran.
func (s *ScheduleService) GenerateSchedule(ctx context.Context, cfg *models.ScheduleConfig) (*models.Schedule, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	start, err := resolveStart(cfg)
	if err != nil {
		return nil, err
	}

	count := cfg.Installments()

	if !start.IsActual() {
		return buildPreviewSchedule(cfg, start.OffsetDays(), count), nil
	}

	transfer := truncateToDay(start.Date())
	firstDue := AddDays(transfer, cfg.FirstPaymentOffsetDays)
	if cfg.FirstDueDate != nil {
		firstDue = truncateToDay(*cfg.FirstDueDate)
	}

	dates, _ := GeneratePaymentDates(transfer, firstDue, cfg.Frequency, count)
	return buildActualSchedule(cfg, transfer, dates), nil
}

// resolveStart collapses the start-mode flags into a single tagged value,
// exactly once per call. A mode that promises a real date without
// supplying one is a configuration contradiction and fails hard; silently
// falling back to a preview would present fixed terms as unconfirmed.
func resolveStart(cfg *models.ScheduleConfig) (models.LoanStart, error) {
	switch {
	case cfg.StartMode == models.StartModeFixedDate:
		if cfg.StartDate == nil {
			return models.LoanStart{}, fmt.Errorf("fixed_date loan: %w", ErrMissingStartDate)
		}
		return models.ActualStart(*cfg.StartDate), nil
	case cfg.HasStartDate:
		if cfg.StartDate == nil {
			return models.LoanStart{}, fmt.Errorf("accepted loan: %w", ErrMissingStartDate)
		}
		return models.ActualStart(*cfg.StartDate), nil
	default:
		return models.PreviewStart(cfg.FirstPaymentOffsetDays), nil
	}
}
