package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *ScheduleConfig {
	return &ScheduleConfig{
		PrincipalCents:         100000,
		AnnualRatePercent:      5.0,
		RepaymentType:          RepaymentTypeInstallments,
		InstallmentCount:       12,
		Frequency:              FrequencyMonthly,
		StartMode:              StartModeUponAcceptance,
		FirstPaymentOffsetDays: 30,
	}
}

func TestScheduleConfigValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*ScheduleConfig)
	}{
		{"negative principal", func(c *ScheduleConfig) { c.PrincipalCents = -100 }},
		{"negative rate", func(c *ScheduleConfig) { c.AnnualRatePercent = -1 }},
		{"zero installments", func(c *ScheduleConfig) { c.InstallmentCount = 0 }},
		{"unknown repayment type", func(c *ScheduleConfig) { c.RepaymentType = "balloon" }},
		{"unknown start mode", func(c *ScheduleConfig) { c.StartMode = "whenever" }},
		{"negative offset", func(c *ScheduleConfig) { c.FirstPaymentOffsetDays = -7 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestScheduleConfigValidate_OneTimeIgnoresCount(t *testing.T) {
	cfg := validConfig()
	cfg.RepaymentType = RepaymentTypeOneTime
	cfg.InstallmentCount = 0
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Installments())
}

func TestLoanStart(t *testing.T) {
	when := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	actual := ActualStart(when)
	assert.True(t, actual.IsActual())
	assert.Equal(t, when, actual.Date())

	preview := PreviewStart(30)
	assert.False(t, preview.IsActual())
	assert.Equal(t, 30, preview.OffsetDays())
}
