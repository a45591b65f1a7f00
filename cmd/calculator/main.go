package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/getsentry/sentry-go"
	_ "github.com/joho/godotenv/autoload"
	"github.com/shopspring/decimal"

	"github.com/peerlend/schedule-engine/internal/config"
	"github.com/peerlend/schedule-engine/internal/models"
	"github.com/peerlend/schedule-engine/internal/services"
	"github.com/peerlend/schedule-engine/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	var (
		principal  = flag.String("principal", "", "loan principal in major units, e.g. 1000.00 (required)")
		rate       = flag.Float64("rate", 0, "annual interest rate in percent, e.g. 5.0")
		count      = flag.Int("installments", 1, "number of installments")
		oneTime    = flag.Bool("one-time", false, "single repayment instead of installments")
		frequency  = flag.String("frequency", "monthly", "payment frequency code")
		start      = flag.String("start", "", "loan start date YYYY-MM-DD; empty previews an unaccepted loan")
		firstDue   = flag.String("first-due", "", "explicit first due date YYYY-MM-DD")
		offsetDays = flag.Int("offset-days", cfg.DefaultFirstPaymentOffsetDays, "days from start to first payment")
		format     = flag.String("format", "table", "output format: table, csv, xlsx or pdf")
	)
	flag.Parse()

	if *principal == "" {
		flag.Usage()
		os.Exit(2)
	}

	scheduleCfg, err := buildConfig(*principal, *rate, *count, *oneTime, *frequency, *start, *firstDue, *offsetDays)
	if err != nil {
		fail(cfg, "invalid input", err)
	}

	svc := services.NewScheduleService()
	schedule, err := svc.GenerateSchedule(context.Background(), scheduleCfg)
	if err != nil {
		fail(cfg, "schedule generation failed", err)
	}

	if *format == "table" {
		printTable(cfg, schedule)
		return
	}

	exporter := services.NewExportService(cfg.CurrencySymbol)
	var data []byte
	var filename string
	switch *format {
	case "csv":
		data, filename, err = exporter.ExportCSV(context.Background(), schedule)
	case "xlsx":
		data, filename, err = exporter.ExportXLSX(context.Background(), schedule)
	case "pdf":
		data, filename, err = exporter.ExportPDF(context.Background(), schedule)
	default:
		fail(cfg, "unknown format", fmt.Errorf("format %q", *format))
	}
	if err != nil {
		fail(cfg, "export failed", err)
	}

	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		fail(cfg, "cannot create export dir", err)
	}
	path := filepath.Join(cfg.ExportDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fail(cfg, "cannot write export", err)
	}
	logger.Info("Schedule exported", "path", path)
}

func buildConfig(principal string, rate float64, count int, oneTime bool, frequency, start, firstDue string, offsetDays int) (*models.ScheduleConfig, error) {
	amount, err := decimal.NewFromString(principal)
	if err != nil {
		return nil, fmt.Errorf("invalid principal %q: %w", principal, err)
	}
	principalCents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	repaymentType := models.RepaymentTypeInstallments
	if oneTime {
		repaymentType = models.RepaymentTypeOneTime
	}

	cfg := &models.ScheduleConfig{
		PrincipalCents:         principalCents,
		AnnualRatePercent:      rate,
		RepaymentType:          repaymentType,
		InstallmentCount:       count,
		Frequency:              models.ParseFrequency(frequency),
		StartMode:              models.StartModeUponAcceptance,
		FirstPaymentOffsetDays: offsetDays,
	}

	if start != "" {
		date, err := time.Parse("2006-01-02", start)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", start, err)
		}
		cfg.StartMode = models.StartModeFixedDate
		cfg.StartDate = &date
		cfg.HasStartDate = true
	}
	if firstDue != "" {
		date, err := time.Parse("2006-01-02", firstDue)
		if err != nil {
			return nil, fmt.Errorf("invalid first due date %q: %w", firstDue, err)
		}
		cfg.FirstDueDate = &date
	}

	return cfg, nil
}

func printTable(cfg *config.Config, schedule *models.Schedule) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "#\tDue\tPrincipal\tInterest\tPayment\tBalance\t")
	for _, row := range schedule.Rows {
		due := row.Label
		if row.DueDate != nil {
			due = services.FormatDueDate(*row.DueDate)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Index, due,
			money(cfg, row.PrincipalCents),
			money(cfg, row.InterestCents),
			money(cfg, row.TotalCents),
			money(cfg, row.BalanceCents))
	}
	fmt.Fprintf(w, "\tTotal interest\t%s\t\n", money(cfg, schedule.TotalInterestCents))
	fmt.Fprintf(w, "\tTotal to repay\t%s\t\n", money(cfg, schedule.TotalToRepayCents))
	w.Flush()

	if schedule.Preview {
		fmt.Println("(preview: dates are relative to loan acceptance)")
	}
}

func money(cfg *config.Config, cents int64) string {
	return cfg.CurrencySymbol + decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

func fail(cfg *config.Config, msg string, err error) {
	logger.Error(msg, "error", err)
	if cfg.SentryDSN != "" {
		sentry.CaptureException(err)
		sentry.Flush(2 * time.Second)
	}
	os.Exit(1)
}
