package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/peerlend/schedule-engine/internal/models"
)

// ExportService renders a computed schedule to downloadable documents.
type ExportService struct {
	currencySymbol string
}

func NewExportService(currencySymbol string) *ExportService {
	return &ExportService{currencySymbol: currencySymbol}
}

// ExportCSV renders the amortization table as CSV.
func (s *ExportService) ExportCSV(ctx context.Context, schedule *models.Schedule) ([]byte, string, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write([]string{"Repayment Schedule", time.Now().Format("2006-01-02 15:04")})
	_ = writer.Write([]string{""})
	_ = writer.Write([]string{"#", "Due", "Principal", "Interest", "Payment", "Balance"})

	for _, row := range schedule.Rows {
		_ = writer.Write([]string{
			fmt.Sprintf("%d", row.Index),
			rowDueLabel(row),
			s.money(row.PrincipalCents),
			s.money(row.InterestCents),
			s.money(row.TotalCents),
			s.money(row.BalanceCents),
		})
	}

	_ = writer.Write([]string{""})
	_ = writer.Write([]string{"Total Interest", s.money(schedule.TotalInterestCents)})
	_ = writer.Write([]string{"Total To Repay", s.money(schedule.TotalToRepayCents)})

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("repayment_schedule_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ExportXLSX renders the amortization table as an Excel workbook.
func (s *ExportService) ExportXLSX(ctx context.Context, schedule *models.Schedule) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Schedule"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	_ = f.SetCellValue(sheet, "A1", "Repayment Schedule")
	_ = f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	headers := []string{"#", "Due", "Principal", "Interest", "Payment", "Balance"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for r, row := range schedule.Rows {
		values := []interface{}{
			row.Index,
			rowDueLabel(row),
			s.money(row.PrincipalCents),
			s.money(row.InterestCents),
			s.money(row.TotalCents),
			s.money(row.BalanceCents),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+4)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	totalsRow := len(schedule.Rows) + 5
	cell, _ := excelize.CoordinatesToCellName(1, totalsRow)
	_ = f.SetCellValue(sheet, cell, "Total Interest")
	cell, _ = excelize.CoordinatesToCellName(2, totalsRow)
	_ = f.SetCellValue(sheet, cell, s.money(schedule.TotalInterestCents))
	cell, _ = excelize.CoordinatesToCellName(1, totalsRow+1)
	_ = f.SetCellValue(sheet, cell, "Total To Repay")
	cell, _ = excelize.CoordinatesToCellName(2, totalsRow+1)
	_ = f.SetCellValue(sheet, cell, s.money(schedule.TotalToRepayCents))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("repayment_schedule_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ExportPDF renders a one-page schedule statement.
func (s *ExportService) ExportPDF(ctx context.Context, schedule *models.Schedule) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(80, 10, "Repayment Schedule")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	widths := []float64{10, 45, 30, 30, 30, 30}
	headers := []string{"#", "Due", "Principal", "Interest", "Payment", "Balance"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range schedule.Rows {
		cells := []string{
			fmt.Sprintf("%d", row.Index),
			rowDueLabel(row),
			s.money(row.PrincipalCents),
			s.money(row.InterestCents),
			s.money(row.TotalCents),
			s.money(row.BalanceCents),
		}
		for i, c := range cells {
			align := "R"
			if i < 2 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(60, 7, fmt.Sprintf("Total Interest: %s", s.money(schedule.TotalInterestCents)))
	pdf.Ln(6)
	pdf.Cell(60, 7, fmt.Sprintf("Total To Repay: %s", s.money(schedule.TotalToRepayCents)))

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("repayment_schedule_%s.pdf", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// money formats integer cents as a major-unit amount with symbol.
func (s *ExportService) money(cents int64) string {
	amount := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
	return s.currencySymbol + amount.StringFixed(2)
}

func rowDueLabel(row models.ScheduleRow) string {
	if row.DueDate != nil {
		return FormatDueDate(*row.DueDate)
	}
	return row.Label
}
