package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/complyra/claimshield/internal/logger"
	"github.com/complyra/claimshield/models"
	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

const (
	pdfTitle = "FORMAL MEDICAL APPEAL"

	xlsxSummarySheet = "Summary"
	xlsxClaimsSheet  = "Claims"
)

// exportService renders appeal letters as PDF documents and the admin
// analytics as XLSX workbooks. It holds no external connections and is safe
// for concurrent use.
type exportService struct {
	logger *logger.Logger
}

func NewExportService(logger *logger.Logger) ExportService {
	return &exportService{logger: logger}
}

// LetterPDF renders one appeal letter as a single-column A4 PDF: a centered
// bold title followed by the wrapped letter body.
//
// Returns ErrNothingToExport when the letter is empty or whitespace-only.
func (e *exportService) LetterPDF(letter string) ([]byte, error) {
	if strings.TrimSpace(letter) == "" {
		return nil, ErrNothingToExport
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, pdfTitle, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, letter, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}

	return buf.Bytes(), nil
}

// SummaryXLSX renders the analytics aggregate and the full claim list as a
// two-sheet XLSX workbook: a Summary sheet with global and per-company
// totals, and a Claims sheet listing every saved claim.
func (e *exportService) SummaryXLSX(summary models.ClaimSummary, claims []models.Claim) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSummarySheet); err != nil {
		return nil, fmt.Errorf("xlsx sheet setup failed: %w", err)
	}
	if _, err := f.NewSheet(xlsxClaimsSheet); err != nil {
		return nil, fmt.Errorf("xlsx sheet setup failed: %w", err)
	}

	f.SetCellValue(xlsxSummarySheet, "A1", "Total claims")
	f.SetCellValue(xlsxSummarySheet, "B1", summary.TotalClaims)
	f.SetCellValue(xlsxSummarySheet, "A2", "Total disputed")
	f.SetCellValue(xlsxSummarySheet, "B2", summary.TotalDisputed)

	f.SetCellValue(xlsxSummarySheet, "A4", "Insurance company")
	f.SetCellValue(xlsxSummarySheet, "B4", "Claims")
	f.SetCellValue(xlsxSummarySheet, "C4", "Disputed")
	for idx, company := range summary.PerCompany {
		row := idx + 5
		f.SetCellValue(xlsxSummarySheet, fmt.Sprintf("A%d", row), company.InsuranceCompany)
		f.SetCellValue(xlsxSummarySheet, fmt.Sprintf("B%d", row), company.Claims)
		f.SetCellValue(xlsxSummarySheet, fmt.Sprintf("C%d", row), company.Disputed)
	}

	headers := []string{"Claim ID", "User ID", "Insurance company", "Bill amount", "Status", "Created at"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(xlsxClaimsSheet, cell, header)
	}
	for idx, claim := range claims {
		row := idx + 2
		f.SetCellValue(xlsxClaimsSheet, fmt.Sprintf("A%d", row), claim.ClaimID)
		f.SetCellValue(xlsxClaimsSheet, fmt.Sprintf("B%d", row), claim.UserID)
		f.SetCellValue(xlsxClaimsSheet, fmt.Sprintf("C%d", row), claim.InsuranceCompany)
		f.SetCellValue(xlsxClaimsSheet, fmt.Sprintf("D%d", row), claim.BillAmount)
		f.SetCellValue(xlsxClaimsSheet, fmt.Sprintf("E%d", row), claim.Status)
		f.SetCellValue(xlsxClaimsSheet, fmt.Sprintf("F%d", row), claim.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	f.SetColWidth(xlsxClaimsSheet, "C", "C", 30)
	f.SetColWidth(xlsxClaimsSheet, "F", "F", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx rendering failed: %w", err)
	}

	return buf.Bytes(), nil
}
