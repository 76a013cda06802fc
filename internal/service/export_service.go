package service

import (
	"fmt"
	"io"

	"github.com/naphattraa1/irrigation-planner/internal/engine"
	"github.com/xuri/excelize/v2"
)

// ExportService renders design output as spreadsheet files.
type ExportService struct{}

// NewExportService creates an export service.
func NewExportService() *ExportService {
	return &ExportService{}
}

// WriteBOM streams the bill of materials of a design response as an .xlsx
// workbook.
func (s *ExportService) WriteBOM(w io.Writer, resp engine.DesignResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "BOM"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Item", "Quantity", "Unit", "Unit Price", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, line := range resp.BOM {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), line.Item)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), line.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), line.UnitPrice)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), line.Total)
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), "Total cost")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), resp.TotalCost)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
