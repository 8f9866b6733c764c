package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/TheoHill/Piza-Motors/internal/listing"
	"github.com/TheoHill/Piza-Motors/internal/models"
)

// ExportService renders a result set as an inventory spreadsheet.
type ExportService struct {
	logger *zap.Logger
}

func NewExportService(logger *zap.Logger) *ExportService {
	return &ExportService{logger: logger}
}

// inventorySheet is the name of the single worksheet in an export.
const inventorySheet = "Inventory"

var inventoryHeader = []string{
	"ID", "Name", "Brand", "Year", "Price (USD)", "Mileage",
	"Fuel Type", "Condition", "Body Type", "Transmission",
}

// InventoryWorkbook writes the vehicles, in the order given, into an .xlsx
// workbook and returns its bytes.
func (s *ExportService) InventoryWorkbook(vehicles []models.Vehicle) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet, err := f.NewSheet(inventorySheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(sheet)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	header := make([]interface{}, len(inventoryHeader))
	for i, h := range inventoryHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(inventorySheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, v := range vehicles {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		row := []interface{}{
			v.ID, v.Name, v.Brand, v.Year, v.Price, v.Mileage,
			v.FuelType, v.Condition, v.BodyType(), listing.TransmissionOf(v.ID),
		}
		if err := f.SetSheetRow(inventorySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}

	s.logger.Debug("Inventory export generated", zap.Int("vehicles", len(vehicles)))
	return buf.Bytes(), nil
}
