package service

import (
	"context"

	"duka/internal/repository"

	"github.com/xuri/excelize/v2"
)

// ReportService builds the stock audit workbook: one row per item with its
// hierarchy, counts, derived health, and margin — the spreadsheet version of
// the audit page.
type ReportService interface {
	StockWorkbook(ctx context.Context) (*excelize.File, error)
}

type reportService struct {
	items repository.ItemRepository
}

func NewReportService(items repository.ItemRepository) ReportService {
	return &reportService{items: items}
}

func (s *reportService) StockWorkbook(ctx context.Context) (*excelize.File, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"category", "subcategory", "item",
		"bales_count", "units_per_bale", "total_units",
		"health_status", "health_percentage",
		"landing_price", "selling_price", "profit_margin",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		_ = f.Close()
		return nil, err
	}

	row := 2
	for _, i := range items {
		r := itemToResponse(i)
		values := []interface{}{
			r.CategoryName, r.SubcategoryName, r.Name,
			r.BalesCount, r.UnitsPerBale, r.TotalUnits,
			r.HealthStatus, r.HealthPercentage,
			r.LandingPrice.String(), r.SellingPrice.String(), r.ProfitMargin,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			_ = f.Close()
			return nil, err
		}
		row++
	}

	return f, nil
}
