package journal

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/ergung/position-calculator/risk"
)

const sheetName = "Positions"

// WriteXLSX writes entries to a one-sheet workbook at path. Numeric columns
// are stored as numbers so the sheet can do arithmetic on them.
func WriteXLSX(path string, entries []Entry, o Options) error {
	fx := excelize.NewFile()
	defer fx.Close()

	if err := fx.SetSheetName(fx.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headStyle, err := fx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	headers := append([]string{"ref"}, Header()...)
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheetName, cell, h)
		fx.SetCellStyle(sheetName, cell, cell, headStyle)
	}

	for n, e := range entries {
		row := n + 2
		values := []interface{}{
			e.Ref,
			e.Date.Format(o.DateLayout),
			e.Side,
			e.Entry,
			e.Stop,
			optional(e.HasTarget, e.TakeProfit),
			e.Risk,
			roundedMoney(e.PositionValue, o),
			optional(e.Mode == risk.ContractMode, e.Quantity),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := fx.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("write %s: %w", cell, err)
			}
		}
	}

	if err := fx.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func optional(ok bool, v float64) interface{} {
	if !ok {
		return empty
	}
	return v
}

func roundedMoney(v float64, o Options) float64 {
	f, _ := decimal.NewFromFloat(v).Round(o.Display.MoneyPlaces).Float64()
	return f
}
