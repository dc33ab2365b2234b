// Package export renders a user's farm records as an XLSX workbook.
package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"agriai/entities"
	"agriai/pkg/catalog"
)

const (
	FieldsSheet    = "Fields"
	LivestockSheet = "Livestock"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Workbook builds the two-sheet farm workbook. Column headers and kind labels
// follow langs through the catalog. The caller closes the returned file.
func Workbook(cat *catalog.Catalog, fields []entities.Field, groups []entities.Livestock, langs ...string) (*excelize.File, error) {
	x := excelize.NewFile()
	if err := x.SetSheetName("Sheet1", FieldsSheet); err != nil {
		x.Close()
		return nil, err
	}
	if _, err := x.NewSheet(LivestockSheet); err != nil {
		x.Close()
		return nil, err
	}
	bold, err := x.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		x.Close()
		return nil, err
	}
	col := func(id, en string) any { return cat.Label("column_"+id, en, langs...) }

	rows := [][]any{{col("name", "Name"), col("crop", "Crop"), col("area", "Area, ha"), col("latitude", "Latitude"), col("longitude", "Longitude")}}
	for _, f := range fields {
		rows = append(rows, []any{f.Name, cat.CropLabel(f.CropType, langs...), number(f.Area), f.Latitude, f.Longitude})
	}
	if err := writeSheet(x, FieldsSheet, rows, bold); err != nil {
		x.Close()
		return nil, err
	}

	rows = [][]any{{col("type", "Type"), col("count", "Head count")}}
	for _, l := range groups {
		rows = append(rows, []any{cat.LivestockLabel(l.Type, langs...), l.Count})
	}
	if err := writeSheet(x, LivestockSheet, rows, bold); err != nil {
		x.Close()
		return nil, err
	}
	return x, nil
}

func writeSheet(x *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	if err := x.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}
	return x.SetColWidth(sheet, "A", "E", 20)
}

// number stores areas as numeric cells when they parse, as text otherwise.
func number(s string) any {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}
