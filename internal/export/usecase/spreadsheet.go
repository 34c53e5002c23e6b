package usecase

import (
	"fmt"
	"time"

	"github.com/rfadhilah/vendor-catalog-service/internal/model"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Products"

var spreadsheetHeader = []interface{}{
	"id", "title", "slug", "lang", "auth_id", "status", "type", "count",
	"created_at", "updated_at", "category_id", "price", "preview", "stock",
	"category",
}

func renderSpreadsheet(rows []model.ProductWithCategory) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheetName, "A1", &spreadsheetHeader); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			row.ID, row.Title, row.Slug, row.Lang, row.AuthID, row.Status,
			row.Type, row.Count,
			row.CreatedAt.Format(time.RFC3339),
			row.UpdatedAt.Format(time.RFC3339),
			row.CategoryID, row.Price, row.Preview, row.Stock,
			row.CategoryName,
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	return f, nil
}
