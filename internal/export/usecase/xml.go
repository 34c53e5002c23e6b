package usecase

import (
	"encoding/xml"
	"time"

	"github.com/rfadhilah/vendor-catalog-service/internal/model"
)

type xmlProduct struct {
	ID         int64   `xml:"id"`
	Title      string  `xml:"title"`
	Slug       string  `xml:"slug"`
	Lang       string  `xml:"lang"`
	AuthID     int64   `xml:"auth_id"`
	Status     string  `xml:"status"`
	Type       string  `xml:"type"`
	Count      int     `xml:"count"`
	CreatedAt  string  `xml:"created_at"`
	UpdatedAt  string  `xml:"updated_at"`
	CategoryID int64   `xml:"category_id"`
	Price      float64 `xml:"price"`
	Preview    string  `xml:"preview"`
	Stock      int     `xml:"stock"`
	Category   string  `xml:"category"`
}

type xmlCatalog struct {
	XMLName  xml.Name     `xml:"catalog"`
	Products []xmlProduct `xml:"product"`
}

func renderXML(rows []model.ProductWithCategory) ([]byte, error) {
	catalog := xmlCatalog{Products: make([]xmlProduct, 0, len(rows))}
	for _, row := range rows {
		catalog.Products = append(catalog.Products, xmlProduct{
			ID:         row.ID,
			Title:      row.Title,
			Slug:       row.Slug,
			Lang:       row.Lang,
			AuthID:     row.AuthID,
			Status:     row.Status,
			Type:       row.Type,
			Count:      row.Count,
			CreatedAt:  row.CreatedAt.Format(time.RFC3339),
			UpdatedAt:  row.UpdatedAt.Format(time.RFC3339),
			CategoryID: row.CategoryID,
			Price:      row.Price,
			Preview:    row.Preview,
			Stock:      row.Stock,
			Category:   row.CategoryName,
		})
	}

	body, err := xml.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
