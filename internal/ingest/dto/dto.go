package dto

import (
	"fmt"
	"time"

	"github.com/rfadhilah/vendor-catalog-service/internal/model"
)

// CatalogDocument is the vendor response decoded once at the pipeline
// boundary. Nested objects are pointers so a missing block is distinguishable
// from a present-but-zero value.
type CatalogDocument struct {
	Products []CatalogCategory `json:"products"`
}

// CatalogCategory is one category block with its nested products. The order
// of blocks in the document is preserved by the decoder.
type CatalogCategory struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	UserID   int64            `json:"user_id"`
	Products []CatalogProduct `json:"products"`
}

type CatalogProduct struct {
	Title     string        `json:"title"`
	Slug      string        `json:"slug"`
	Lang      string        `json:"lang"`
	AuthID    int64         `json:"auth_id"`
	Status    string        `json:"status"`
	Type      string        `json:"type"`
	Count     int           `json:"count"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
	Price     *PriceBlock   `json:"price"`
	Preview   *PreviewBlock `json:"preview"`
	Stock     *StockBlock   `json:"stock"`
}

type PriceBlock struct {
	Price *float64 `json:"price"`
}

type PreviewBlock struct {
	Content *string `json:"content"`
}

type StockBlock struct {
	Stock *int `json:"stock"`
}

// timestamp layouts accepted from upstream, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ToModel flattens the nested vendor fields into a product row bound to the
// given category. A missing nested object or field is an error; the caller
// aborts the run on the first one.
func (cp *CatalogProduct) ToModel(categoryID int64) (*model.Product, error) {
	if cp.Price == nil || cp.Price.Price == nil {
		return nil, fmt.Errorf("product %q: missing price.price", cp.Title)
	}
	if cp.Preview == nil || cp.Preview.Content == nil {
		return nil, fmt.Errorf("product %q: missing preview.content", cp.Title)
	}
	if cp.Stock == nil || cp.Stock.Stock == nil {
		return nil, fmt.Errorf("product %q: missing stock.stock", cp.Title)
	}

	createdAt, err := parseTimestamp(cp.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("product %q: created_at: %w", cp.Title, err)
	}
	updatedAt, err := parseTimestamp(cp.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("product %q: updated_at: %w", cp.Title, err)
	}

	return &model.Product{
		Title:      cp.Title,
		Slug:       cp.Slug,
		Lang:       cp.Lang,
		AuthID:     cp.AuthID,
		Status:     cp.Status,
		Type:       cp.Type,
		Count:      cp.Count,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
		CategoryID: categoryID,
		Price:      *cp.Price.Price,
		Preview:    *cp.Preview.Content,
		Stock:      *cp.Stock.Stock,
	}, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", raw)
}

// Summary counts what one ingestion run did. It feeds the logs and the
// confirmation body; failed runs report nothing finer than the error.
type Summary struct {
	CategoriesUpserted int `json:"categories_upserted"`
	ProductsInserted   int `json:"products_inserted"`
	ProductsSkipped    int `json:"products_skipped"`
}
