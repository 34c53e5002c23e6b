package category

import (
	"context"

	"github.com/rfadhilah/vendor-catalog-service/internal/model"
)

// UseCase is read-only: categories are written exclusively by the ingestion
// pipeline.
type UseCase interface {
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
}
