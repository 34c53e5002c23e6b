package category

import (
	"context"

	"github.com/rfadhilah/vendor-catalog-service/internal/model"
)

type Repository interface {
	// Upsert inserts the category or, when the upstream id already exists,
	// overwrites name and owner_id in place.
	Upsert(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
}
