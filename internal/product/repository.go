package product

import (
	"context"

	"github.com/rfadhilah/vendor-catalog-service/internal/model"
	"github.com/rfadhilah/vendor-catalog-service/internal/product/dto"
)

type Repository interface {
	// Create inserts the product and fills in the generated id.
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductWithCategory, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error

	// ExistsByTitleAndCategory reports whether any row matches both the exact
	// title and the category id. Ingestion consults it before every insert.
	ExistsByTitleAndCategory(ctx context.Context, title string, categoryID int64) (bool, error)
}
