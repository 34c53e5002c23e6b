package usecase

import (
	"context"
	"time"

	"github.com/rfadhilah/vendor-catalog-service/internal/model"
	"github.com/rfadhilah/vendor-catalog-service/internal/product"
	"github.com/rfadhilah/vendor-catalog-service/internal/product/dto"
	"github.com/rfadhilah/vendor-catalog-service/pkg/logger"
)

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

// CreateProduct inserts unconditionally. Unlike ingestion it does not consult
// the (title, category_id) duplicate gate.
func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	now := time.Now().UTC()

	p := &model.Product{
		Title:      input.Title,
		Slug:       input.Slug,
		Lang:       input.Lang,
		AuthID:     input.AuthID,
		Status:     input.Status,
		Type:       input.Type,
		Count:      input.Count,
		CreatedAt:  now,
		UpdatedAt:  now,
		CategoryID: input.CategoryID,
		Price:      input.Price,
		Preview:    input.Preview,
		Stock:      input.Stock,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductWithCategory, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}

	p.Title = input.Title
	p.Slug = input.Slug
	p.Lang = input.Lang
	p.AuthID = input.AuthID
	p.Status = input.Status
	p.Type = input.Type
	p.Count = input.Count
	p.CategoryID = input.CategoryID
	p.Price = input.Price
	p.Preview = input.Preview
	p.Stock = input.Stock
	p.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
