package usecase

import (
	"context"

	"github.com/rfadhilah/vendor-catalog-service/internal/export"
	"github.com/rfadhilah/vendor-catalog-service/internal/model"
	"github.com/rfadhilah/vendor-catalog-service/internal/product"
	"github.com/rfadhilah/vendor-catalog-service/internal/product/dto"
	"github.com/rfadhilah/vendor-catalog-service/pkg/logger"
	"github.com/xuri/excelize/v2"
)

type exportUseCase struct {
	products product.Repository
	logger   logger.ZapLogger
}

func NewExportUseCase(products product.Repository, log logger.ZapLogger) export.UseCase {
	return &exportUseCase{
		products: products,
		logger:   log,
	}
}

func (uc *exportUseCase) rows(ctx context.Context) ([]model.ProductWithCategory, error) {
	// Unfiltered join; FindAll orders by product id.
	return uc.products.FindAll(ctx, &dto.ProductFilters{})
}

func (uc *exportUseCase) XML(ctx context.Context) ([]byte, error) {
	rows, err := uc.rows(ctx)
	if err != nil {
		return nil, err
	}
	return renderXML(rows)
}

func (uc *exportUseCase) Spreadsheet(ctx context.Context) (*excelize.File, error) {
	rows, err := uc.rows(ctx)
	if err != nil {
		return nil, err
	}
	return renderSpreadsheet(rows)
}
