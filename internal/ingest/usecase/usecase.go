package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rfadhilah/vendor-catalog-service/internal/category"
	"github.com/rfadhilah/vendor-catalog-service/internal/ingest"
	"github.com/rfadhilah/vendor-catalog-service/internal/ingest/dto"
	"github.com/rfadhilah/vendor-catalog-service/internal/model"
	"github.com/rfadhilah/vendor-catalog-service/internal/product"
	"github.com/rfadhilah/vendor-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

type ingestUseCase struct {
	fetcher    ingest.Fetcher
	categories category.Repository
	products   product.Repository
	logger     logger.ZapLogger
}

func NewIngestUseCase(fetcher ingest.Fetcher, categories category.Repository, products product.Repository, log logger.ZapLogger) ingest.UseCase {
	return &ingestUseCase{
		fetcher:    fetcher,
		categories: categories,
		products:   products,
		logger:     log,
	}
}

// Ingest walks the document in order: upsert each category block, then gate
// each nested product on an exact (title, category_id) match before insert.
// There is no transaction across the batch; an error partway through leaves
// earlier writes committed.
func (uc *ingestUseCase) Ingest(ctx context.Context, remoteID string) (*dto.Summary, error) {
	runID := uuid.New().String()

	doc, err := uc.fetcher.FetchCatalog(ctx, remoteID)
	if err != nil {
		uc.logger.Error("catalog fetch failed",
			zap.String("run_id", runID),
			zap.String("remote_id", remoteID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("fetch catalog %q: %w", remoteID, err)
	}

	summary := &dto.Summary{}

	for _, block := range doc.Products {
		cat := &model.Category{
			ID:      block.ID,
			Name:    block.Name,
			OwnerID: block.UserID,
		}
		if err := uc.categories.Upsert(ctx, cat); err != nil {
			return nil, fmt.Errorf("upsert category %d: %w", block.ID, err)
		}
		summary.CategoriesUpserted++

		for i := range block.Products {
			cp := &block.Products[i]

			exists, err := uc.products.ExistsByTitleAndCategory(ctx, cp.Title, cat.ID)
			if err != nil {
				return nil, fmt.Errorf("check product %q in category %d: %w", cp.Title, cat.ID, err)
			}
			if exists {
				summary.ProductsSkipped++
				continue
			}

			p, err := cp.ToModel(cat.ID)
			if err != nil {
				return nil, fmt.Errorf("category %d: %w", cat.ID, err)
			}
			if err := uc.products.Create(ctx, p); err != nil {
				return nil, fmt.Errorf("insert product %q in category %d: %w", cp.Title, cat.ID, err)
			}
			summary.ProductsInserted++
		}
	}

	uc.logger.Info("catalog ingested",
		zap.String("run_id", runID),
		zap.String("remote_id", remoteID),
		zap.Int("categories_upserted", summary.CategoriesUpserted),
		zap.Int("products_inserted", summary.ProductsInserted),
		zap.Int("products_skipped", summary.ProductsSkipped),
	)

	return summary, nil
}
