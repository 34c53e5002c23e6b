package ingest

import (
	"context"

	"github.com/rfadhilah/vendor-catalog-service/internal/ingest/dto"
)

// Fetcher retrieves one remote catalog document. Implemented by the vendor
// HTTP client; faked in tests.
type Fetcher interface {
	FetchCatalog(ctx context.Context, remoteID string) (*dto.CatalogDocument, error)
}

type UseCase interface {
	// Ingest fetches the catalog identified by remoteID and reconciles it into
	// the store. It is additive: categories are upserted in place, products
	// are inserted unless an exact (title, category) match already exists, and
	// nothing is ever deleted. The first failure aborts the run; writes
	// committed before it stay committed.
	Ingest(ctx context.Context, remoteID string) (*dto.Summary, error)
}
