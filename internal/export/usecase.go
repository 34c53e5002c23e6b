package export

import (
	"context"

	"github.com/xuri/excelize/v2"
)

// UseCase renders the full product+category join. Both formats emit the same
// rows in the same column order, products sorted by id.
type UseCase interface {
	XML(ctx context.Context) ([]byte, error)
	Spreadsheet(ctx context.Context) (*excelize.File, error)
}
