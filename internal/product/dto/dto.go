package dto

// ProductFilters narrows the joined list query. A nil CategoryID means all
// categories; a Limit of zero means no limit.
type ProductFilters struct {
	CategoryID *int64
	Limit      int
}
