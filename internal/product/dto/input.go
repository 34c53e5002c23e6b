package dto

type CreateProductInput struct {
	Title      string
	Slug       string
	Lang       string
	AuthID     int64
	Status     string
	Type       string
	Count      int
	CategoryID int64
	Price      float64
	Preview    string
	Stock      int
}

type UpdateProductInput struct {
	ID         int64
	Title      string
	Slug       string
	Lang       string
	AuthID     int64
	Status     string
	Type       string
	Count      int
	CategoryID int64
	Price      float64
	Preview    string
	Stock      int
}
