package model

import "time"

type Product struct {
	ID         int64     `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Slug       string    `db:"slug" json:"slug"`
	Lang       string    `db:"lang" json:"lang"`
	AuthID     int64     `db:"auth_id" json:"auth_id"`
	Status     string    `db:"status" json:"status"`
	Type       string    `db:"type" json:"type"`
	Count      int       `db:"count" json:"count"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
	CategoryID int64     `db:"category_id" json:"category_id"`
	Price      float64   `db:"price" json:"price"`
	Preview    string    `db:"preview" json:"preview"`
	Stock      int       `db:"stock" json:"stock"`
}

// ProductWithCategory is the shape of the list and export queries, a product
// row joined with its category's name.
type ProductWithCategory struct {
	Product
	CategoryName string `db:"category_name" json:"category_name"`
}
