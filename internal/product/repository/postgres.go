package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rfadhilah/vendor-catalog-service/internal/model"
	"github.com/rfadhilah/vendor-catalog-service/internal/product/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            title, slug, lang, auth_id, status, type, count,
            created_at, updated_at, category_id, price, preview, stock
        )
        VALUES (
            :title, :slug, :lang, :auth_id, :status, :type, :count,
            :created_at, :updated_at, :category_id, :price, :preview, :stock
        )
        RETURNING id
    `
	rows, err := r.DB.NamedQueryContext(ctx, query, p)
	if err != nil {
		return err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&p.ID); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.ProductWithCategory, error) {
	var products []model.ProductWithCategory

	conditions := []string{}
	args := map[string]interface{}{}

	if f.CategoryID != nil {
		conditions = append(conditions, "p.category_id = :category_id")
		args["category_id"] = *f.CategoryID
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := `
        SELECT p.*, c.name AS category_name
        FROM products p
        JOIN categories c ON c.id = p.category_id` + whereClause + `
        ORDER BY p.id ASC`

	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &products, args)
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET title = :title,
            slug = :slug,
            lang = :lang,
            auth_id = :auth_id,
            status = :status,
            type = :type,
            count = :count,
            updated_at = :updated_at,
            category_id = :category_id,
            price = :price,
            preview = :preview,
            stock = :stock
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	return err
}

func (r *PGRepository) ExistsByTitleAndCategory(ctx context.Context, title string, categoryID int64) (bool, error) {
	var count int
	query := `SELECT count(*) FROM products WHERE title = $1 AND category_id = $2`
	err := r.DB.GetContext(ctx, &count, query, title, categoryID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
