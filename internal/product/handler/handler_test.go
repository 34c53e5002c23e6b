package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rfadhilah/vendor-catalog-service/internal/model"
	"github.com/rfadhilah/vendor-catalog-service/internal/product/dto"
	"github.com/rfadhilah/vendor-catalog-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUseCase struct {
	product    *model.Product
	rows       []model.ProductWithCategory
	gotFilters *dto.ProductFilters
	err        error
}

func (f *fakeUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Product{ID: 1, Title: input.Title, CategoryID: input.CategoryID}, nil
}

func (f *fakeUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return f.product, f.err
}

func (f *fakeUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductWithCategory, error) {
	f.gotFilters = filters
	return f.rows, f.err
}

func (f *fakeUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	return f.product, f.err
}

func (f *fakeUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return f.err
}

func newRouter(uc *fakeUseCase) *gin.Engine {
	router := gin.New()
	h := NewProductHandler(uc, logger.NewNop())
	router.GET("/products", h.List)
	router.POST("/products", h.Create)
	router.GET("/products/:id", h.Get)
	router.PUT("/products/:id", h.Update)
	router.DELETE("/products/:id", h.Delete)
	return router
}

func TestCreate_Valid(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	body, _ := json.Marshal(map[string]interface{}{
		"title": "Red Shirt", "category_id": 1, "price": 20.0,
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreate_MissingTitle(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/products", bytes.NewReader([]byte(`{"category_id":1}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGet_NotFound(t *testing.T) {
	router := newRouter(&fakeUseCase{product: nil})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/products/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGet_InvalidID(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/products/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList_ParsesFilters(t *testing.T) {
	uc := &fakeUseCase{rows: []model.ProductWithCategory{}}
	router := newRouter(uc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/products?categoryId=3&limit=25", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.gotFilters)
	require.NotNil(t, uc.gotFilters.CategoryID)
	assert.Equal(t, int64(3), *uc.gotFilters.CategoryID)
	assert.Equal(t, 25, uc.gotFilters.Limit)
}

func TestList_BadCategoryID(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/products?categoryId=shirts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDelete_OK(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/products/9", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
