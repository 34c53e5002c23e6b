package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{
  "products": [
    {
      "id": 1, "name": "Shirts", "user_id": 9,
      "products": [
        {
          "title": "Red Shirt", "slug": "red-shirt", "lang": "en",
          "auth_id": 9, "status": "active", "type": "simple", "count": 10,
          "created_at": "2024-01-01T00:00:00Z", "updated_at": "2024-01-01T00:00:00Z",
          "price": {"price": 20}, "preview": {"content": "desc"}, "stock": {"stock": 3}
        }
      ]
    }
  ]
}`

func TestFetchCatalog_Success(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	doc, err := c.FetchCatalog(context.Background(), "vendor-42")
	require.NoError(t, err)

	assert.Equal(t, "/vendor-42", gotPath, "remote id is appended verbatim")
	require.Len(t, doc.Products, 1)
	block := doc.Products[0]
	assert.Equal(t, int64(1), block.ID)
	assert.Equal(t, "Shirts", block.Name)
	assert.Equal(t, int64(9), block.UserID)
	require.Len(t, block.Products, 1)
	p := block.Products[0]
	require.NotNil(t, p.Price)
	require.NotNil(t, p.Price.Price)
	assert.Equal(t, 20.0, *p.Price.Price)
	require.NotNil(t, p.Preview)
	assert.Equal(t, "desc", *p.Preview.Content)
	require.NotNil(t, p.Stock)
	assert.Equal(t, 3, *p.Stock.Stock)
}

func TestFetchCatalog_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	doc, err := c.FetchCatalog(context.Background(), "vendor-42")
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchCatalog_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": [`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	doc, err := c.FetchCatalog(context.Background(), "vendor-42")
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "decode")
}

func TestFetchCatalog_MissingNestedBlocksDecodeAsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"id":1,"name":"X","user_id":1,"products":[{"title":"No Price"}]}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	doc, err := c.FetchCatalog(context.Background(), "vendor-42")
	require.NoError(t, err)
	require.Len(t, doc.Products[0].Products, 1)
	assert.Nil(t, doc.Products[0].Products[0].Price)
	assert.Nil(t, doc.Products[0].Products[0].Preview)
	assert.Nil(t, doc.Products[0].Products[0].Stock)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := NewClient("https://vendor.example.com/api/productlist/", nil)
	assert.Equal(t, "https://vendor.example.com/api/productlist", c.baseURL)
}
