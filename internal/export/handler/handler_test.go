package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rfadhilah/vendor-catalog-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUseCase struct {
	xml []byte
	f   *excelize.File
	err error
}

func (f *fakeUseCase) XML(ctx context.Context) ([]byte, error) {
	return f.xml, f.err
}

func (f *fakeUseCase) Spreadsheet(ctx context.Context) (*excelize.File, error) {
	return f.f, f.err
}

func newRouter(uc *fakeUseCase) *gin.Engine {
	router := gin.New()
	h := NewExportHandler(uc, logger.NewNop())
	router.GET("/export/xml", h.XML)
	router.GET("/export/xlsx", h.Spreadsheet)
	return router
}

func TestXML_ContentType(t *testing.T) {
	router := newRouter(&fakeUseCase{xml: []byte(`<?xml version="1.0"?><catalog></catalog>`)})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/export/xml", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Body.String(), "<catalog>")
}

func TestXML_Failure(t *testing.T) {
	router := newRouter(&fakeUseCase{err: errors.New("connection refused")})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/export/xml", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSpreadsheet_Headers(t *testing.T) {
	router := newRouter(&fakeUseCase{f: excelize.NewFile()})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/export/xlsx", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "products.xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}
