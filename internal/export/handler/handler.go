package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rfadhilah/vendor-catalog-service/internal/export"
	"github.com/rfadhilah/vendor-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	uc     export.UseCase
	logger logger.ZapLogger
}

func NewExportHandler(uc export.UseCase, log logger.ZapLogger) *ExportHandler {
	return &ExportHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ExportHandler) XML(c *gin.Context) {
	body, err := h.uc.XML(c.Request.Context())
	if err != nil {
		h.logger.Error("xml export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

func (h *ExportHandler) Spreadsheet(c *gin.Context) {
	f, err := h.uc.Spreadsheet(c.Request.Context())
	if err != nil {
		h.logger.Error("spreadsheet export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		h.logger.Error("spreadsheet write failed", zap.Error(err))
	}
}
