package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rfadhilah/vendor-catalog-service/internal/ingest"
	"github.com/rfadhilah/vendor-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

type IngestHandler struct {
	uc     ingest.UseCase
	logger logger.ZapLogger
}

func NewIngestHandler(uc ingest.UseCase, log logger.ZapLogger) *IngestHandler {
	return &IngestHandler{
		uc:     uc,
		logger: log,
	}
}

// FetchData triggers one ingestion run. Every failure, fetch or store, maps
// to a plain 500; the caller gets no partial-progress detail.
func (h *IngestHandler) FetchData(c *gin.Context) {
	remoteID := c.Param("remoteId")

	summary, err := h.uc.Ingest(c.Request.Context(), remoteID)
	if err != nil {
		h.logger.Error("ingestion failed", zap.String("remote_id", remoteID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "catalog synchronized",
		"summary": summary,
	})
}
