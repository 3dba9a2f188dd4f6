package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/partkit/partkit/internal/domain/naming"
	"github.com/partkit/partkit/internal/infrastructure/logger"
	"github.com/partkit/partkit/internal/interfaces/http/dto"
)

// NamingHandler serves the naming engine over HTTP. It works on records
// posted by the caller, so no catalog API session is needed.
type NamingHandler struct {
	generator *naming.Generator
	analyzer  *naming.Analyzer
}

// NewNamingHandler creates a NamingHandler.
func NewNamingHandler(generator *naming.Generator, analyzer *naming.Analyzer) *NamingHandler {
	return &NamingHandler{generator: generator, analyzer: analyzer}
}

// GenerateName handles POST /api/v1/names
func (h *NamingHandler) GenerateName(c *gin.Context) {
	var req dto.ProductRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_INPUT", err.Error()))
		return
	}

	record := req.ToRecord()
	name := h.generator.GenerateName(record)
	category := naming.DetectCategory(record)

	logger.FromGin(c).Info("name generated",
		zap.String("part", record.PartNumber),
		zap.String("category", category),
		zap.String("name", name))

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NameResponse{
		PartNumber:       record.PartNumber,
		DetectedCategory: category,
		GeneratedName:    name,
	}))
}

// Analyze handles POST /api/v1/analyses
func (h *NamingHandler) Analyze(c *gin.Context) {
	var req dto.ProductRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_INPUT", err.Error()))
		return
	}

	analysis := h.analyzer.Analyze(req.ToRecord())
	c.JSON(http.StatusOK, dto.NewSuccessResponse(analysis))
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
