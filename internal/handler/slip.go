package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/Houeta/stampcam/internal/metrics"
	"github.com/Houeta/stampcam/internal/models"
	"github.com/gin-gonic/gin"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// SlipGenerator fills the salary slip template for one employee.
type SlipGenerator interface {
	Generate(details models.SlipDetails, w io.Writer) error
}

// SlipHandler handles HTTP requests for salary slip generation.
type SlipHandler struct {
	log       *slog.Logger
	generator SlipGenerator
	metrics   *metrics.Metrics
}

// NewSlipHandler creates a new salary slip handler.
func NewSlipHandler(log *slog.Logger, generator SlipGenerator, appMetrics *metrics.Metrics) *SlipHandler {
	return &SlipHandler{log: log, generator: generator, metrics: appMetrics}
}

// Generate fills the slip template with the posted figures.
// POST /api/v1/salaryslip
//
// Body: JSON-encoded SlipDetails. Responds with the filled .docx named
// salaryslip_<Name>_<Month>.docx, spaces replaced by underscores.
func (h *SlipHandler) Generate(c *gin.Context) {
	var details models.SlipDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if details.Name == "" || details.Month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both name and month are required."})
		return
	}

	var buf bytes.Buffer
	if err := h.generator.Generate(details, &buf); err != nil {
		h.metrics.SlipsProcessed.WithLabelValues("failure").Inc()
		h.log.ErrorContext(c.Request.Context(), "Slip generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate salary slip"})
		return
	}

	h.metrics.SlipsProcessed.WithLabelValues("success").Inc()

	c.Header("Content-Disposition", `attachment; filename="`+details.Filename()+`"`)
	c.Data(http.StatusOK, docxContentType, buf.Bytes())
}
