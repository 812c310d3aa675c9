package handler

import (
	"context"
	"image"
	"log/slog"
	"net/http"

	// Register decoders for the upload formats the form accepts.
	_ "image/jpeg"
	_ "image/png"

	"github.com/Houeta/stampcam/internal/models"
	"github.com/gin-gonic/gin"
)

// StampGenerator runs one stamping pipeline and returns the encoded JPEG.
type StampGenerator interface {
	Generate(ctx context.Context, img image.Image, coords models.Coordinates) ([]byte, error)
}

// StampHandler handles HTTP requests for photo stamping.
type StampHandler struct {
	log     *slog.Logger
	service StampGenerator
}

// NewStampHandler creates a new stamp handler.
func NewStampHandler(log *slog.Logger, service StampGenerator) *StampHandler {
	return &StampHandler{log: log, service: service}
}

// Generate produces a stamped photo from a multipart form.
// POST /api/v1/stamp
//
// Form fields: "image" (the photo file) and "coordinates" ("lat,lon" text).
// Responds with the stamped JPEG as a downloadable attachment.
func (h *StampHandler) Generate(c *gin.Context) {
	coordsText := c.PostForm("coordinates")
	if coordsText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide coordinates (paste or use detected coords)."})
		return
	}

	coords, err := models.ParseCoordinates(coordsText)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload or capture an image first."})
		return
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not open image: " + err.Error()})
		return
	}

	out, err := h.service.Generate(c.Request.Context(), img, coords)
	if err != nil {
		h.log.ErrorContext(c.Request.Context(), "Stamp generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate stamped image"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="stamped.jpg"`)
	c.Data(http.StatusOK, "image/jpeg", out)
}
