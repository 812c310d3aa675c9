package service

import (
	"context"
	"image"
	"log/slog"
	"time"

	"github.com/Houeta/stampcam/internal/geocoding"
	"github.com/Houeta/stampcam/internal/metrics"
	"github.com/Houeta/stampcam/internal/models"
	"github.com/Houeta/stampcam/internal/staticmap"
	"github.com/Houeta/stampcam/internal/stamper"
)

// StampService turns an uploaded photo and a coordinate pair into a stamped
// JPEG. External lookups (reverse geocoding, static map) are best-effort:
// each gets a single attempt with a short timeout, and a failure only
// degrades the caption or drops the inset, never the whole generation.
type StampService struct {
	log          *slog.Logger       // Logger for logging service activities
	provider     geocoding.Provider // Reverse-geocoding provider for the caption title
	providerName string             // Name of the provider for metrics labeling
	maps         staticmap.Fetcher  // Static map client for the inset thumbnail
	stamper      *stamper.Stamper   // Compositor producing the output image
	metrics      *metrics.Metrics   // Metrics for tracking service performance
	callTimeout  time.Duration      // Timeout applied to each external call
}

// NewStampService creates a new instance of StampService. It takes a logger,
// a reverse-geocoding provider with its name for metrics, a static map
// fetcher, the compositor, metrics for monitoring, and the per-call timeout
// for external services.
func NewStampService(
	log *slog.Logger,
	provider geocoding.Provider,
	providerName string,
	maps staticmap.Fetcher,
	stmp *stamper.Stamper,
	appMetrics *metrics.Metrics,
	callTimeout time.Duration,
) *StampService {
	return &StampService{
		log:          log,
		provider:     provider,
		providerName: providerName,
		maps:         maps,
		stamper:      stmp,
		metrics:      appMetrics,
		callTimeout:  callTimeout,
	}
}

// Generate runs one stamping pipeline to completion: resolve the address,
// fetch the map thumbnail, composite, encode. The returned bytes are a
// quality-92 JPEG with the same dimensions as img.
func (ss *StampService) Generate(ctx context.Context, img image.Image, coords models.Coordinates) ([]byte, error) {
	ss.metrics.InFlight.Inc()
	defer ss.metrics.InFlight.Dec()

	req := models.StampRequest{
		Image:     img,
		Coords:    coords,
		Address:   ss.resolveAddress(ctx, coords),
		MapInset:  ss.fetchInset(ctx, coords),
		Timestamp: time.Now(),
	}

	out, err := ss.stamper.Stamp(req)
	if err != nil {
		ss.metrics.StampsProcessed.WithLabelValues("failure").Inc()
		ss.log.ErrorContext(ctx, "Failed to composite stamped image", "error", err)
		return nil, err
	}

	ss.metrics.StampsProcessed.WithLabelValues("success").Inc()
	ss.log.InfoContext(ctx, "Stamped image generated",
		"lat", coords.Latitude, "lon", coords.Longitude,
		"address_resolved", req.Address != "", "inset", req.MapInset != nil)

	return out, nil
}

// resolveAddress returns the reverse-geocoded display name, or an empty
// string when the lookup fails. The caption then falls back to coordinates.
func (ss *StampService) resolveAddress(ctx context.Context, coords models.Coordinates) string {
	callCtx, cancel := context.WithTimeout(ctx, ss.callTimeout)
	defer cancel()

	startTime := time.Now()
	address, err := ss.provider.ReverseGeocode(callCtx, coords)
	ss.metrics.RequestSeconds.WithLabelValues(ss.providerName).Observe(time.Since(startTime).Seconds())

	if err != nil {
		ss.metrics.APIErrors.WithLabelValues("geocoding").Inc()
		ss.log.WarnContext(ctx, "Reverse geocoding failed, using coordinate title", "error", err)
		return ""
	}

	return address
}

// fetchInset returns the map thumbnail, or nil when the fetch or decode
// fails. A nil inset is simply not drawn.
func (ss *StampService) fetchInset(ctx context.Context, coords models.Coordinates) image.Image {
	callCtx, cancel := context.WithTimeout(ctx, ss.callTimeout)
	defer cancel()

	startTime := time.Now()
	inset, err := ss.maps.FetchThumbnail(callCtx, coords)
	ss.metrics.RequestSeconds.WithLabelValues("staticmap").Observe(time.Since(startTime).Seconds())

	if err != nil {
		ss.metrics.APIErrors.WithLabelValues("staticmap").Inc()
		ss.log.WarnContext(ctx, "Static map fetch failed, omitting inset", "error", err)
		return nil
	}

	return inset
}
