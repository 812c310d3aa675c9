package service_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"log/slog"
	"testing"
	"time"

	"github.com/Houeta/stampcam/internal/metrics"
	"github.com/Houeta/stampcam/internal/models"
	"github.com/Houeta/stampcam/internal/service"
	"github.com/Houeta/stampcam/internal/stamper"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is a stub reverse geocoder.
type fakeProvider struct {
	address string
	err     error
}

func (f *fakeProvider) ReverseGeocode(_ context.Context, _ models.Coordinates) (string, error) {
	return f.address, f.err
}

// fakeFetcher is a stub static map client.
type fakeFetcher struct {
	inset image.Image
	err   error
}

func (f *fakeFetcher) FetchThumbnail(_ context.Context, _ models.Coordinates) (image.Image, error) {
	return f.inset, f.err
}

func baseImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	return img
}

func newService(provider *fakeProvider, fetcher *fakeFetcher) *service.StampService {
	logger := slog.Default()
	return service.NewStampService(
		logger,
		provider,
		"nominatim",
		fetcher,
		stamper.New(logger, ""),
		metrics.NewMetrics(prometheus.NewRegistry()),
		time.Second,
	)
}

func TestStampService_Generate(t *testing.T) {
	ctx := context.Background()
	coords := models.Coordinates{Latitude: 24.46196, Longitude: 72.77045}

	t.Run("full pipeline with address and inset", func(t *testing.T) {
		svc := newService(
			&fakeProvider{address: "Test Address"},
			&fakeFetcher{inset: baseImage(80, 80)},
		)

		out, err := svc.Generate(ctx, baseImage(800, 600), coords)

		require.NoError(t, err)
		decoded, derr := jpeg.Decode(bytes.NewReader(out))
		require.NoError(t, derr)
		assert.Equal(t, 800, decoded.Bounds().Dx())
		assert.Equal(t, 600, decoded.Bounds().Dy())
	})

	t.Run("geocoding failure degrades to coordinate title", func(t *testing.T) {
		svc := newService(
			&fakeProvider{err: assert.AnError},
			&fakeFetcher{inset: baseImage(80, 80)},
		)

		out, err := svc.Generate(ctx, baseImage(400, 300), coords)

		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("map fetch failure omits the inset", func(t *testing.T) {
		svc := newService(
			&fakeProvider{address: "Test Address"},
			&fakeFetcher{err: assert.AnError},
		)

		out, err := svc.Generate(ctx, baseImage(400, 300), coords)

		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("both external calls failing still produces an image", func(t *testing.T) {
		svc := newService(
			&fakeProvider{err: assert.AnError},
			&fakeFetcher{err: assert.AnError},
		)

		out, err := svc.Generate(ctx, baseImage(400, 300), coords)

		require.NoError(t, err)

		decoded, derr := jpeg.Decode(bytes.NewReader(out))
		require.NoError(t, derr)
		assert.Equal(t, 400, decoded.Bounds().Dx())
		assert.Equal(t, 300, decoded.Bounds().Dy())
	})
}
