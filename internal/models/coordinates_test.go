package models_test

import (
	"testing"

	"github.com/Houeta/stampcam/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	t.Run("plain pair", func(t *testing.T) {
		coords, err := models.ParseCoordinates("24.46196,72.77045")

		require.NoError(t, err)
		assert.InDelta(t, 24.46196, coords.Latitude, 1e-9)
		assert.InDelta(t, 72.77045, coords.Longitude, 1e-9)
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		coords, err := models.ParseCoordinates("  24.46196 ,\t72.77045  ")

		require.NoError(t, err)
		assert.InDelta(t, 24.46196, coords.Latitude, 1e-9)
		assert.InDelta(t, 72.77045, coords.Longitude, 1e-9)
	})

	t.Run("negative values", func(t *testing.T) {
		coords, err := models.ParseCoordinates("-33.8688,151.2093")

		require.NoError(t, err)
		assert.InDelta(t, -33.8688, coords.Latitude, 1e-9)
		assert.InDelta(t, 151.2093, coords.Longitude, 1e-9)
	})

	t.Run("out-of-range values are accepted as-is", func(t *testing.T) {
		coords, err := models.ParseCoordinates("500,200")

		require.NoError(t, err)
		assert.InDelta(t, 500.0, coords.Latitude, 1e-9)
		assert.InDelta(t, 200.0, coords.Longitude, 1e-9)
	})

	t.Run("missing comma", func(t *testing.T) {
		_, err := models.ParseCoordinates("24.46196 72.77045")

		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidCoordinates)
	})

	t.Run("extra tokens", func(t *testing.T) {
		_, err := models.ParseCoordinates("24.4,72.7,13.3")

		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidCoordinates)
	})

	t.Run("non-numeric latitude", func(t *testing.T) {
		_, err := models.ParseCoordinates("north,72.77045")

		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidCoordinates)
	})

	t.Run("non-numeric longitude", func(t *testing.T) {
		_, err := models.ParseCoordinates("24.46196,east")

		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidCoordinates)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := models.ParseCoordinates("")

		require.Error(t, err)
	})
}

func TestCoordinates_String(t *testing.T) {
	coords := models.Coordinates{Latitude: 24.46196, Longitude: 72.77045}

	assert.Equal(t, "Lat 24.461960, Lon 72.770450", coords.String())
}
