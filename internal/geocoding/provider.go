package geocoding

import (
	"context"

	"github.com/Houeta/stampcam/internal/models"
)

// Provider is an interface that defines a method for reverse geocoding.
// The ReverseGeocode method takes a context and a coordinate pair as input,
// and returns a human-readable display name for the location, or an error.
type Provider interface {
	ReverseGeocode(ctx context.Context, coords models.Coordinates) (string, error)
}
