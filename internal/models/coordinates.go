package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Coordinates represents a geographical point defined by its latitude and longitude.
type Coordinates struct {
	Latitude  float64 // Latitude of the geographical point.
	Longitude float64 // Longitude of the geographical point.
}

// ErrInvalidCoordinates is returned when a coordinate string cannot be parsed.
var ErrInvalidCoordinates = errors.New("could not parse coordinates, use format: lat,lon")

// ParseCoordinates parses a free-text "lat,lon" pair. Surrounding whitespace
// around either token is ignored. The input must contain exactly one comma and
// two numeric tokens; no range validation is applied, so values outside
// [-90,90]/[-180,180] pass through unchanged.
func ParseCoordinates(text string) (Coordinates, error) {
	parts := strings.Split(text, ",")
	const expectedTokens = 2
	if len(parts) != expectedTokens {
		return Coordinates{}, fmt.Errorf("%w: got %d tokens", ErrInvalidCoordinates, len(parts))
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: invalid latitude %q", ErrInvalidCoordinates, parts[0])
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: invalid longitude %q", ErrInvalidCoordinates, parts[1])
	}

	return Coordinates{Latitude: lat, Longitude: lon}, nil
}

// String formats the pair as "Lat X, Lon Y" with six decimal places.
func (c Coordinates) String() string {
	return fmt.Sprintf("Lat %.6f, Lon %.6f", c.Latitude, c.Longitude)
}
