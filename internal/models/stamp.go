package models

import (
	"image"
	"time"
)

// StampRequest carries everything the compositor needs for one generation.
// Every field is built fresh per user action; nothing is shared or retained
// once the stamped image has been delivered.
type StampRequest struct {
	Image     image.Image // Base photo, decoded.
	Coords    Coordinates // Parsed "lat,lon" input.
	Address   string      // Reverse-geocoded display name; empty on lookup failure.
	MapInset  image.Image // Static map thumbnail; nil when the fetch or decode failed.
	Timestamp time.Time   // Local generation time, rendered into the caption.
}
