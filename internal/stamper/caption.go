package stamper

import (
	"fmt"
	"time"

	"github.com/Houeta/stampcam/internal/models"
)

// Caption is the text block burned into the band: a title line and the
// stacked subtitle lines below it.
type Caption struct {
	Title    string
	Subtitle []string
}

// timestampLayout renders the local generation time as day/month/year with a
// 12-hour clock, e.g. "31/08/2026 04:05 PM".
const timestampLayout = "02/01/2006 03:04 PM"

// ComposeCaption builds the caption for a stamp. The title is the reverse
// geocoded address when one is available, otherwise the formatted coordinate
// pair. The subtitle is always two lines: the coordinates and the timestamp.
func ComposeCaption(coords models.Coordinates, address string, ts time.Time) Caption {
	title := address
	if title == "" {
		title = coords.String()
	}

	return Caption{
		Title: title,
		Subtitle: []string{
			fmt.Sprintf("Lat %.6f  Lon %.6f", coords.Latitude, coords.Longitude),
			ts.Format(timestampLayout),
		},
	}
}
