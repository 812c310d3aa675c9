package staticmap

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	// Register decoders for the formats the tile server may answer with.
	_ "image/jpeg"
	_ "image/png"

	"github.com/Houeta/stampcam/internal/models"
)

// Fetcher retrieves a small static map image centered on a coordinate pair.
type Fetcher interface {
	FetchThumbnail(ctx context.Context, coords models.Coordinates) (image.Image, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches rendered OpenStreetMap thumbnails from a static map endpoint.
// The thumbnail is used as the inset on stamped photos; any failure here is
// reported as an error and the caller simply omits the inset.
type Client struct {
	client  HTTPClient   // HTTP client for making requests
	baseURL string       // Base URL of the static map renderer
	log     *slog.Logger // Logger for logging operations
}

// Fixed rendering parameters for the inset thumbnail.
const (
	thumbnailZoom = 16
	thumbnailSize = "160x160"
)

// NewClient creates a static map client against the public OSM renderer.
func NewClient(log *slog.Logger) *Client {
	const timeout = 8
	return &Client{
		client: &http.Client{
			Timeout: timeout * time.Second,
		},
		baseURL: "https://staticmap.openstreetmap.de/staticmap.php",
		log:     log,
	}
}

// NewClientWithClient creates a static map client with a custom HTTP client.
// Useful for testing with mocked HTTP clients.
func NewClientWithClient(client HTTPClient, log *slog.Logger) *Client {
	return &Client{
		client:  client,
		baseURL: "https://staticmap.openstreetmap.de/staticmap.php",
		log:     log,
	}
}

// FetchThumbnail requests a 160x160 zoom-16 map centered on coords with a red
// pushpin marker at the same position, and decodes the response body as an
// image. A single attempt is made per call.
func (c *Client) FetchThumbnail(ctx context.Context, coords models.Coordinates) (image.Image, error) {
	c.log.DebugContext(ctx, "Fetching static map thumbnail",
		"lat", coords.Latitude, "lon", coords.Longitude)

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	center := strconv.FormatFloat(coords.Latitude, 'f', -1, 64) +
		"," + strconv.FormatFloat(coords.Longitude, 'f', -1, 64)

	query := reqURL.Query()
	query.Set("center", center)
	query.Set("zoom", strconv.Itoa(thumbnailZoom))
	query.Set("size", thumbnailSize)
	query.Set("markers", center+",red-pushpin")
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute static map request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.ErrorContext(ctx, "Static map API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("static map API returned status %d", resp.StatusCode)
	}

	img, format, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode static map response: %w", err)
	}

	c.log.DebugContext(ctx, "Static map thumbnail fetched", "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	return img, nil
}
