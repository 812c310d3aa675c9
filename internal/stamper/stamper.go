package stamper

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"log/slog"

	"github.com/Houeta/stampcam/internal/models"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Layout constants for the caption band and the map inset. These are fixed
// per the stamp design, not configurable per call.
const (
	bandHeightRatio = 0.22 // band height as a fraction of the image height
	bandAlpha       = 180  // opacity of the translucent black band
	padding         = 18   // inner padding of the caption text
	titleGutter     = 8    // gap between the title and the first subtitle line
	subtitleGutter  = 4    // gap between stacked subtitle lines
	insetBorder     = 4    // white border width around the map inset
	insetX          = 12   // left offset of the map inset
	jpegQuality     = 92   // output encoding quality
)

var (
	titleColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	subtitleColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	borderColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Stamper composites a caption band and an optional map inset onto photos.
// It holds no per-request state; every Stamp call works on its own copy of
// the input image.
type Stamper struct {
	log     *slog.Logger
	fontDir string
}

// New creates a Stamper that looks up caption fonts in fontDir, falling back
// to built-in faces when the directory is empty or missing.
func New(log *slog.Logger, fontDir string) *Stamper {
	return &Stamper{log: log, fontDir: fontDir}
}

// Stamp renders the caption band and inset described by req onto a copy of
// the base image and returns it encoded as a quality-92 JPEG. The output
// always has the same dimensions as the input. Missing address or inset data
// simply changes what is drawn; Stamp itself only fails on encoding errors.
func (s *Stamper) Stamp(req models.StampRequest) ([]byte, error) {
	bounds := req.Image.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// Promote to an alpha-capable copy of the base image.
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), req.Image, bounds.Min, draw.Src)

	// Translucent black band across the bottom edge.
	bandHeight := int(float64(height) * bandHeightRatio)
	bandTop := height - bandHeight
	bandRect := image.Rect(0, bandTop, width, height)
	draw.Draw(out, bandRect, image.NewUniform(color.RGBA{A: bandAlpha}), image.Point{}, draw.Over)

	faces := LoadFaces(s.log, s.fontDir, width)
	caption := ComposeCaption(req.Coords, req.Address, req.Timestamp)

	// Title, then subtitle lines stacked below it. Each vertical offset uses
	// the measured glyph bounding box of the previous line, not a fixed line
	// height, so variable font metrics keep the block compact.
	textY := bandTop + padding
	drawText(out, faces.Title, caption.Title, padding, textY, titleColor)
	textY += measureHeight(faces.Title, caption.Title) + titleGutter

	for _, line := range caption.Subtitle {
		drawText(out, faces.Subtitle, line, padding, textY, subtitleColor)
		textY += measureHeight(faces.Subtitle, line) + subtitleGutter
	}

	if req.MapInset != nil {
		s.drawInset(out, req.MapInset, bandTop)
	}

	// Flatten to opaque RGB via JPEG encoding.
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode stamped image: %w", err)
	}

	return buf.Bytes(), nil
}

// drawInset wraps the map thumbnail in a white border and anchors it so it
// straddles the band's top edge, composited with the thumbnail's own alpha.
func (s *Stamper) drawInset(dst *image.RGBA, inset image.Image, bandTop int) {
	thumbWidth := inset.Bounds().Dx()
	thumbHeight := inset.Bounds().Dy()

	bordered := image.NewRGBA(image.Rect(0, 0, thumbWidth+insetBorder*2, thumbHeight+insetBorder*2))
	draw.Draw(bordered, bordered.Bounds(), image.NewUniform(borderColor), image.Point{}, draw.Src)

	inner := image.Rect(insetBorder, insetBorder, insetBorder+thumbWidth, insetBorder+thumbHeight)
	draw.Draw(bordered, inner, inset, inset.Bounds().Min, draw.Over)

	offset := image.Pt(insetX, bandTop-thumbHeight/2)
	draw.Draw(dst, bordered.Bounds().Add(offset), bordered, image.Point{}, draw.Over)
}

// drawText renders s top-anchored at (x, y): the baseline is pushed down by
// the face's ascent so y marks the top of the line.
func drawText(dst *image.RGBA, face font.Face, text string, x, y int, fill color.Color) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fill),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(y) + face.Metrics().Ascent,
		},
	}
	drawer.DrawString(text)
}

// measureHeight returns the height of the string's glyph bounding box in
// pixels, ascent and descent included.
func measureHeight(face font.Face, text string) int {
	bounds, _ := font.BoundString(face, text)
	return (bounds.Max.Y - bounds.Min.Y).Ceil()
}
