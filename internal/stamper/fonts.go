package stamper

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font files looked up in the configured font directory.
const (
	titleFontFile    = "DejaVuSans-Bold.ttf"
	subtitleFontFile = "DejaVuSans.ttf"
)

// Font scale floors, matching the caption proportions of the stamp layout.
const (
	minTitleSize    = 20
	minSubtitleSize = 14
	titleDivisor    = 30
	subtitleDivisor = 55
)

// FaceSet holds the two faces used by the caption: a bold title face and a
// regular subtitle face, both sized proportionally to the image width.
type FaceSet struct {
	Title    font.Face
	Subtitle font.Face
}

// LoadFaces builds the caption faces for an image of the given width.
// It tries the DejaVu files in fontDir first, falls back to the embedded Go
// fonts when the directory or files are unusable, and as a last resort uses
// the fixed-size basicfont face. Font problems never abort a generation.
func LoadFaces(log *slog.Logger, fontDir string, imageWidth int) FaceSet {
	titleSize := imageWidth / titleDivisor
	if titleSize < minTitleSize {
		titleSize = minTitleSize
	}
	subtitleSize := imageWidth / subtitleDivisor
	if subtitleSize < minSubtitleSize {
		subtitleSize = minSubtitleSize
	}

	return FaceSet{
		Title:    loadFace(log, filepath.Join(fontDir, titleFontFile), gobold.TTF, titleSize),
		Subtitle: loadFace(log, filepath.Join(fontDir, subtitleFontFile), goregular.TTF, subtitleSize),
	}
}

// loadFace parses the TTF at path, or the fallback bytes when the file is
// missing or malformed.
func loadFace(log *slog.Logger, path string, fallback []byte, size int) font.Face {
	if data, err := os.ReadFile(path); err == nil {
		if parsed, perr := truetype.Parse(data); perr == nil {
			return truetype.NewFace(parsed, &truetype.Options{Size: float64(size)})
		}
		log.Warn("Failed to parse font file, using built-in font", "path", path)
	}

	parsed, err := truetype.Parse(fallback)
	if err != nil {
		log.Warn("Failed to parse built-in font, using basic face", "error", err)
		return basicfont.Face7x13
	}

	return truetype.NewFace(parsed, &truetype.Options{Size: float64(size)})
}
