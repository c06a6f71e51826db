package imagepkg

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Point sizes used on the card.
const (
	nameFontSize = 38
	uidFontSize  = 30
	chipFontSize = 28
)

// ParseFont parses TrueType or OpenType data.
func ParseFont(data []byte) (*opentype.Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return f, nil
}

// LoadFont reads a font file. An empty path selects the bundled Go font,
// which has no CJK glyphs.
func LoadFont(path string) (*opentype.Font, error) {
	if path == "" {
		return ParseFont(goregular.TTF)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return ParseFont(data)
}

// faceSet holds the faces for one render. opentype faces are not safe for
// concurrent use, so each render builds its own.
type faceSet struct {
	name font.Face
	uid  font.Face
	chip font.Face
}

func newFaceSet(f *opentype.Font) (*faceSet, error) {
	mk := func(size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	var fs faceSet
	var err error
	if fs.name, err = mk(nameFontSize); err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	if fs.uid, err = mk(uidFontSize); err != nil {
		fs.Close()
		return nil, fmt.Errorf("create font face: %w", err)
	}
	if fs.chip, err = mk(chipFontSize); err != nil {
		fs.Close()
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return &fs, nil
}

func (fs *faceSet) Close() {
	for _, f := range []font.Face{fs.name, fs.uid, fs.chip} {
		if f != nil {
			f.Close()
		}
	}
}
