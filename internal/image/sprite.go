package imagepkg

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/youruser/playercard/internal/assets"
)

// ErrInvalidSize is returned when a requested sprite size is not positive.
var ErrInvalidSize = errors.New("sprite size must be positive")

// propFrame is the square a property icon is centered in before scaling.
const propFrame = 70

var defaultSizes = map[assets.Category]int{
	assets.CategoryProp:    40,
	assets.CategoryElement: 40,
	assets.CategoryEquip:   90,
	assets.CategoryRarity:  80,
	assets.CategoryRank:    40,
}

// DefaultSize returns the usual edge length for sprites of cat.
func DefaultSize(cat assets.Category) int {
	if n, ok := defaultSizes[cat]; ok {
		return n
	}
	return 40
}

// SpriteResolver turns codes into sprites of an exact size.
type SpriteResolver struct {
	reg   *assets.Registry
	store assets.Store
}

func NewSpriteResolver(reg *assets.Registry, store assets.Store) *SpriteResolver {
	return &SpriteResolver{reg: reg, store: store}
}

// Get returns the sprite for code scaled to w×h. Unknown codes yield a
// transparent w×h image. A known code whose file is missing or cannot be
// decoded is an error.
func (s *SpriteResolver) Get(cat assets.Category, code string, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%s %q at %dx%d: %w", cat, code, w, h, ErrInvalidSize)
	}
	key, ok := s.reg.Resolve(cat, code)
	if !ok {
		return Transparent(w, h), nil
	}
	src, err := loadImage(s.store, assets.Path(cat, key))
	if err != nil {
		return nil, err
	}
	if cat == assets.CategoryProp {
		src = centerOn(src, propFrame)
	}
	return imaging.Resize(src, w, h, imaging.Lanczos), nil
}

func (s *SpriteResolver) PropIcon(code string, w, h int) (*image.NRGBA, error) {
	return s.Get(assets.CategoryProp, code, w, h)
}

func (s *SpriteResolver) ElementIcon(id int, w, h int) (*image.NRGBA, error) {
	return s.Get(assets.CategoryElement, fmt.Sprint(id), w, h)
}

func (s *SpriteResolver) EquipIcon(equipID string, w, h int) (*image.NRGBA, error) {
	return s.Get(assets.CategoryEquip, equipID, w, h)
}

func (s *SpriteResolver) RarityIcon(letter string, w, h int) (*image.NRGBA, error) {
	return s.Get(assets.CategoryRarity, letter, w, h)
}

func (s *SpriteResolver) RankIcon(letter string, w, h int) (*image.NRGBA, error) {
	return s.Get(assets.CategoryRank, letter, w, h)
}

// Transparent returns a fully transparent w×h image.
func Transparent(w, h int) *image.NRGBA {
	return imaging.New(w, h, color.NRGBA{})
}

// loadImage reads and decodes an asset. Failures carry the asset path.
func loadImage(store assets.Store, path string) (image.Image, error) {
	b, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode asset %s: %w", path, err)
	}
	return img, nil
}

// centerOn draws img in the middle of a transparent size×size square.
func centerOn(img image.Image, size int) *image.NRGBA {
	b := img.Bounds()
	frame := Transparent(size, size)
	pt := image.Pt(size/2-b.Dx()/2, size/2-b.Dy()/2)
	return imaging.Overlay(frame, img, pt, 1.0)
}
