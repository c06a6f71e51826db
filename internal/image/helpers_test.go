package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"github.com/youruser/playercard/internal/assets"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	navy  = color.NRGBA{R: 10, G: 20, B: 60, A: 255}
)

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, imaging.New(w, h, c)))
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(w, h, c), imaging.JPEG))
	return buf.Bytes()
}

// testPack returns an asset pack holding every static sprite, the card
// texture, the default avatar and one suit sprite.
func testPack(t *testing.T) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	add := func(path string, b []byte) { fsys[path] = &fstest.MapFile{Data: b} }

	sprite := pngBytes(t, 32, 32, red)
	reg := assets.NewRegistry(nil)
	for _, code := range []string{"111", "121", "131", "122", "201", "211", "314", "312", "231", "232", "305", "310", "115", "315", "316", "317", "318", "319"} {
		k, _ := reg.PropIcon(code)
		add(assets.Path(assets.CategoryProp, k), sprite)
	}
	for _, id := range []int{200, 201, 202, 203, 205} {
		k, _ := reg.ElementIcon(id)
		add(assets.Path(assets.CategoryElement, k), sprite)
	}
	for _, l := range []string{"S", "A", "B", "C"} {
		k, _ := reg.Rarity(l)
		add(assets.Path(assets.CategoryRarity, k), sprite)
	}
	for _, l := range []string{"S", "A", "B"} {
		k, _ := reg.Rank(l)
		add(assets.Path(assets.CategoryRank, k), sprite)
	}
	add("suit/31000.png", sprite)
	add(cardTexturePath, pngBytes(t, 900, 200, navy))
	add(DefaultAvatarPath, pngBytes(t, 256, 256, green))
	add(backgroundPath, jpegBytes(t, 400, 300, navy))
	add(footerPath, pngBytes(t, 200, 20, red))
	return fsys
}

func allTransparent(img *image.NRGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			return false
		}
	}
	return true
}

func sizeOf(img image.Image) image.Point {
	return img.Bounds().Size()
}

// pixelsUnlike counts the pixels of r that are not exactly c.
func pixelsUnlike(img *image.NRGBA, r image.Rectangle, c color.NRGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.NRGBAAt(x, y) != c {
				n++
			}
		}
	}
	return n
}
