package imagepkg

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/youruser/playercard/internal/assets"
)

const (
	backgroundPath = "texture2d/bg.jpg"
	footerPath     = "texture2d/footer.png"
	footerBottom   = 10
)

// Background returns the shared page background cropped around its center
// to w×h.
func Background(store assets.Store, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	bg, err := loadImage(store, backgroundPath)
	if err != nil {
		return nil, err
	}
	return imaging.Fill(bg, w, h, imaging.Center, imaging.Lanczos), nil
}

// AddFooter pastes the footer banner centered at the bottom of img, scaled
// to the image width.
func AddFooter(store assets.Store, img image.Image) (*image.NRGBA, error) {
	footer, err := loadImage(store, footerPath)
	if err != nil {
		return nil, err
	}
	w := img.Bounds().Dx()
	if fw := footer.Bounds().Dx(); fw != w {
		fh := footer.Bounds().Dy() * w / fw
		footer = imaging.Resize(footer, w, fh, imaging.Lanczos)
	}
	fb := footer.Bounds()
	pt := image.Pt((w-fb.Dx())/2, img.Bounds().Dy()-fb.Dy()-footerBottom)
	return imaging.Overlay(img, footer, pt, 1.0), nil
}
