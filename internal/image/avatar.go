package imagepkg

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/youruser/playercard/internal/assets"
	"golang.org/x/image/vector"
)

// DefaultAvatarPath is the asset used when no avatar can be fetched.
const DefaultAvatarPath = "texture2d/avatar_default.png"

// AvatarProvider returns a size×size avatar for uid. With ring set the
// corners outside the inscribed circle are transparent.
type AvatarProvider interface {
	Avatar(ctx context.Context, uid string, size int, ring bool) (image.Image, error)
}

// StaticAvatar serves the default avatar from the asset store.
type StaticAvatar struct {
	Store assets.Store
}

func (a StaticAvatar) Avatar(_ context.Context, _ string, size int, ring bool) (image.Image, error) {
	img, err := loadImage(a.Store, DefaultAvatarPath)
	if err != nil {
		return nil, err
	}
	return fitAvatar(img, size, ring), nil
}

// URLAvatar downloads avatars from a URL template containing {uid}. Failed
// downloads fall back to Fallback when it is set.
type URLAvatar struct {
	Template string
	Client   *retryablehttp.Client
	Fallback AvatarProvider
}

func (a URLAvatar) Avatar(ctx context.Context, uid string, size int, ring bool) (image.Image, error) {
	url := strings.ReplaceAll(a.Template, "{uid}", uid)
	img, err := DownloadImage(ctx, a.Client, url)
	if err != nil {
		if a.Fallback != nil {
			return a.Fallback.Avatar(ctx, uid, size, ring)
		}
		return nil, err
	}
	return fitAvatar(img, size, ring), nil
}

func fitAvatar(img image.Image, size int, ring bool) *image.NRGBA {
	sq := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)
	if !ring {
		return sq
	}
	return circleCrop(sq)
}

// circleCrop keeps the inscribed circle of a square image.
func circleCrop(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	n := float32(b.Dx())
	r := n / 2
	k := r * kappa

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(r, 0)
	z.CubeTo(r+k, 0, n, r-k, n, r)
	z.CubeTo(n, r+k, r+k, n, r, n)
	z.CubeTo(r-k, n, 0, r+k, 0, r)
	z.CubeTo(0, r-k, r-k, 0, r, 0)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	out := imaging.New(b.Dx(), b.Dy(), color.NRGBA{})
	draw.DrawMask(out, out.Bounds(), img, b.Min, mask, image.Point{}, draw.Over)
	return out
}
