package imagepkg

import (
	"bytes"
	"context"
	"image"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/youruser/playercard/internal/util"
)

// DownloadImage downloads an image from URL and returns image.Image (decoded).
func DownloadImage(ctx context.Context, client *retryablehttp.Client, url string) (image.Image, error) {
	body, err := util.GetBytes(ctx, client, url, nil)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(body))
}
