package imagepkg

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/youruser/playercard/internal/assets"
	"github.com/youruser/playercard/internal/profile"
	"golang.org/x/image/font/opentype"
)

const cardTexturePath = "texture2d/player_card_min.png"

var errNoFont = errors.New("card engine has no font")

// UpstreamError reports that the profile source returned an error code
// instead of a record. No image was drawn.
type UpstreamError struct {
	UID  string
	Code int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("profile %s: upstream code %d", e.UID, e.Code)
}

// PlayerCard is a rendered card and the geometry used to draw it.
type PlayerCard struct {
	Image  *image.NRGBA
	Layout CardGeometry
}

// CardOption adjusts a single render.
type CardOption func(*cardOptions)

type cardOptions struct {
	qrText string
}

// WithShareQR adds a QR code for text at the right edge of the card.
func WithShareQR(text string) CardOption {
	return func(o *cardOptions) { o.qrText = text }
}

// Engine renders player cards. It holds no per-render state and may be used
// from several goroutines.
type Engine struct {
	store   assets.Store
	sprites *SpriteResolver
	font    *opentype.Font
	avatars AvatarProvider
}

// NewEngine returns an Engine. A nil font selects the bundled Go font and a
// nil avatar provider serves the default avatar from store.
func NewEngine(store assets.Store, reg *assets.Registry, f *opentype.Font, avatars AvatarProvider) *Engine {
	if f == nil {
		f, _ = LoadFont("")
	}
	if avatars == nil {
		avatars = StaticAvatar{Store: store}
	}
	return &Engine{
		store:   store,
		sprites: NewSpriteResolver(reg, store),
		font:    f,
		avatars: avatars,
	}
}

// Sprites returns the resolver sharing the engine's registry and store.
func (e *Engine) Sprites() *SpriteResolver {
	return e.sprites
}

// Store returns the engine's asset store.
func (e *Engine) Store() assets.Store {
	return e.store
}

// RenderPlayerCard fetches the profile for uid from src and draws the small
// player card. A non-empty region replaces the region name from the profile.
// If src returns an error code, the error is an *UpstreamError carrying it.
func (e *Engine) RenderPlayerCard(ctx context.Context, uid string, src profile.DataSource, region string, opts ...CardOption) (*PlayerCard, error) {
	var o cardOptions
	for _, opt := range opts {
		opt(&o)
	}

	res := src.GetUserInfo(ctx, uid)
	rec, ok := res.Record()
	if !ok {
		return nil, &UpstreamError{UID: uid, Code: res.Code()}
	}
	if region == "" {
		region = rec.RegionName
	}
	geo := Layout(uid, rec.Nickname, rec.Level, region)

	bg, err := loadImage(e.store, cardTexturePath)
	if err != nil {
		return nil, err
	}
	canvas := imaging.Clone(bg)

	avatar, err := e.avatars.Avatar(ctx, uid, avatarSize, false)
	if err != nil {
		return nil, fmt.Errorf("avatar: %w", err)
	}
	canvas = imaging.Overlay(canvas, avatar, geo.Avatar, 1.0)

	if e.font == nil {
		return nil, errNoFont
	}
	faces, err := newFaceSet(e.font)
	if err != nil {
		return nil, err
	}
	defer faces.Close()

	drawText(canvas, faces.uid, geo.UIDText, geo.UIDAt.X, geo.UIDAt.Y, AnchorMiddle, colorGrey)
	drawText(canvas, faces.name, geo.Name, geo.NameAt.X, geo.NameAt.Y, AnchorLeftMiddle, colorWhite)

	for _, c := range []Chip{geo.LevelChip, geo.RegionChip} {
		fillRoundedRect(canvas, c.X, c.Y, c.X+c.W, c.Y+c.H, chipRadius, c.Fill)
		at := c.TextAnchor()
		drawText(canvas, faces.chip, c.Label, at.X, at.Y, AnchorMiddle, colorDark)
	}

	if o.qrText != "" {
		qr, err := GenerateQRImage(o.qrText, qrSize)
		if err != nil {
			return nil, fmt.Errorf("share qr: %w", err)
		}
		b := canvas.Bounds()
		pt := image.Pt(b.Dx()-qrSize-qrMargin, (b.Dy()-qrSize)/2)
		canvas = imaging.Paste(canvas, qr, pt)
	}

	return &PlayerCard{Image: canvas, Layout: geo}, nil
}
