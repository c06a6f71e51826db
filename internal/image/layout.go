package imagepkg

import (
	"fmt"
	"image"
	"image/color"
)

// Card coordinates, in pixels of the player_card_min texture.
const (
	nameX = 290
	nameY = 64
	uidX  = 426
	uidY  = 120

	avatarSize = 129
	avatarX    = 105
	avatarY    = 30

	chipGapAfterName = 20
	chipGap          = 12
	chipY            = 45
	chipH            = 35
	chipRadius       = 10
	chipTextDY       = 17
	levelChipW       = 90
	regionChipW      = 144

	qrSize   = 100
	qrMargin = 20
)

var (
	colorGrey   = color.NRGBA{R: 216, G: 216, B: 216, A: 255}
	colorDark   = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	colorYellow = color.NRGBA{R: 255, G: 200, B: 1, A: 255}
	colorBlue   = color.NRGBA{R: 1, G: 183, B: 255, A: 255}
	colorWhite  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Point is a float position on the canvas.
type Point struct {
	X, Y float64
}

// Chip is a rounded label. X, Y is the top-left corner.
type Chip struct {
	X, Y, W, H float64
	Label      string
	Fill       color.NRGBA
}

// TextAnchor returns where the chip label is centered.
func (c Chip) TextAnchor() Point {
	return Point{X: c.X + c.W/2, Y: c.Y + chipTextDY}
}

// CardGeometry is the layout of one player card.
type CardGeometry struct {
	NameWidth  float64
	Name       string
	NameAt     Point
	UIDText    string
	UIDAt      Point
	Avatar     image.Point
	LevelChip  Chip
	RegionChip Chip
}

// Layout computes the card geometry for a nickname, level, region and uid.
func Layout(uid, nickname string, level int, region string) CardGeometry {
	nw := NameOffset(nickname)
	xs := nameX + nw + chipGapAfterName
	xt := xs + levelChipW + chipGap
	return CardGeometry{
		NameWidth: nw,
		Name:      nickname,
		NameAt:    Point{X: nameX, Y: nameY},
		UIDText:   "UID " + uid,
		UIDAt:     Point{X: uidX, Y: uidY},
		Avatar:    image.Pt(avatarX, avatarY),
		LevelChip: Chip{
			X: xs, Y: chipY, W: levelChipW, H: chipH,
			Label: fmt.Sprintf("Lv%d", level),
			Fill:  colorYellow,
		},
		RegionChip: Chip{
			X: xt, Y: chipY, W: regionChipW, H: chipH,
			Label: region,
			Fill:  colorBlue,
		},
	}
}
