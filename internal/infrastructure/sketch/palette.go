package sketch

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"chase-cover/internal/domain/entity"
)

// Базовые цвета металла по каталогу.
var metalColors = map[string]string{
	entity.ColorWhite:      "#F2F2EE",
	entity.ColorBlack:      "#1F1F1F",
	entity.ColorMedBronze:  "#5E4B37",
	entity.ColorMill:       "#C5C9CC",
	entity.ColorMatchMetal: "#8E9296",
}

// tintAmount доля белого в заливке основы, чтобы линии и подписи читались.
const tintAmount = 0.8

var (
	colorBase    = color.RGBA{A: 255}
	colorFlange  = color.RGBA{B: 255, A: 255}
	colorKickout = color.RGBA{A: 255}
	colorTrim    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colorHole    = color.RGBA{R: 255, A: 255}
	colorText    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// capTint светлый оттенок выбранного цвета для заливки основы.
// Для неизвестного цвета и "Other" заливка белая.
func capTint(name string) colorful.Color {
	white := colorful.Color{R: 1, G: 1, B: 1}
	hex, ok := metalColors[name]
	if !ok {
		return white
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return white
	}
	return c.BlendLab(white, tintAmount).Clamped()
}

// strokeColor цвет линии контура. Внешняя кромка kickout серая.
func strokeColor(r entity.Rect) color.Color {
	switch r.Kind {
	case entity.RectBase:
		return colorBase
	case entity.RectFlange:
		return colorFlange
	case entity.RectKickout:
		if r.Offset == entity.KickoutOuterOffset {
			return colorTrim
		}
		return colorKickout
	default:
		return colorTrim
	}
}

func hexOf(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}
