package sketch

import (
	"bytes"
	"context"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"chase-cover/internal/domain/entity"
	"chase-cover/internal/domain/port"
)

// SVGRenderer рисует лёгкое превью эскиза для браузера.
type SVGRenderer struct {
	MaxSide int
}

// NewSVGRenderer создаёт рендерер превью.
func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{MaxSide: 720}
}

// Render возвращает SVG документ.
func (r *SVGRenderer) Render(ctx context.Context, drawing entity.Drawing) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := drawing.Panel
	if err := p.Validate(); err != nil {
		return nil, err
	}

	const titleBand = 36
	l := newLayout(p, r.MaxSide, titleBand)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(l.width, l.height)
	canvas.Title(titleLabel(drawing))
	canvas.Rect(0, 0, l.width, l.height, "fill:#FFFFFF")

	outline := p.Outline()
	bx, by, bw, bh := l.rect(outline[0])
	canvas.Rect(px(bx), px(by), px(bw), px(bh), "fill:"+capTint(drawing.Color).Hex())

	for _, rect := range outline {
		x, y, w, h := l.rect(rect)
		canvas.Rect(px(x), px(y), px(w), px(h),
			fmt.Sprintf("fill:none;stroke:%s;stroke-width:1.5", hexOf(strokeColor(rect))))
	}

	for _, hole := range drawing.Holes {
		cx, cy := l.point(hole.X, hole.Y)
		if hole.Radius() > 0 {
			canvas.Circle(px(cx), px(cy), px(l.length(hole.Radius())),
				fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", hexOf(colorHole)))
		}

		lines := holeLabel(hole)
		top := cy - 12*float64(len(lines)-1)/2
		for i, line := range lines {
			canvas.Text(px(cx), px(top+float64(i)*12)+4, line, "text-anchor:middle;font-size:10px;font-family:sans-serif")
		}
	}

	f := p.FlangeLength
	dimStyle := "font-size:13px;font-family:sans-serif;fill:#141414"

	x, y := l.point(p.Width/2, -f-1)
	canvas.Text(px(x), px(y)+10, widthLabel(p), "text-anchor:middle;"+dimStyle)

	x, y = l.point(-f-1, p.Length/2)
	canvas.Gtransform(fmt.Sprintf("rotate(-90 %d %d)", px(x), px(y)))
	canvas.Text(px(x), px(y), lengthLabel(p), "text-anchor:middle;"+dimStyle)
	canvas.Gend()

	x, y = l.point(p.Width+f+1, p.Length/2)
	canvas.Text(px(x), px(y)+4, flangeLabel(p), "text-anchor:start;"+dimStyle)

	canvas.Text(l.width/2, marginPx, titleLabel(drawing), "text-anchor:middle;font-size:18px;font-family:sans-serif")
	canvas.End()

	return buf.Bytes(), nil
}

func px(v float64) int {
	return int(math.Round(v))
}

var _ port.SketchRenderer = (*SVGRenderer)(nil)
