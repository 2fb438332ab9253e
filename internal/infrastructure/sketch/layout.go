package sketch

import (
	"math"

	"chase-cover/internal/domain/entity"
)

const (
	// paddingInches поле вокруг самого внешнего контура.
	paddingInches = 2.0
	marginPx      = 40
	// minSpanInches нижняя граница масштаба для вырожденной панели.
	minSpanInches = 1.0
)

// layout переводит дюймы панели в пиксели холста.
type layout struct {
	scale     float64 // пикселей на дюйм
	minX      float64
	maxY      float64
	width     int
	height    int
	titleBand int
}

func newLayout(p entity.Panel, maxSide, titleBand int) layout {
	ext := p.Extent()
	minX := -ext - paddingInches
	maxX := p.Width + ext + paddingInches
	minY := -ext - paddingInches
	maxY := p.Length + ext + paddingInches

	spanX := maxX - minX
	spanY := maxY - minY
	scale := float64(maxSide-2*marginPx) / math.Max(math.Max(spanX, spanY), minSpanInches)

	return layout{
		scale:     scale,
		minX:      minX,
		maxY:      maxY,
		width:     int(math.Ceil(spanX*scale)) + 2*marginPx,
		height:    int(math.Ceil(spanY*scale)) + 2*marginPx + titleBand,
		titleBand: titleBand,
	}
}

// point возвращает пиксельные координаты точки панели.
func (l layout) point(x, y float64) (float64, float64) {
	px := float64(marginPx) + (x-l.minX)*l.scale
	py := float64(marginPx+l.titleBand) + (l.maxY-y)*l.scale
	return px, py
}

// rect возвращает левый верхний угол и размеры прямоугольника в пикселях.
func (l layout) rect(r entity.Rect) (x, y, w, h float64) {
	x, y = l.point(r.X, r.Y+r.Height)
	return x, y, r.Width * l.scale, r.Height * l.scale
}

func (l layout) length(v float64) float64 {
	return v * l.scale
}
