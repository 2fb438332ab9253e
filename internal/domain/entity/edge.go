package entity

// Edge сторона панели, от которой ведётся замер до отверстия.
type Edge string

const (
	EdgeLeft  Edge = "left"
	EdgeRight Edge = "right"
	EdgeFront Edge = "front"
	EdgeBack  Edge = "back" // сторона кричета
)

// Edges фиксированный порядок вывода сторон.
var Edges = []Edge{EdgeLeft, EdgeRight, EdgeFront, EdgeBack}

// Title возвращает имя стороны с заглавной буквы.
func (e Edge) Title() string {
	switch e {
	case EdgeLeft:
		return "Left"
	case EdgeRight:
		return "Right"
	case EdgeFront:
		return "Front"
	case EdgeBack:
		return "Back"
	default:
		return string(e)
	}
}

// Short однобуквенная метка для эскиза.
func (e Edge) Short() string {
	t := e.Title()
	if t == "" {
		return ""
	}
	return t[:1]
}

// EdgeDistances расстояния от сторон панели до края отверстия (в дюймах).
// Ноль означает "не замерено".
type EdgeDistances map[Edge]float64

// Provided возвращает копию только со строго положительными замерами.
func (d EdgeDistances) Provided() EdgeDistances {
	out := make(EdgeDistances, len(d))
	for _, e := range Edges {
		if v, ok := d[e]; ok && v > 0 {
			out[e] = v
		}
	}
	return out
}

// Count число заданных замеров.
func (d EdgeDistances) Count() int {
	return len(d.Provided())
}

// EdgeDistance пара сторона/расстояние для упорядоченного вывода.
type EdgeDistance struct {
	Edge     Edge
	Distance float64
}

// Ordered возвращает заданные замеры в порядке left, right, front, back.
func (d EdgeDistances) Ordered() []EdgeDistance {
	out := make([]EdgeDistance, 0, len(d))
	for _, e := range Edges {
		if v, ok := d[e]; ok && v > 0 {
			out = append(out, EdgeDistance{Edge: e, Distance: v})
		}
	}
	return out
}
