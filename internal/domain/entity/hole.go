package entity

import (
	"fmt"
	"math"
)

// HoleInput замеры одного отверстия из формы.
type HoleInput struct {
	CollarHeight     float64
	MeasuredDiameter float64 // 0, если диаметр не замерен напрямую
	Distances        EdgeDistances
}

// Hole рассчитанное отверстие. Пересоздаётся на каждую отправку формы.
type Hole struct {
	Index            int // с единицы
	Diameter         float64
	X                float64
	Y                float64
	CollarHeight     float64
	MeasuredDiameter float64
	ComputedDiameter float64
	DiameterX        float64
	DiameterY        float64
	FullX            bool
	FullY            bool
	Mismatch         bool
	Distances        EdgeDistances
}

// NewHole рассчитывает отверстие по замерам относительно панели.
func NewHole(index int, panel Panel, in HoleInput) (Hole, error) {
	p, err := ResolveHole(panel.Width, panel.Length, in.Distances)
	if err != nil {
		return Hole{}, fmt.Errorf("hole %d: %w", index, err)
	}

	h := Hole{
		Index:            index,
		Diameter:         p.Diameter,
		X:                p.X,
		Y:                p.Y,
		CollarHeight:     in.CollarHeight,
		ComputedDiameter: p.Diameter,
		DiameterX:        p.DiameterX,
		DiameterY:        p.DiameterY,
		FullX:            p.FullX,
		FullY:            p.FullY,
		Mismatch:         p.Mismatch,
		Distances:        in.Distances.Provided(),
	}
	if in.MeasuredDiameter > 0 {
		h.MeasuredDiameter = in.MeasuredDiameter
		h.Diameter = in.MeasuredDiameter
	}
	return h, nil
}

// Circumference длина окружности по итоговому диаметру.
func (h Hole) Circumference() float64 {
	return math.Pi * h.Diameter
}

// Radius радиус по итоговому диаметру.
func (h Hole) Radius() float64 {
	return h.Diameter / 2
}

// MeasuredDeviation расхождение замеренного диаметра с расчётным.
// Второе значение false, если диаметр не замерялся.
func (h Hole) MeasuredDeviation() (float64, bool) {
	if h.MeasuredDiameter <= 0 {
		return 0, false
	}
	return math.Abs(h.MeasuredDiameter - h.ComputedDiameter), true
}

// Shifted сдвигает центр (используется для допуска посадки).
func (h Hole) Shifted(dx, dy float64) Hole {
	h.X += dx
	h.Y += dy
	return h
}

// Warnings предупреждения по отверстию: расхождение осей и замеренного диаметра.
func (h Hole) Warnings() []string {
	var out []string
	if h.Mismatch {
		out = append(out, fmt.Sprintf("Hole %d: left/right gives %.1f in, front/back gives %.1f in (difference over %.1f in)",
			h.Index, h.DiameterX, h.DiameterY, MismatchTolerance))
	}
	if dev, ok := h.MeasuredDeviation(); ok && dev > MismatchTolerance {
		out = append(out, fmt.Sprintf("Hole %d: measured diameter %.1f in differs from computed %.1f in",
			h.Index, h.MeasuredDiameter, h.ComputedDiameter))
	}
	return out
}
