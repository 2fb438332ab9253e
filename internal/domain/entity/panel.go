package entity

import (
	"errors"
	"math"
)

// ErrInvalidPanel размеры панели отрицательные или не числа.
var ErrInvalidPanel = errors.New("panel dimensions must be finite and not negative")

// Смещения кромок от фланца, дюймы.
const (
	KickoutInnerOffset = 0.5
	KickoutOuterOffset = 0.875
	TrimOffset         = 0.375
)

// Panel крышка короба дымохода в дюймах.
type Panel struct {
	Width        float64 // слева направо
	Length       float64 // спереди назад
	FlangeLength float64 // отгиб вниз
	Kickout      bool
}

// RectKind назначение контура.
type RectKind string

const (
	RectBase    RectKind = "base"
	RectFlange  RectKind = "flange"
	RectKickout RectKind = "kickout"
	RectTrim    RectKind = "trim"
)

// Rect прямоугольный контур: левый передний угол и размеры.
type Rect struct {
	Kind   RectKind
	Offset float64 // отступ наружу от фланца, 0 для base/flange
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// TrimOffsets отступы кромок от фланца: два при kickout, иначе один.
func (p Panel) TrimOffsets() []float64 {
	if p.Kickout {
		return []float64{KickoutInnerOffset, KickoutOuterOffset}
	}
	return []float64{TrimOffset}
}

// Outline возвращает контуры в порядке: основа, фланец, кромки.
func (p Panel) Outline() []Rect {
	f := p.FlangeLength
	rects := []Rect{
		{Kind: RectBase, X: 0, Y: 0, Width: p.Width, Height: p.Length},
		{Kind: RectFlange, X: -f, Y: -f, Width: p.Width + 2*f, Height: p.Length + 2*f},
	}

	kind := RectTrim
	if p.Kickout {
		kind = RectKickout
	}
	for _, off := range p.TrimOffsets() {
		rects = append(rects, Rect{
			Kind:   kind,
			Offset: off,
			X:      -f - off,
			Y:      -f - off,
			Width:  p.Width + 2*(f+off),
			Height: p.Length + 2*(f+off),
		})
	}
	return rects
}

// Extent габарит самого внешнего контура от начала координат основы.
func (p Panel) Extent() float64 {
	offs := p.TrimOffsets()
	return p.FlangeLength + offs[len(offs)-1]
}

// WithFit увеличивает основу на допуск посадки (в сумме по каждой оси).
func (p Panel) WithFit(tolerance float64) Panel {
	if tolerance <= 0 {
		return p
	}
	p.Width += tolerance
	p.Length += tolerance
	return p
}

// Validate проверяет размеры панели и отгиба. Нулевые размеры допустимы,
// как и в форме замера.
func (p Panel) Validate() error {
	for _, v := range []float64{p.Width, p.Length, p.FlangeLength} {
		if !validInches(v) {
			return ErrInvalidPanel
		}
	}
	return nil
}

// validInches конечное неотрицательное число.
func validInches(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
