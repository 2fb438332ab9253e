package entity

import (
	"errors"
	"math"
)

const (
	// MinMeasurements минимальное число замеров на одно отверстие.
	MinMeasurements = 3
	// MismatchTolerance допустимое расхождение диаметров по осям, дюймы.
	MismatchTolerance = 0.1
)

var ErrInsufficientMeasurements = errors.New("at least 3 measurements are required for each hole")

// Placement результат расчёта положения отверстия.
type Placement struct {
	Diameter  float64
	X         float64
	Y         float64
	DiameterX float64 // 0, если по X нет замеров
	DiameterY float64 // 0, если по Y задана только одна сторона
	FullX     bool    // заданы и left, и right
	FullY     bool    // заданы и front, и back
	Mismatch  bool    // оси разошлись больше чем на MismatchTolerance
}

// ResolveHole вычисляет диаметр и центр отверстия по замерам от сторон панели.
//
// Ось X считается по left/right относительно ширины, ось Y по front/back
// относительно длины. Если обе оси определены полностью, диаметр равен
// среднему двух оценок, а расхождение больше MismatchTolerance помечается
// в Mismatch (значения не корректируются). При одной стороне по Y диаметр
// берётся с оси X.
func ResolveHole(width, length float64, distances EdgeDistances) (Placement, error) {
	if distances.Count() < MinMeasurements {
		return Placement{}, ErrInsufficientMeasurements
	}
	d := distances.Provided()

	left, hasLeft := d[EdgeLeft]
	right, hasRight := d[EdgeRight]
	front, hasFront := d[EdgeFront]
	back, hasBack := d[EdgeBack]

	var p Placement

	switch {
	case hasLeft && hasRight:
		p.FullX = true
		p.DiameterX = width - left - right
		p.X = left + p.DiameterX/2
	case hasLeft:
		p.DiameterX = (width - left) / 2
		p.X = left + p.DiameterX/2
	case hasRight:
		p.DiameterX = (width - right) / 2
		p.X = width - right - p.DiameterX/2
	}

	switch {
	case hasFront && hasBack:
		p.FullY = true
		p.DiameterY = length - front - back
		p.Y = back + p.DiameterY/2
		if p.FullX {
			p.Diameter = (p.DiameterX + p.DiameterY) / 2
			p.Mismatch = math.Abs(p.DiameterX-p.DiameterY) > MismatchTolerance
		} else {
			p.Diameter = p.DiameterY
		}
	case hasBack:
		p.Diameter = p.DiameterX
		p.Y = back + p.Diameter/2
	case hasFront:
		p.Diameter = p.DiameterX
		p.Y = length - front - p.Diameter/2
	default:
		p.Diameter = p.DiameterX
	}

	return p, nil
}
