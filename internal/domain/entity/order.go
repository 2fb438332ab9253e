package entity

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// MaxHoles ограничение формы на число отверстий.
const MaxHoles = 10

var (
	ErrNoHoles      = errors.New("at least one hole is required")
	ErrTooManyHoles = fmt.Errorf("at most %d holes are supported", MaxHoles)

	ErrInvalidMeasurement = errors.New("measurements must be finite and not negative")
)

// Варианты цвета крышки.
const (
	ColorNotSelected = "Not Selected"
	ColorWhite       = "White"
	ColorBlack       = "Black"
	ColorMedBronze   = "Med Bronze"
	ColorMill        = "Mill"
	ColorMatchMetal  = "Match Metal"
	ColorOther       = "Other"
)

// Colors порядок вариантов в форме.
var Colors = []string{ColorNotSelected, ColorWhite, ColorBlack, ColorMedBronze, ColorMill, ColorMatchMetal, ColorOther}

// Photo фото с объекта.
type Photo struct {
	Name        string
	ContentType string
	Data        []byte
}

// Order одна отправка формы замера.
type Order struct {
	ProjectName   string
	Panel         Panel
	FitTolerance  float64
	Color         string
	CustomColor   string
	SparkArrestor bool
	SparkDetails  string
	Windband      bool
	Notes         string
	Holes         []HoleInput
	Photos        []Photo
}

// DisplayName имя проекта для заголовков.
func (o *Order) DisplayName() string {
	if name := strings.TrimSpace(o.ProjectName); name != "" {
		return name
	}
	return "Unnamed Project"
}

// FileStem основа имени файлов вложений.
func (o *Order) FileStem() string {
	name := strings.TrimSpace(o.ProjectName)
	if name == "" {
		return "chase_cover"
	}
	stem := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, name)
	return stem
}

// ColorLabel цвет с уточнением для варианта "Other".
func (o *Order) ColorLabel() string {
	c := o.Color
	if c == "" {
		c = ColorNotSelected
	}
	if c == ColorOther && o.CustomColor != "" {
		return fmt.Sprintf("%s (%s)", c, o.CustomColor)
	}
	return c
}

// Validate проверяет, что все числа формы конечны и неотрицательны.
func (o *Order) Validate() error {
	if err := o.Panel.Validate(); err != nil {
		return err
	}
	if !validInches(o.FitTolerance) {
		return fmt.Errorf("%w: fit tolerance", ErrInvalidMeasurement)
	}
	for i, h := range o.Holes {
		if !validInches(h.CollarHeight) || !validInches(h.MeasuredDiameter) {
			return fmt.Errorf("%w: hole %d", ErrInvalidMeasurement, i+1)
		}
		for _, v := range h.Distances {
			if !validInches(v) {
				return fmt.Errorf("%w: hole %d", ErrInvalidMeasurement, i+1)
			}
		}
	}
	return nil
}

// ValidateHoles проверяет количество отверстий.
func (o *Order) ValidateHoles() error {
	if len(o.Holes) == 0 {
		return ErrNoHoles
	}
	if len(o.Holes) > MaxHoles {
		return ErrTooManyHoles
	}
	return nil
}

// ResolveHoles рассчитывает все отверстия. Одно неполное отверстие
// отклоняет всю отправку.
func (o *Order) ResolveHoles() ([]Hole, error) {
	if err := o.ValidateHoles(); err != nil {
		return nil, err
	}
	holes := make([]Hole, 0, len(o.Holes))
	for i, in := range o.Holes {
		h, err := NewHole(i+1, o.Panel, in)
		if err != nil {
			return nil, err
		}
		holes = append(holes, h)
	}
	return holes, nil
}

// Fabrication панель и отверстия с учётом допуска посадки.
func (o *Order) Fabrication(holes []Hole) (Panel, []Hole) {
	if o.FitTolerance <= 0 {
		return o.Panel, holes
	}
	half := o.FitTolerance / 2
	shifted := make([]Hole, len(holes))
	for i, h := range holes {
		shifted[i] = h.Shifted(half, half)
	}
	return o.Panel.WithFit(o.FitTolerance), shifted
}
