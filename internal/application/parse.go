package app

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"chase-cover/internal/domain/entity"
)

// ErrMalformedMeasurements текст замеров не разобран.
var ErrMalformedMeasurements = errors.New("malformed measurements")

// ParseMeasurements разбирает замеры из сообщения чата:
//
//	width: 36
//	length: 36
//	hole: collar=4 left=6 right=6 front=6
//
// Ключи без учёта регистра, hole повторяется для каждого отверстия.
func ParseMeasurements(text string) (*entity.Order, error) {
	order := &entity.Order{Color: entity.ColorNotSelected}

	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: expected key: value", ErrMalformedMeasurements, n+1)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		if err := applyField(order, key, value); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedMeasurements, n+1, err)
		}
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}
	if err := order.ValidateHoles(); err != nil {
		return nil, err
	}
	return order, nil
}

func applyField(o *entity.Order, key, value string) error {
	var err error
	switch key {
	case "project", "project name", "name":
		o.ProjectName = value
	case "width":
		o.Panel.Width, err = parseInches(value)
	case "length":
		o.Panel.Length, err = parseInches(value)
	case "flange", "flange length":
		o.Panel.FlangeLength, err = parseInches(value)
	case "kickout":
		o.Panel.Kickout, err = parseFlag(value)
	case "tolerance", "fit tolerance":
		o.FitTolerance, err = parseInches(value)
	case "color", "colour":
		o.Color, o.CustomColor = parseColor(value)
	case "spark", "spark arrestor":
		flag, details, _ := strings.Cut(value, ",")
		o.SparkArrestor, err = parseFlag(flag)
		o.SparkDetails = strings.TrimSpace(details)
	case "windband":
		o.Windband, err = parseFlag(value)
	case "notes":
		o.Notes = value
	case "hole":
		var h entity.HoleInput
		h, err = parseHole(value)
		o.Holes = append(o.Holes, h)
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return err
}

// parseHole разбирает "collar=4 left=6 right=6 front=6 back=6 diameter=0".
func parseHole(value string) (entity.HoleInput, error) {
	h := entity.HoleInput{Distances: entity.EdgeDistances{}}
	for _, field := range strings.Fields(value) {
		k, v, ok := strings.Cut(field, "=")
		if !ok {
			return h, fmt.Errorf("hole field %q: expected name=value", field)
		}
		n, err := parseInches(v)
		if err != nil {
			return h, fmt.Errorf("hole field %q: %v", k, err)
		}
		switch strings.ToLower(k) {
		case "collar":
			h.CollarHeight = n
		case "diameter", "d":
			h.MeasuredDiameter = n
		case "left", "l":
			h.Distances[entity.EdgeLeft] = n
		case "right", "r":
			h.Distances[entity.EdgeRight] = n
		case "front", "f":
			h.Distances[entity.EdgeFront] = n
		case "back", "b":
			h.Distances[entity.EdgeBack] = n
		default:
			return h, fmt.Errorf("unknown hole field %q", k)
		}
	}
	return h, nil
}

func parseInches(value string) (float64, error) {
	value = strings.TrimSuffix(strings.TrimSpace(value), "\"")
	value = strings.TrimSpace(strings.TrimSuffix(value, "in"))
	if value == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %q", value)
	}
	return n, nil
}

func parseFlag(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true", "1", "on":
		return true, nil
	case "no", "n", "false", "0", "off", "":
		return false, nil
	}
	return false, fmt.Errorf("expected yes or no, got %q", value)
}

// parseColor сопоставляет цвет со списком, прочее считается "Other".
func parseColor(value string) (color, custom string) {
	if value == "" {
		return entity.ColorNotSelected, ""
	}
	for _, c := range entity.Colors {
		if strings.EqualFold(c, value) {
			return c, ""
		}
	}
	return entity.ColorOther, value
}
