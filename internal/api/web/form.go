package web

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"chase-cover/internal/domain/entity"
)

// parseOrderForm собирает заказ из полей формы и файлов photos.
func parseOrderForm(r *http.Request) (*entity.Order, error) {
	order := &entity.Order{
		ProjectName:   strings.TrimSpace(r.FormValue("project_name")),
		Color:         r.FormValue("color"),
		CustomColor:   strings.TrimSpace(r.FormValue("custom_color")),
		SparkArrestor: checked(r, "spark_arrestor"),
		SparkDetails:  strings.TrimSpace(r.FormValue("spark_details")),
		Windband:      checked(r, "windband"),
		Notes:         strings.TrimSpace(r.FormValue("notes")),
	}
	if order.Color == "" {
		order.Color = entity.ColorNotSelected
	}
	order.Panel.Kickout = checked(r, "kickout")

	var err error
	if order.Panel.Width, err = number(r, "width"); err != nil {
		return nil, err
	}
	if order.Panel.Length, err = number(r, "length"); err != nil {
		return nil, err
	}
	if order.Panel.FlangeLength, err = number(r, "flange_length"); err != nil {
		return nil, err
	}
	if order.FitTolerance, err = number(r, "fit_tolerance"); err != nil {
		return nil, err
	}
	count := 1
	if v := strings.TrimSpace(r.FormValue("holes")); v != "" {
		if count, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid holes: %q", v)
		}
	}
	if count < 1 {
		return nil, entity.ErrNoHoles
	}
	if count > entity.MaxHoles {
		return nil, entity.ErrTooManyHoles
	}

	for i := 1; i <= count; i++ {
		hole, err := parseHoleForm(r, i)
		if err != nil {
			return nil, err
		}
		order.Holes = append(order.Holes, hole)
	}

	if order.Photos, err = readPhotos(r); err != nil {
		return nil, err
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

func parseHoleForm(r *http.Request, i int) (entity.HoleInput, error) {
	key := func(name string) string { return fmt.Sprintf("hole_%d_%s", i, name) }

	var (
		h   = entity.HoleInput{Distances: entity.EdgeDistances{}}
		err error
	)
	if h.CollarHeight, err = number(r, key("collar")); err != nil {
		return h, err
	}
	if h.MeasuredDiameter, err = number(r, key("diameter")); err != nil {
		return h, err
	}
	for _, e := range entity.Edges {
		v, err := number(r, key(string(e)))
		if err != nil {
			return h, err
		}
		if v > 0 {
			h.Distances[e] = v
		}
	}
	return h, nil
}

// number разбирает неотрицательное число, пустое поле даёт 0.
func number(r *http.Request, key string) (float64, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return n, nil
}

func checked(r *http.Request, key string) bool {
	switch strings.ToLower(r.FormValue(key)) {
	case "on", "true", "yes", "1":
		return true
	}
	return false
}

func readPhotos(r *http.Request) ([]entity.Photo, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	var photos []entity.Photo
	for _, fh := range r.MultipartForm.File["photos"] {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		if len(data) == 0 {
			continue
		}
		photos = append(photos, entity.Photo{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return photos, nil
}
