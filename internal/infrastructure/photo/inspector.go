//go:build !gocv
// +build !gocv

package photo

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"chase-cover/internal/domain/entity"
	"chase-cover/internal/domain/port"
)

// edgeThreshold яркость пикселя карты границ, с которой он считается границей.
const edgeThreshold = 96

// Inspector проверка качества на чистом Go (без OpenCV).
// Блики не оцениваются, для этого нужна сборка с тегом gocv.
type Inspector struct {
	Thresholds
}

// NewInspector создаёт проверку с порогами по умолчанию.
func NewInspector() *Inspector {
	return &Inspector{Thresholds: DefaultThresholds()}
}

// Inspect оценивает резкость и экспозицию фото.
func (i *Inspector) Inspect(ctx context.Context, photo entity.Photo) (*entity.PhotoCheck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(photo.Data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", photo.Name, err)
	}

	check := &entity.PhotoCheck{
		Name:   photo.Name,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}

	// Приводим изображение к стандартному размеру для стабильных порогов.
	if check.Width > i.MaxSide || check.Height > i.MaxSide {
		img = imaging.Fit(img, i.MaxSide, i.MaxSide, imaging.Box)
	}

	gray := effect.Grayscale(img)
	edges := effect.EdgeDetection(gray, 1.0)

	b := gray.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		check.Issues = append(check.Issues, "empty image")
		return check, nil
	}

	var edgeCount, bright, dark int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := gray.RGBAAt(x, y).R
			if v >= 250 {
				bright++
			}
			if v <= 20 {
				dark++
			}
			if edges.RGBAAt(x, y).R >= edgeThreshold {
				edgeCount++
			}
		}
	}

	check.EdgeRatio = float64(edgeCount) / float64(total)
	check.Overexposed = float64(bright) / float64(total)
	check.Underexposed = float64(dark) / float64(total)

	i.evaluate(check, -1)
	return check, nil
}

var _ port.PhotoInspector = (*Inspector)(nil)
