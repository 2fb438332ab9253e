//go:build gocv
// +build gocv

package photo

import (
	"context"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"chase-cover/internal/domain/entity"
	"chase-cover/internal/domain/port"
)

// Inspector проверка качества на OpenCV.
type Inspector struct {
	Thresholds
}

// NewInspector создаёт проверку с порогами по умолчанию.
func NewInspector() *Inspector {
	return &Inspector{Thresholds: DefaultThresholds()}
}

// Inspect оценивает резкость, экспозицию и блики фото.
func (i *Inspector) Inspect(ctx context.Context, photo entity.Photo) (*entity.PhotoCheck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mat, err := decodeToMat(photo.Data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", photo.Name, err)
	}
	defer mat.Close()

	check := &entity.PhotoCheck{
		Name:   photo.Name,
		Width:  mat.Cols(),
		Height: mat.Rows(),
	}

	// Приводим изображение к стандартному размеру для стабильных порогов.
	if mat.Cols() > i.MaxSide || mat.Rows() > i.MaxSide {
		scale := float64(i.MaxSide) / float64(maxInt(mat.Cols(), mat.Rows()))
		newW := int(float64(mat.Cols()) * scale)
		newH := int(float64(mat.Rows()) * scale)
		resized := gocv.NewMat()
		gocv.Resize(mat, &resized, image.Pt(newW, newH), 0, 0, gocv.InterpolationArea)
		mat.Close()
		mat = resized
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, 80, 160)
	check.EdgeRatio = ratioOfMask(edges)

	bright := gocv.NewMat()
	defer bright.Close()
	gocv.Threshold(gray, &bright, 250, 255, gocv.ThresholdBinary)
	check.Overexposed = ratioOfMask(bright)

	dark := gocv.NewMat()
	defer dark.Close()
	gocv.Threshold(gray, &dark, 20, 255, gocv.ThresholdBinaryInv)
	check.Underexposed = ratioOfMask(dark)

	glare, err := glareRatio(mat)
	if err != nil {
		return nil, err
	}

	i.evaluate(check, glare)
	return check, nil
}

// glareRatio доля малонасыщенных и очень ярких пикселей (блики на металле).
func glareRatio(mat gocv.Mat) (float64, error) {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(mat, &hsv, gocv.ColorBGRToHSV)
	channels := gocv.Split(hsv)
	for i := range channels {
		defer channels[i].Close()
	}
	if len(channels) < 3 {
		return 0, fmt.Errorf("invalid hsv channels")
	}

	lowSat := gocv.NewMat()
	defer lowSat.Close()
	gocv.Threshold(channels[1], &lowSat, 40, 255, gocv.ThresholdBinaryInv)

	highVal := gocv.NewMat()
	defer highVal.Close()
	gocv.Threshold(channels[2], &highVal, 245, 255, gocv.ThresholdBinary)

	glare := gocv.NewMat()
	defer glare.Close()
	gocv.BitwiseAnd(lowSat, highVal, &glare)
	return ratioOfMask(glare), nil
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), fmt.Errorf("failed to decode image")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func ratioOfMask(mask gocv.Mat) float64 {
	total := mask.Cols() * mask.Rows()
	if total <= 0 {
		return 0
	}
	return float64(gocv.CountNonZero(mask)) / float64(total)
}

var _ port.PhotoInspector = (*Inspector)(nil)
