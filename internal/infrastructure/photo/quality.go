package photo

import (
	"fmt"

	"chase-cover/internal/domain/entity"
)

// Thresholds пороги качества фото с объекта.
type Thresholds struct {
	MaxSide               int
	MinImageSide          int
	MinSharpnessEdgeRatio float64
	MaxOverexposedRatio   float64
	MaxUnderexposedRatio  float64
	MaxGlareRatio         float64
}

// DefaultThresholds пороги, подобранные на фото крыш с телефона.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxSide:               1024,
		MinImageSide:          400,
		MinSharpnessEdgeRatio: 0.008,
		MaxOverexposedRatio:   0.35,
		MaxUnderexposedRatio:  0.45,
		MaxGlareRatio:         0.08,
	}
}

// evaluate заполняет Issues по измеренным долям. glare < 0 значит "не измерялось".
func (t Thresholds) evaluate(c *entity.PhotoCheck, glare float64) {
	if c.Width < t.MinImageSide || c.Height < t.MinImageSide {
		c.Issues = append(c.Issues, fmt.Sprintf("image is too small (%dx%d)", c.Width, c.Height))
	}
	if c.EdgeRatio < t.MinSharpnessEdgeRatio {
		c.Issues = append(c.Issues, fmt.Sprintf("image is blurry (edge_ratio=%.4f)", c.EdgeRatio))
	}
	if c.Overexposed > t.MaxOverexposedRatio {
		c.Issues = append(c.Issues, fmt.Sprintf("overexposed image (ratio=%.4f)", c.Overexposed))
	}
	if c.Underexposed > t.MaxUnderexposedRatio {
		c.Issues = append(c.Issues, fmt.Sprintf("underexposed image (ratio=%.4f)", c.Underexposed))
	}
	if glare > t.MaxGlareRatio {
		c.Issues = append(c.Issues, fmt.Sprintf("too much glare (ratio=%.4f)", glare))
	}
}
