//go:build !gocv
// +build !gocv

package photo

import (
	"context"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"chase-cover/internal/domain/entity"
)

func hasIssue(c *entity.PhotoCheck, prefix string) bool {
	for _, issue := range c.Issues {
		if strings.HasPrefix(issue, prefix) {
			return true
		}
	}
	return false
}

func TestInspector_SharpPhoto(t *testing.T) {
	data := encodePNG(t, createCheckerImage(600, 500, 20))

	check, err := NewInspector().Inspect(context.Background(), entity.Photo{Name: "chase.png", Data: data})
	require.NoError(t, err)
	require.Equal(t, 600, check.Width)
	require.Equal(t, 500, check.Height)
	require.Greater(t, check.EdgeRatio, 0.008)
	require.True(t, check.OK(), "issues: %v", check.Issues)
}

func TestInspector_BlurryPhoto(t *testing.T) {
	data := encodePNG(t, createUniformImage(1000, 1000, color.RGBA{120, 120, 120, 255}))

	check, err := NewInspector().Inspect(context.Background(), entity.Photo{Name: "flat.png", Data: data})
	require.NoError(t, err)
	require.True(t, hasIssue(check, "image is blurry"))
}

func TestInspector_Overexposed(t *testing.T) {
	data := encodePNG(t, createUniformImage(500, 500, color.White))

	check, err := NewInspector().Inspect(context.Background(), entity.Photo{Name: "white.png", Data: data})
	require.NoError(t, err)
	require.True(t, hasIssue(check, "overexposed image"))
	require.InDelta(t, 1.0, check.Overexposed, 1e-9)
}

func TestInspector_Underexposed(t *testing.T) {
	data := encodePNG(t, createUniformImage(500, 500, color.Black))

	check, err := NewInspector().Inspect(context.Background(), entity.Photo{Name: "black.png", Data: data})
	require.NoError(t, err)
	require.True(t, hasIssue(check, "underexposed image"))
}

func TestInspector_TooSmall(t *testing.T) {
	data := encodePNG(t, createCheckerImage(120, 90, 10))

	check, err := NewInspector().Inspect(context.Background(), entity.Photo{Name: "thumb.png", Data: data})
	require.NoError(t, err)
	require.True(t, hasIssue(check, "image is too small"))
}

func TestInspector_LargePhotoIsDownscaled(t *testing.T) {
	data := encodeJPEG(t, createCheckerImage(2400, 1200, 40))

	check, err := NewInspector().Inspect(context.Background(), entity.Photo{Name: "big.jpg", Data: data})
	require.NoError(t, err)
	require.Equal(t, 2400, check.Width)
	require.False(t, hasIssue(check, "image is blurry"))
}

func TestInspector_InvalidData(t *testing.T) {
	_, err := NewInspector().Inspect(context.Background(), entity.Photo{Name: "x.jpg", Data: []byte("not an image")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "x.jpg")
}
