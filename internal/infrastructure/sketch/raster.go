package sketch

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"chase-cover/internal/domain/entity"
	"chase-cover/internal/domain/port"
)

var (
	fontOnce sync.Once
	fontTTF  *truetype.Font
	fontErr  error
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		fontTTF, fontErr = truetype.Parse(goregular.TTF)
	})
	return fontTTF, fontErr
}

// RasterRenderer рисует эскиз в JPEG.
type RasterRenderer struct {
	MaxSide int // длинная сторона области чертежа, пиксели
	Quality int // качество JPEG
}

// NewRasterRenderer создаёт рендерер с размерами для печати в цеху.
func NewRasterRenderer() *RasterRenderer {
	return &RasterRenderer{
		MaxSide: 1800,
		Quality: 92,
	}
}

// Render рисует эскиз и кодирует его в JPEG.
func (r *RasterRenderer) Render(ctx context.Context, drawing entity.Drawing) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := r.draw(drawing)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: r.Quality}); err != nil {
		return nil, fmt.Errorf("encode sketch: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *RasterRenderer) fontSizes() (title, dims, holes float64) {
	k := float64(r.MaxSide) / 1800
	return 40 * k, 30 * k, 24 * k
}

func (r *RasterRenderer) draw(d entity.Drawing) (image.Image, error) {
	p := d.Panel
	if err := p.Validate(); err != nil {
		return nil, err
	}

	ttf, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	titleSize, dimsSize, holeSize := r.fontSizes()
	l := newLayout(p, r.MaxSide, int(titleSize*2))

	dc := gg.NewContext(l.width, l.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Заливка основы цветом металла
	outline := p.Outline()
	bx, by, bw, bh := l.rect(outline[0])
	dc.SetColor(capTint(d.Color))
	dc.DrawRectangle(bx, by, bw, bh)
	dc.Fill()

	dc.SetLineWidth(3)
	for _, rect := range outline {
		x, y, w, h := l.rect(rect)
		dc.SetColor(strokeColor(rect))
		dc.DrawRectangle(x, y, w, h)
		dc.Stroke()
	}

	dc.SetLineWidth(4)
	dc.SetColor(colorHole)
	for _, hole := range d.Holes {
		// у вырожденной панели диаметр может выйти нулевым или отрицательным
		if hole.Radius() <= 0 {
			continue
		}
		cx, cy := l.point(hole.X, hole.Y)
		dc.DrawCircle(cx, cy, l.length(hole.Radius()))
		dc.Stroke()
	}

	dc.SetColor(colorText)
	dc.SetFontFace(newFace(ttf, holeSize))
	for _, hole := range d.Holes {
		cx, cy := l.point(hole.X, hole.Y)
		drawLines(dc, holeLabel(hole), cx, cy, holeSize*1.2)
	}

	dc.SetFontFace(newFace(ttf, dimsSize))
	f := p.FlangeLength

	x, y := l.point(p.Width/2, -f-1)
	dc.DrawStringAnchored(widthLabel(p), x, y, 0.5, 0)

	x, y = l.point(-f-1, p.Length/2)
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), x, y)
	dc.DrawStringAnchored(lengthLabel(p), x, y, 0.5, 0)
	dc.Pop()

	x, y = l.point(p.Width+f+1, p.Length/2)
	dc.DrawStringAnchored(flangeLabel(p), x, y, 0, 0.5)

	dc.SetFontFace(newFace(ttf, titleSize))
	dc.DrawStringAnchored(titleLabel(d), float64(l.width)/2, float64(marginPx)+titleSize/2, 0.5, 0.5)

	return dc.Image(), nil
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

// drawLines рисует строки по центру вокруг (x, y).
func drawLines(dc *gg.Context, lines []string, x, y, lineHeight float64) {
	top := y - lineHeight*float64(len(lines)-1)/2
	for i, line := range lines {
		dc.DrawStringAnchored(line, x, top+float64(i)*lineHeight, 0.5, 0.5)
	}
}

var _ port.SketchRenderer = (*RasterRenderer)(nil)
