package cad

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"chase-cover/internal/domain/entity"
	"chase-cover/internal/domain/port"
)

// Слои контура в DXF.
const (
	LayerBase    = "BASE"
	LayerFlange  = "FLANGE"
	LayerKickout = "KICKOUT"
	LayerTrim    = "TRIM"
	LayerHoles   = "HOLES"
)

// insUnitsInches значение $INSUNITS для дюймов.
const insUnitsInches = 1

// DXFEmitter пишет контур крышки в DXF R2000: замкнутые LWPOLYLINE
// для прямоугольников и CIRCLE для отверстий, единицы дюймы.
type DXFEmitter struct{}

// NewDXFEmitter создаёт эмиттер.
func NewDXFEmitter() *DXFEmitter {
	return &DXFEmitter{}
}

// Emit возвращает DXF с основой, фланцем, кромками и отверстиями.
func (e *DXFEmitter) Emit(ctx context.Context, drawing entity.Drawing) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := drawing.Panel.Validate(); err != nil {
		return nil, err
	}

	d := dxf.NewDrawing()
	for _, name := range []string{LayerBase, LayerFlange, LayerKickout, LayerTrim} {
		if _, err := d.AddLayer(name, dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
			return nil, fmt.Errorf("add layer %s: %w", name, err)
		}
	}
	if _, err := d.AddLayer(LayerHoles, color.Red, dxf.DefaultLineType, false); err != nil {
		return nil, fmt.Errorf("add layer %s: %w", LayerHoles, err)
	}

	for _, r := range drawing.Panel.Outline() {
		if err := d.ChangeLayer(layerFor(r.Kind)); err != nil {
			return nil, err
		}
		if _, err := d.LwPolyline(true,
			[]float64{r.X, r.Y},
			[]float64{r.X + r.Width, r.Y},
			[]float64{r.X + r.Width, r.Y + r.Height},
			[]float64{r.X, r.Y + r.Height},
		); err != nil {
			return nil, fmt.Errorf("outline %s: %w", r.Kind, err)
		}
	}

	if err := d.ChangeLayer(LayerHoles); err != nil {
		return nil, err
	}
	for _, h := range drawing.Holes {
		if h.Radius() <= 0 {
			continue
		}
		if _, err := d.Circle(h.X, h.Y, 0, h.Radius()); err != nil {
			return nil, fmt.Errorf("hole %d: %w", h.Index, err)
		}
	}

	data, err := save(d)
	if err != nil {
		return nil, err
	}
	return withInchUnits(data)
}

// save пишет чертёж через временный файл: библиотека сохраняет только в файл.
func save(d interface{ SaveAs(string) error }) ([]byte, error) {
	dir, err := os.MkdirTemp("", "chase-dxf-*")
	if err != nil {
		return nil, fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "outline.dxf")
	if err := d.SaveAs(path); err != nil {
		return nil, fmt.Errorf("save dxf: %w", err)
	}
	return os.ReadFile(path)
}

// withInchUnits добавляет $INSUNITS в начало секции HEADER.
func withInchUnits(data []byte) ([]byte, error) {
	i := bytes.Index(data, []byte("HEADER"))
	if i < 0 {
		return nil, errors.New("dxf: header section not found")
	}
	end := bytes.IndexByte(data[i:], '\n')
	if end < 0 {
		return nil, errors.New("dxf: truncated header")
	}
	end += i + 1

	eol := "\n"
	if end >= 2 && data[end-2] == '\r' {
		eol = "\r\n"
	}
	units := fmt.Sprintf("9%s$INSUNITS%s70%s%d%s", eol, eol, eol, insUnitsInches, eol)

	out := make([]byte, 0, len(data)+len(units))
	out = append(out, data[:end]...)
	out = append(out, units...)
	out = append(out, data[end:]...)
	return out, nil
}

func layerFor(kind entity.RectKind) string {
	switch kind {
	case entity.RectBase:
		return LayerBase
	case entity.RectFlange:
		return LayerFlange
	case entity.RectKickout:
		return LayerKickout
	default:
		return LayerTrim
	}
}

var _ port.OutlineEmitter = (*DXFEmitter)(nil)
