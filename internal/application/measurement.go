package app

import (
	"context"
	"fmt"
	"log"

	"chase-cover/internal/domain/entity"
	"chase-cover/internal/domain/port"
)

// MeasurementService превращает замеры в пакет для цеха: отверстия,
// эскиз, SVG-превью, DXF контур и подготовленные фото.
type MeasurementService struct {
	packages   port.PackageRepository
	sketch     port.SketchRenderer
	preview    port.SketchRenderer
	outline    port.OutlineEmitter
	normalizer port.PhotoNormalizer
	inspector  port.PhotoInspector
}

// NewMeasurementService создаёт сервис. preview, normalizer и inspector могут быть nil.
func NewMeasurementService(
	packages port.PackageRepository,
	sketch port.SketchRenderer,
	preview port.SketchRenderer,
	outline port.OutlineEmitter,
	normalizer port.PhotoNormalizer,
	inspector port.PhotoInspector,
) *MeasurementService {
	return &MeasurementService{
		packages:   packages,
		sketch:     sketch,
		preview:    preview,
		outline:    outline,
		normalizer: normalizer,
		inspector:  inspector,
	}
}

// Prepare рассчитывает отверстия и собирает пакет. Если хотя бы одно
// отверстие не рассчитывается, ничего не строится.
func (s *MeasurementService) Prepare(ctx context.Context, order *entity.Order) (*entity.Package, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	holes, err := order.ResolveHoles()
	if err != nil {
		return nil, err
	}

	pkg := &entity.Package{
		Order: *order,
		Holes: holes,
	}
	pkg.Order.Photos = nil

	for _, h := range holes {
		pkg.Warnings = append(pkg.Warnings, h.Warnings()...)
	}

	photos, photoWarnings := s.preparePhotos(ctx, order.Photos)
	pkg.Photos = photos
	pkg.Warnings = append(pkg.Warnings, photoWarnings...)

	panel, placed := order.Fabrication(holes)
	drawing := entity.Drawing{
		Title: order.ProjectName,
		Color: order.Color,
		Panel: panel,
		Holes: placed,
	}

	if pkg.Sketch, err = s.sketch.Render(ctx, drawing); err != nil {
		return nil, fmt.Errorf("render sketch: %w", err)
	}
	if s.preview != nil {
		if pkg.SketchSVG, err = s.preview.Render(ctx, drawing); err != nil {
			return nil, fmt.Errorf("render preview: %w", err)
		}
	}
	if pkg.Outline, err = s.outline.Emit(ctx, drawing); err != nil {
		return nil, fmt.Errorf("emit outline: %w", err)
	}

	if err := s.packages.Save(ctx, pkg); err != nil {
		return nil, fmt.Errorf("save package: %w", err)
	}
	return pkg, nil
}

// preparePhotos нормализует и проверяет фото. Фото, которое не удалось
// декодировать, уходит в цех как есть.
func (s *MeasurementService) preparePhotos(ctx context.Context, photos []entity.Photo) ([]entity.Photo, []string) {
	var (
		out      = make([]entity.Photo, 0, len(photos))
		warnings []string
	)
	for _, ph := range photos {
		if s.normalizer != nil {
			normalized, err := s.normalizer.Normalize(ctx, ph)
			if err != nil {
				log.Printf("Normalize photo %s: %v", ph.Name, err)
				warnings = append(warnings, fmt.Sprintf("Photo %s: could not be processed, attached as uploaded", ph.Name))
				out = append(out, ph)
				continue
			}
			ph = normalized
		}
		out = append(out, ph)

		if s.inspector == nil {
			continue
		}
		check, err := s.inspector.Inspect(ctx, ph)
		if err != nil {
			log.Printf("Inspect photo %s: %v", ph.Name, err)
			continue
		}
		for _, issue := range check.Issues {
			warnings = append(warnings, fmt.Sprintf("Photo %s: %s", ph.Name, issue))
		}
	}
	return out, warnings
}
