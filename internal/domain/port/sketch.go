package port

import (
	"context"

	"chase-cover/internal/domain/entity"
)

// SketchRenderer интерфейс отрисовки эскиза крышки
type SketchRenderer interface {
	// Render рисует эскиз с размерами и возвращает закодированное изображение
	Render(ctx context.Context, drawing entity.Drawing) ([]byte, error)
}

// OutlineEmitter интерфейс выгрузки контура для раскроя
type OutlineEmitter interface {
	// Emit возвращает векторный контур (DXF, дюймы)
	Emit(ctx context.Context, drawing entity.Drawing) ([]byte, error)
}
