package port

import (
	"context"

	"chase-cover/internal/domain/entity"
)

// PhotoInspector интерфейс проверки качества фото с объекта
type PhotoInspector interface {
	// Inspect оценивает резкость и экспозицию фото
	Inspect(ctx context.Context, photo entity.Photo) (*entity.PhotoCheck, error)
}

// PhotoNormalizer интерфейс подготовки фото к отправке
type PhotoNormalizer interface {
	// Normalize поворачивает по EXIF, уменьшает и перекодирует фото
	Normalize(ctx context.Context, photo entity.Photo) (entity.Photo, error)
}
