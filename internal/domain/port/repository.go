package port

import (
	"context"

	"chase-cover/internal/domain/entity"
)

// PackageRepository интерфейс хранилища собранных пакетов
type PackageRepository interface {
	// Save сохраняет пакет, назначая ID если он пустой
	Save(ctx context.Context, pkg *entity.Package) error

	// Get возвращает пакет по ID
	Get(ctx context.Context, id string) (*entity.Package, error)
}

// DraftRepository интерфейс хранилища черновиков чата
type DraftRepository interface {
	// Get возвращает черновик чата, создаёт новый если не найден
	Get(ctx context.Context, chatID int64) (*entity.Draft, error)

	// Save сохраняет черновик
	Save(ctx context.Context, draft *entity.Draft) error
}
