package app

import (
	"context"
	"errors"

	"chase-cover/internal/domain/entity"
	"chase-cover/internal/domain/port"
)

// ErrDraftEmpty в черновике ещё нет замеров.
var ErrDraftEmpty = errors.New("no measurements in the draft")

type DraftService struct {
	repo port.DraftRepository
}

func NewDraftService(repo port.DraftRepository) *DraftService {
	return &DraftService{repo: repo}
}

func (s *DraftService) Get(ctx context.Context, chatID int64) (*entity.Draft, error) {
	return s.repo.Get(ctx, chatID)
}

// Begin начинает новый заказ: старые замеры и фото сбрасываются.
func (s *DraftService) Begin(ctx context.Context, chatID int64) (*entity.Draft, error) {
	return s.update(ctx, chatID, func(d *entity.Draft) {
		d.Reset()
		d.SetState(entity.StateAwaitingMeasurements)
	})
}

func (s *DraftService) Cancel(ctx context.Context, chatID int64) (*entity.Draft, error) {
	return s.update(ctx, chatID, func(d *entity.Draft) {
		d.Reset()
	})
}

// SetMeasurements принимает замеры и переводит чат к сбору фото.
// Фото, присланные раньше, сохраняются.
func (s *DraftService) SetMeasurements(ctx context.Context, chatID int64, order *entity.Order) (*entity.Draft, error) {
	return s.update(ctx, chatID, func(d *entity.Draft) {
		cp := *order
		d.Order = &cp
		d.SetState(entity.StateCollectingPhotos)
	})
}

// AddPhoto добавляет фото к черновику и возвращает число фото.
func (s *DraftService) AddPhoto(ctx context.Context, chatID int64, photo entity.Photo) (int, error) {
	draft, err := s.update(ctx, chatID, func(d *entity.Draft) {
		d.Photos = append(append([]entity.Photo(nil), d.Photos...), photo)
	})
	if err != nil {
		return 0, err
	}
	return len(draft.Photos), nil
}

// Take возвращает заказ с собранными фото. Черновик не меняется,
// чтобы после ошибки расчёта можно было поправить замеры.
func (s *DraftService) Take(ctx context.Context, chatID int64) (*entity.Order, error) {
	draft, err := s.repo.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if draft.Order == nil {
		return nil, ErrDraftEmpty
	}

	order := *draft.Order
	order.Photos = append([]entity.Photo(nil), draft.Photos...)
	return &order, nil
}

// Complete сбрасывает черновик и запоминает собранный пакет для /send.
func (s *DraftService) Complete(ctx context.Context, chatID int64, packageID string) (*entity.Draft, error) {
	return s.update(ctx, chatID, func(d *entity.Draft) {
		d.Reset()
		d.PackageID = packageID
	})
}

// LastPackage ID последнего собранного в чате пакета.
func (s *DraftService) LastPackage(ctx context.Context, chatID int64) (string, error) {
	draft, err := s.repo.Get(ctx, chatID)
	if err != nil {
		return "", err
	}
	if draft.PackageID == "" {
		return "", entity.ErrPackageNotFound
	}
	return draft.PackageID, nil
}

func (s *DraftService) update(ctx context.Context, chatID int64, fn func(d *entity.Draft)) (*entity.Draft, error) {
	draft, err := s.repo.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}

	fn(draft)
	if err := s.repo.Save(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}
