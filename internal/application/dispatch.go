package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chase-cover/internal/domain/entity"
	"chase-cover/internal/domain/port"
)

// ErrSnapshotNotReady снимок появляется только после отправки в цех.
var ErrSnapshotNotReady = errors.New("snapshot is available after the package is sent")

// SnapshotEncoder сериализует снимок для скачивания.
type SnapshotEncoder func(s *entity.Snapshot) ([]byte, error)

// DispatchService отправляет собранный пакет в цех.
type DispatchService struct {
	packages  port.PackageRepository
	mailer    port.Mailer
	encode    SnapshotEncoder
	shopEmail string
	now       func() time.Time
}

// NewDispatchService создаёт сервис отправки на адрес shopEmail.
func NewDispatchService(packages port.PackageRepository, mailer port.Mailer, encode SnapshotEncoder, shopEmail string) *DispatchService {
	return &DispatchService{
		packages:  packages,
		mailer:    mailer,
		encode:    encode,
		shopEmail: shopEmail,
		now:       time.Now,
	}
}

// Compose собирает письмо: сводка, фото, эскиз и DXF.
func (s *DispatchService) Compose(pkg *entity.Package) *entity.Mail {
	mail := &entity.Mail{
		To:      s.shopEmail,
		Subject: "Chimney Cap Measurements - " + pkg.Order.DisplayName(),
		Body:    ComposeSummary(pkg),
	}
	for _, ph := range pkg.Photos {
		mail.Attachments = append(mail.Attachments, entity.Attachment{
			Name:        ph.Name,
			ContentType: ph.ContentType,
			Data:        ph.Data,
		})
	}
	mail.Attachments = append(mail.Attachments,
		entity.Attachment{Name: pkg.SketchName(), ContentType: "image/jpeg", Data: pkg.Sketch},
		entity.Attachment{Name: pkg.OutlineName(), ContentType: "application/dxf", Data: pkg.Outline},
	)
	return mail
}

// Send отправляет пакет. Ошибка почты не трогает пакет: он остаётся
// доступным для скачивания и повторной отправки.
func (s *DispatchService) Send(ctx context.Context, id string) (*entity.Snapshot, error) {
	pkg, err := s.packages.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.Send(ctx, s.Compose(pkg)); err != nil {
		if errors.Is(err, entity.ErrMailNotConfigured) {
			return nil, err
		}
		return nil, fmt.Errorf("send package %s: %w", id, err)
	}

	pkg.SentAt = s.now()
	snapshot := entity.NewSnapshot(pkg)
	data, err := s.encode(snapshot)
	if err != nil {
		return nil, err
	}
	pkg.Snapshot = data

	if err := s.packages.Save(ctx, pkg); err != nil {
		return nil, fmt.Errorf("save package: %w", err)
	}
	return snapshot, nil
}

// Snapshot возвращает JSON снимок и имя файла.
func (s *DispatchService) Snapshot(ctx context.Context, id string) ([]byte, string, error) {
	pkg, err := s.packages.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if !pkg.Sent() || len(pkg.Snapshot) == 0 {
		return nil, "", ErrSnapshotNotReady
	}
	return pkg.Snapshot, pkg.SnapshotName(), nil
}
