package app

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chase-cover/internal/domain/entity"
	"chase-cover/internal/infrastructure/storage"
)

func prepared(t *testing.T, repo *storage.MemoryPackageRepository) *entity.Package {
	t.Helper()
	svc := NewMeasurementService(repo, &fakeRenderer{out: []byte("jpeg")}, nil, &fakeEmitter{out: []byte("dxf")}, nil, nil)
	order := squareOrder()
	order.Photos = []entity.Photo{{Name: "roof.jpg", ContentType: "image/jpeg", Data: []byte("photo")}}
	pkg, err := svc.Prepare(context.Background(), order)
	require.NoError(t, err)
	return pkg
}

func TestDispatchService_Send(t *testing.T) {
	repo := storage.NewMemoryPackageRepository(10)
	mailer := &fakeMailer{}
	svc := NewDispatchService(repo, mailer, storage.EncodeSnapshot, "shop@example.com")
	sentAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return sentAt }
	ctx := context.Background()
	pkg := prepared(t, repo)

	snap, err := svc.Send(ctx, pkg.ID)
	require.NoError(t, err)
	require.Equal(t, pkg.ID, snap.ID)
	require.Equal(t, sentAt, snap.SentAt)
	require.InDelta(t, 24*3.141592653589793, snap.Holes[0].Circumference, 1e-9)

	require.Len(t, mailer.sent, 1)
	m := mailer.sent[0]
	require.Equal(t, "shop@example.com", m.To)
	require.Equal(t, "Chimney Cap Measurements - Smith", m.Subject)
	require.Contains(t, m.Body, "Circumference=75.4 inches")
	require.Len(t, m.Attachments, 3)
	require.Equal(t, "roof.jpg", m.Attachments[0].Name)
	require.Equal(t, "Smith_sketch.jpg", m.Attachments[1].Name)
	require.Equal(t, []byte("jpeg"), m.Attachments[1].Data)
	require.Equal(t, "Smith.dxf", m.Attachments[2].Name)
	require.Equal(t, []byte("dxf"), m.Attachments[2].Data)

	data, name, err := svc.Snapshot(ctx, pkg.ID)
	require.NoError(t, err)
	require.Equal(t, "Smith.json", name)

	var decoded entity.Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "Smith", decoded.ProjectName)
	require.Equal(t, []string{"roof.jpg"}, decoded.Photos)
}

func TestDispatchService_TransportFailureKeepsPackage(t *testing.T) {
	repo := storage.NewMemoryPackageRepository(10)
	boom := errors.New("535 authentication failed")
	svc := NewDispatchService(repo, &fakeMailer{err: boom}, storage.EncodeSnapshot, "shop@example.com")
	ctx := context.Background()
	pkg := prepared(t, repo)

	_, err := svc.Send(ctx, pkg.ID)
	require.ErrorIs(t, err, boom)

	stored, err := repo.Get(ctx, pkg.ID)
	require.NoError(t, err)
	require.False(t, stored.Sent())
	require.Equal(t, []byte("jpeg"), stored.Sketch)

	_, _, err = svc.Snapshot(ctx, pkg.ID)
	require.ErrorIs(t, err, ErrSnapshotNotReady)
}

func TestDispatchService_MailNotConfigured(t *testing.T) {
	repo := storage.NewMemoryPackageRepository(10)
	svc := NewDispatchService(repo, &fakeMailer{err: entity.ErrMailNotConfigured}, storage.EncodeSnapshot, "shop@example.com")
	pkg := prepared(t, repo)

	_, err := svc.Send(context.Background(), pkg.ID)
	require.ErrorIs(t, err, entity.ErrMailNotConfigured)
}

func TestDispatchService_UnknownPackage(t *testing.T) {
	repo := storage.NewMemoryPackageRepository(10)
	svc := NewDispatchService(repo, &fakeMailer{}, storage.EncodeSnapshot, "shop@example.com")

	_, err := svc.Send(context.Background(), "missing")
	require.ErrorIs(t, err, entity.ErrPackageNotFound)

	_, _, err = svc.Snapshot(context.Background(), "missing")
	require.ErrorIs(t, err, entity.ErrPackageNotFound)
}
