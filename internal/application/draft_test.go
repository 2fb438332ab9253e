package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"chase-cover/internal/domain/entity"
	"chase-cover/internal/infrastructure/storage"
)

func TestDraftService_BeginAndCancel(t *testing.T) {
	svc := NewDraftService(storage.NewMemoryDraftRepository())
	ctx := context.Background()

	draft, err := svc.Begin(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingMeasurements, draft.State)

	draft, err = svc.Cancel(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, draft.State)
}

func TestDraftService_CollectAndTake(t *testing.T) {
	svc := NewDraftService(storage.NewMemoryDraftRepository())
	ctx := context.Background()

	_, err := svc.Take(ctx, 10)
	require.ErrorIs(t, err, ErrDraftEmpty)

	_, err = svc.Begin(ctx, 10)
	require.NoError(t, err)

	n, err := svc.AddPhoto(ctx, 10, entity.Photo{Name: "a.jpg", Data: []byte("a")})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	draft, err := svc.SetMeasurements(ctx, 10, squareOrder())
	require.NoError(t, err)
	require.Equal(t, entity.StateCollectingPhotos, draft.State)

	n, err = svc.AddPhoto(ctx, 10, entity.Photo{Name: "b.jpg", Data: []byte("b")})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	order, err := svc.Take(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, "Smith", order.ProjectName)
	require.Len(t, order.Photos, 2)

	// Take не сбрасывает черновик.
	_, err = svc.Take(ctx, 10)
	require.NoError(t, err)

	draft, err = svc.Complete(ctx, 10, "abc")
	require.NoError(t, err)
	require.Nil(t, draft.Order)
	require.Empty(t, draft.Photos)

	id, err := svc.LastPackage(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, "abc", id)

	_, err = svc.Take(ctx, 10)
	require.ErrorIs(t, err, ErrDraftEmpty)
}

func TestDraftService_LastPackageMissing(t *testing.T) {
	svc := NewDraftService(storage.NewMemoryDraftRepository())

	_, err := svc.LastPackage(context.Background(), 7)
	require.ErrorIs(t, err, entity.ErrPackageNotFound)
}
