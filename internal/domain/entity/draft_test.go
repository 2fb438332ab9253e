package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDraft_DefaultState(t *testing.T) {
	d := NewDraft(10)
	require.Equal(t, StateMainMenu, d.State)
	require.Equal(t, int64(10), d.ChatID)
	require.Nil(t, d.Order)
}

func TestDraft_ResetKeepsPackage(t *testing.T) {
	d := NewDraft(10)
	d.Order = &Order{ProjectName: "Smith"}
	d.Photos = []Photo{{Name: "a.jpg"}}
	d.PackageID = "pkg-1"
	d.SetState(StateCollectingPhotos)

	d.Reset()
	require.Equal(t, StateMainMenu, d.State)
	require.Nil(t, d.Order)
	require.Empty(t, d.Photos)
	require.Equal(t, "pkg-1", d.PackageID)
}
