package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestResolveHole_AllFourSides(t *testing.T) {
	p, err := ResolveHole(36, 36, EdgeDistances{EdgeLeft: 6, EdgeRight: 6, EdgeFront: 6, EdgeBack: 6})
	require.NoError(t, err)
	require.InDelta(t, 24, p.DiameterX, eps)
	require.InDelta(t, 24, p.DiameterY, eps)
	require.InDelta(t, 24, p.Diameter, eps)
	require.InDelta(t, 18, p.X, eps)
	require.InDelta(t, 18, p.Y, eps)
	require.True(t, p.FullX)
	require.True(t, p.FullY)
	require.False(t, p.Mismatch)
}

func TestResolveHole_LeftRightFront(t *testing.T) {
	p, err := ResolveHole(36, 36, EdgeDistances{EdgeLeft: 6, EdgeRight: 8, EdgeFront: 5})
	require.NoError(t, err)
	require.InDelta(t, 22, p.DiameterX, eps)
	require.InDelta(t, 22, p.Diameter, eps)
	require.InDelta(t, 17, p.X, eps)
	require.InDelta(t, 20, p.Y, eps)
	require.Zero(t, p.DiameterY)
	require.False(t, p.Mismatch)
}

func TestResolveHole_LeftRightBack(t *testing.T) {
	p, err := ResolveHole(40, 30, EdgeDistances{EdgeLeft: 10, EdgeRight: 10, EdgeBack: 4})
	require.NoError(t, err)
	require.InDelta(t, 20, p.Diameter, eps)
	require.InDelta(t, 20, p.X, eps)
	require.InDelta(t, 14, p.Y, eps)
}

func TestResolveHole_FrontBackWithOneXSide(t *testing.T) {
	tests := []struct {
		name      string
		distances EdgeDistances
		wantX     float64
		wantDX    float64
	}{
		{"left only", EdgeDistances{EdgeLeft: 6, EdgeFront: 8, EdgeBack: 8}, 6 + 15.0/2, 15},
		{"right only", EdgeDistances{EdgeRight: 6, EdgeFront: 8, EdgeBack: 8}, 36 - 6 - 15.0/2, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ResolveHole(36, 36, tt.distances)
			require.NoError(t, err)
			require.InDelta(t, tt.wantDX, p.DiameterX, eps)
			require.InDelta(t, tt.wantX, p.X, eps)
			// полностью определённая ось Y задаёт диаметр
			require.InDelta(t, 20, p.Diameter, eps)
			require.InDelta(t, 18, p.Y, eps)
			require.False(t, p.Mismatch)
		})
	}
}

func TestResolveHole_Mismatch(t *testing.T) {
	p, err := ResolveHole(36, 36, EdgeDistances{EdgeLeft: 6, EdgeRight: 6, EdgeFront: 6, EdgeBack: 6.5})
	require.NoError(t, err)
	require.InDelta(t, 24, p.DiameterX, eps)
	require.InDelta(t, 23.5, p.DiameterY, eps)
	require.InDelta(t, 23.75, p.Diameter, eps)
	require.True(t, p.Mismatch)
}

func TestResolveHole_WithinTolerance(t *testing.T) {
	p, err := ResolveHole(36, 36, EdgeDistances{EdgeLeft: 6, EdgeRight: 6, EdgeFront: 6, EdgeBack: 6.05})
	require.NoError(t, err)
	require.InDelta(t, 23.975, p.Diameter, eps)
	require.False(t, p.Mismatch)
}

func TestResolveHole_Insufficient(t *testing.T) {
	tests := []struct {
		name      string
		distances EdgeDistances
	}{
		{"empty", EdgeDistances{}},
		{"nil", nil},
		{"two sides", EdgeDistances{EdgeLeft: 6, EdgeRight: 6}},
		{"zeros do not count", EdgeDistances{EdgeLeft: 6, EdgeRight: 6, EdgeFront: 0, EdgeBack: 0}},
		{"negative does not count", EdgeDistances{EdgeLeft: 6, EdgeRight: 6, EdgeFront: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveHole(36, 36, tt.distances)
			require.ErrorIs(t, err, ErrInsufficientMeasurements)
		})
	}
}

func TestResolveHole_XRoundTrip(t *testing.T) {
	cases := []struct{ width, left, right float64 }{
		{36, 6, 6},
		{48.5, 3.25, 17.75},
		{20, 0.5, 19},
		{100, 42, 1.1},
	}

	for _, c := range cases {
		p, err := ResolveHole(c.width, 50, EdgeDistances{EdgeLeft: c.left, EdgeRight: c.right, EdgeFront: 10})
		require.NoError(t, err)
		require.InDelta(t, c.width-c.left-c.right, p.DiameterX, eps)
		require.InDelta(t, c.left+p.DiameterX/2, p.X, eps)
		require.InDelta(t, c.left, p.X-p.DiameterX/2, eps)
		require.InDelta(t, c.right, c.width-p.X-p.DiameterX/2, eps)
	}
}

func TestResolveHole_YRoundTrip(t *testing.T) {
	cases := []struct{ length, front, back float64 }{
		{36, 6, 6},
		{30.25, 2, 11.5},
		{72, 33, 0.75},
	}

	for _, c := range cases {
		p, err := ResolveHole(50, c.length, EdgeDistances{EdgeLeft: 10, EdgeFront: c.front, EdgeBack: c.back})
		require.NoError(t, err)
		require.InDelta(t, c.length-c.front-c.back, p.DiameterY, eps)
		require.InDelta(t, c.back+p.DiameterY/2, p.Y, eps)
		require.InDelta(t, c.back, p.Y-p.DiameterY/2, eps)
		require.InDelta(t, c.front, c.length-p.Y-p.DiameterY/2, eps)
	}
}

func TestResolveHole_ConsistentFourSides(t *testing.T) {
	// отверстие D в произвольной точке панели
	width, length := 40.0, 32.0
	for _, d := range []float64{6, 8.5, 12, 17.25} {
		cx, cy := 15.0, 14.0
		dist := EdgeDistances{
			EdgeLeft:  cx - d/2,
			EdgeRight: width - cx - d/2,
			EdgeBack:  cy - d/2,
			EdgeFront: length - cy - d/2,
		}
		p, err := ResolveHole(width, length, dist)
		require.NoError(t, err)
		require.InDelta(t, d, p.Diameter, 1e-6)
		require.InDelta(t, cx, p.X, 1e-6)
		require.InDelta(t, cy, p.Y, 1e-6)
		require.False(t, p.Mismatch)
	}
}

func TestResolveHole_IsPure(t *testing.T) {
	dist := EdgeDistances{EdgeLeft: 6, EdgeRight: 6, EdgeFront: 6, EdgeBack: 0}
	a, err := ResolveHole(36, 36, dist)
	require.NoError(t, err)
	b, err := ResolveHole(36, 36, dist)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, dist, 4)
	require.False(t, math.IsNaN(a.Y))
}
