package sketch

import (
	"context"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"chase-cover/internal/domain/entity"
)

func TestSVGRenderer_Render(t *testing.T) {
	d := testDrawing()
	d.Holes = append(d.Holes, entity.Hole{Index: 2, X: 8, Y: 8, Diameter: 4})

	data, err := NewSVGRenderer().Render(context.Background(), d)
	require.NoError(t, err)

	doc := string(data)
	require.Equal(t, 2, strings.Count(doc, "<circle"))
	// основа, фон, заливка, фланец и две кромки kickout
	require.Equal(t, 6, strings.Count(doc, "<rect"))
	require.Contains(t, doc, "Chase Cover - Smith")
	require.Contains(t, doc, "Width = 36.0")
	require.Contains(t, doc, "H2: D=4.0")

	// документ должен быть корректным XML
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err != nil {
			require.Equal(t, "EOF", err.Error())
			break
		}
	}
}

func TestSVGRenderer_Trim(t *testing.T) {
	d := testDrawing()
	d.Panel.Kickout = false

	data, err := NewSVGRenderer().Render(context.Background(), d)
	require.NoError(t, err)
	require.Equal(t, 5, strings.Count(string(data), "<rect"))
}

func TestSVGRenderer_UnnamedProject(t *testing.T) {
	d := testDrawing()
	d.Title = ""

	data, err := NewSVGRenderer().Render(context.Background(), d)
	require.NoError(t, err)
	require.Contains(t, string(data), "Chase Cover - Unnamed Project")
}

func TestSVGRenderer_ZeroPanel(t *testing.T) {
	d := entity.Drawing{
		Panel: entity.Panel{Width: 0, Length: 0},
		Holes: []entity.Hole{{Index: 1, Diameter: -6}},
	}

	data, err := NewSVGRenderer().Render(context.Background(), d)
	require.NoError(t, err)
	require.Zero(t, strings.Count(string(data), "<circle"))
	require.Contains(t, string(data), "H1: D=-6.0")
}
