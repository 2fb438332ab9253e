package app

import (
	"context"
	"errors"

	"chase-cover/internal/domain/entity"
)

const eps = 1e-9

type fakeRenderer struct {
	out      []byte
	err      error
	drawings []entity.Drawing
}

func (f *fakeRenderer) Render(ctx context.Context, d entity.Drawing) ([]byte, error) {
	f.drawings = append(f.drawings, d)
	return f.out, f.err
}

type fakeEmitter struct {
	out      []byte
	drawings []entity.Drawing
}

func (f *fakeEmitter) Emit(ctx context.Context, d entity.Drawing) ([]byte, error) {
	f.drawings = append(f.drawings, d)
	return f.out, nil
}

type fakeNormalizer struct{}

func (fakeNormalizer) Normalize(ctx context.Context, ph entity.Photo) (entity.Photo, error) {
	if string(ph.Data) == "broken" {
		return ph, errors.New("unknown format")
	}
	return entity.Photo{Name: ph.Name + ".jpg", ContentType: "image/jpeg", Data: []byte("jpeg:" + string(ph.Data))}, nil
}

type fakeInspector struct {
	issues map[string][]string
}

func (f fakeInspector) Inspect(ctx context.Context, ph entity.Photo) (*entity.PhotoCheck, error) {
	return &entity.PhotoCheck{Name: ph.Name, Issues: f.issues[ph.Name]}, nil
}

type fakeMailer struct {
	err  error
	sent []*entity.Mail
}

func (f *fakeMailer) Send(ctx context.Context, m *entity.Mail) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func squareOrder() *entity.Order {
	return &entity.Order{
		ProjectName: "Smith",
		Panel:       entity.Panel{Width: 36, Length: 36, FlangeLength: 3, Kickout: true},
		Color:       entity.ColorMedBronze,
		Holes: []entity.HoleInput{{
			CollarHeight: 4,
			Distances: entity.EdgeDistances{
				entity.EdgeLeft: 6, entity.EdgeRight: 6, entity.EdgeFront: 6, entity.EdgeBack: 6,
			},
		}},
	}
}
