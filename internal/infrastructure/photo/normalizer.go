package photo

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"chase-cover/internal/domain/entity"
	"chase-cover/internal/domain/port"
)

// Normalizer поворачивает фото по EXIF, уменьшает до MaxSide и
// перекодирует в JPEG, чтобы письмо в цех не упиралось в лимит почты.
type Normalizer struct {
	MaxSide int
	Quality int
}

// NewNormalizer создаёт нормализатор с ограничением стороны maxSide.
func NewNormalizer(maxSide int) *Normalizer {
	if maxSide <= 0 {
		maxSide = 2048
	}
	return &Normalizer{MaxSide: maxSide, Quality: 85}
}

// Normalize возвращает JPEG версию фото. При ошибке декодирования
// возвращает исходное фото и ошибку.
func (n *Normalizer) Normalize(ctx context.Context, photo entity.Photo) (entity.Photo, error) {
	if err := ctx.Err(); err != nil {
		return photo, err
	}

	img, err := imaging.Decode(bytes.NewReader(photo.Data), imaging.AutoOrientation(true))
	if err != nil {
		return photo, fmt.Errorf("decode %s: %w", photo.Name, err)
	}

	b := img.Bounds()
	if b.Dx() > n.MaxSide || b.Dy() > n.MaxSide {
		img = imaging.Fit(img, n.MaxSide, n.MaxSide, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(n.Quality)); err != nil {
		return photo, fmt.Errorf("encode %s: %w", photo.Name, err)
	}

	return entity.Photo{
		Name:        jpegName(photo.Name),
		ContentType: "image/jpeg",
		Data:        buf.Bytes(),
	}, nil
}

func jpegName(name string) string {
	if name == "" {
		name = "photo"
	}
	ext := filepath.Ext(name)
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return name
	}
	return strings.TrimSuffix(name, ext) + ".jpg"
}

var _ port.PhotoNormalizer = (*Normalizer)(nil)
