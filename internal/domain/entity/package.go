package entity

import (
	"errors"
	"time"
)

// Drawing входные данные для эскиза и DXF.
type Drawing struct {
	Title string
	Color string
	Panel Panel
	Holes []Hole
}

// Package результат обработки формы: эскиз, контур и фото.
type Package struct {
	ID        string
	CreatedAt time.Time
	Order     Order
	Holes     []Hole
	Warnings  []string
	Sketch    []byte // JPEG
	SketchSVG []byte
	Outline   []byte // DXF
	Photos    []Photo
	SentAt    time.Time
	Snapshot  []byte
}

// Sent отправлен ли пакет в цех.
func (p *Package) Sent() bool {
	return !p.SentAt.IsZero()
}

// SketchName имя файла эскиза.
func (p *Package) SketchName() string {
	return p.Order.FileStem() + "_sketch.jpg"
}

// SketchSVGName имя файла SVG-превью.
func (p *Package) SketchSVGName() string {
	return p.Order.FileStem() + "_sketch.svg"
}

// OutlineName имя DXF файла.
func (p *Package) OutlineName() string {
	return p.Order.FileStem() + ".dxf"
}

// SnapshotName имя JSON снимка.
func (p *Package) SnapshotName() string {
	return p.Order.FileStem() + ".json"
}

// Attachment вложение письма.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Mail письмо в цех.
type Mail struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Snapshot JSON снимок отправленного заказа.
type Snapshot struct {
	ID            string         `json:"id"`
	ProjectName   string         `json:"project_name"`
	Width         float64        `json:"width"`
	Length        float64        `json:"length"`
	FlangeLength  float64        `json:"flange_length"`
	Kickout       bool           `json:"kickout"`
	FitTolerance  float64        `json:"fit_tolerance"`
	Color         string         `json:"color"`
	CustomColor   string         `json:"custom_color,omitempty"`
	SparkArrestor bool           `json:"spark_arrestor"`
	SparkDetails  string         `json:"spark_details,omitempty"`
	Windband      bool           `json:"windband"`
	Notes         string         `json:"notes"`
	Holes         []SnapshotHole `json:"holes"`
	Photos        []string       `json:"photos"`
	Warnings      []string       `json:"warnings,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	SentAt        time.Time      `json:"sent_at"`
}

// SnapshotHole отверстие в снимке.
type SnapshotHole struct {
	Index            int                `json:"index"`
	Diameter         float64            `json:"diameter"`
	Circumference    float64            `json:"circumference"`
	X                float64            `json:"x"`
	Y                float64            `json:"y"`
	CollarHeight     float64            `json:"collar_height"`
	MeasuredDiameter float64            `json:"measured_diameter,omitempty"`
	Distances        map[string]float64 `json:"distances"`
}

// NewSnapshot собирает снимок пакета.
func NewSnapshot(p *Package) *Snapshot {
	o := p.Order
	s := &Snapshot{
		ID:            p.ID,
		ProjectName:   o.ProjectName,
		Width:         o.Panel.Width,
		Length:        o.Panel.Length,
		FlangeLength:  o.Panel.FlangeLength,
		Kickout:       o.Panel.Kickout,
		FitTolerance:  o.FitTolerance,
		Color:         o.Color,
		CustomColor:   o.CustomColor,
		SparkArrestor: o.SparkArrestor,
		SparkDetails:  o.SparkDetails,
		Windband:      o.Windband,
		Notes:         o.Notes,
		Holes:         make([]SnapshotHole, 0, len(p.Holes)),
		Photos:        make([]string, 0, len(p.Photos)),
		Warnings:      p.Warnings,
		CreatedAt:     p.CreatedAt,
		SentAt:        p.SentAt,
	}
	for _, h := range p.Holes {
		dist := make(map[string]float64, len(h.Distances))
		for e, v := range h.Distances {
			dist[string(e)] = v
		}
		s.Holes = append(s.Holes, SnapshotHole{
			Index:            h.Index,
			Diameter:         h.Diameter,
			Circumference:    h.Circumference(),
			X:                h.X,
			Y:                h.Y,
			CollarHeight:     h.CollarHeight,
			MeasuredDiameter: h.MeasuredDiameter,
			Distances:        dist,
		})
	}
	for _, ph := range p.Photos {
		s.Photos = append(s.Photos, ph.Name)
	}
	return s
}

var (
	ErrPackageNotFound   = errors.New("package not found")
	ErrMailNotConfigured = errors.New("mail is not configured")
)
