package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"chase-cover/internal/domain/entity"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"inches": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
}).ParseFS(templatesFS, "templates/*.html"))

type indexPage struct {
	Colors   []string
	Edges    []entity.Edge
	Holes    []int
	Count    int
	More     int
	Fewer    int
	MaxHoles int
}

// IndexHandler отдаёт форму замеров. Число отверстий задаётся ?holes=N.
func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.Atoi(r.URL.Query().Get("holes"))
	if err != nil || count < 1 {
		count = 1
	}
	if count > entity.MaxHoles {
		count = entity.MaxHoles
	}

	page := indexPage{
		Colors:   entity.Colors,
		Edges:    entity.Edges,
		Count:    count,
		More:     min(count+1, entity.MaxHoles),
		Fewer:    max(count-1, 1),
		MaxHoles: entity.MaxHoles,
	}
	for i := 1; i <= count; i++ {
		page.Holes = append(page.Holes, i)
	}

	renderPage(w, "index.html", page, http.StatusOK)
}

func renderPage(w http.ResponseWriter, name string, data any, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Render %s: %v", name, err)
	}
}
