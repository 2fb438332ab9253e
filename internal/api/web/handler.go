package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	app "chase-cover/internal/application"
	"chase-cover/internal/container"
	"chase-cover/internal/domain/entity"
)

// maxUploadSize ограничение на форму вместе с фото.
const maxUploadSize = 64 << 20

type Handler struct {
	c *container.Container
}

func NewHandler(c *container.Container) *Handler {
	return &Handler{c: c}
}

// Routes регистрирует маршруты и оборачивает их в middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.IndexHandler)
	mux.HandleFunc("GET /health", h.HealthHandler)
	mux.HandleFunc("POST /sketches", h.SubmitHandler)
	mux.HandleFunc("GET /packages/{id}", h.PackagePageHandler)
	mux.HandleFunc("POST /packages/{id}/send", h.SendPageHandler)
	mux.HandleFunc("POST /api/sketches", h.CreateSketchHandler)
	mux.HandleFunc("GET /api/packages/{id}/sketch.jpg", h.SketchHandler)
	mux.HandleFunc("GET /api/packages/{id}/sketch.svg", h.PreviewHandler)
	mux.HandleFunc("GET /api/packages/{id}/outline.dxf", h.OutlineHandler)
	mux.HandleFunc("GET /api/packages/{id}/photos/{n}", h.PhotoHandler)
	mux.HandleFunc("POST /api/packages/{id}/send", h.SendHandler)
	mux.HandleFunc("GET /api/packages/{id}/snapshot.json", h.SnapshotHandler)
	return logRequests(corsMiddleware(mux))
}

type holeResponse struct {
	Index            int     `json:"index"`
	Diameter         float64 `json:"diameter"`
	Circumference    float64 `json:"circumference"`
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
	CollarHeight     float64 `json:"collar_height"`
	MeasuredDiameter float64 `json:"measured_diameter,omitempty"`
	Mismatch         bool    `json:"mismatch"`
}

type sketchResponse struct {
	ID       string            `json:"id"`
	Holes    []holeResponse    `json:"holes"`
	Warnings []string          `json:"warnings"`
	Links    map[string]string `json:"links"`
}

// CreateSketchHandler обрабатывает POST /api/sketches
func (h *Handler) CreateSketchHandler(w http.ResponseWriter, r *http.Request) {
	pkg, status, err := h.prepare(r)
	if err != nil {
		respondError(w, err.Error(), status)
		return
	}

	resp := sketchResponse{
		ID:       pkg.ID,
		Holes:    make([]holeResponse, 0, len(pkg.Holes)),
		Warnings: append([]string{}, pkg.Warnings...),
		Links:    packageLinks(pkg),
	}
	for _, hole := range pkg.Holes {
		resp.Holes = append(resp.Holes, holeResponse{
			Index:            hole.Index,
			Diameter:         hole.Diameter,
			Circumference:    hole.Circumference(),
			X:                hole.X,
			Y:                hole.Y,
			CollarHeight:     hole.CollarHeight,
			MeasuredDiameter: hole.MeasuredDiameter,
			Mismatch:         hole.Mismatch,
		})
	}
	respondJSON(w, resp, http.StatusCreated)
}

// prepare разбирает форму и собирает пакет. Статус ошибки готов для ответа.
func (h *Handler) prepare(r *http.Request) (*entity.Package, int, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, http.StatusBadRequest, errors.New("Failed to parse form")
	}

	order, err := parseOrderForm(r)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	pkg, err := h.c.MeasurementService.Prepare(r.Context(), order)
	if err != nil {
		return nil, prepareStatus(err), err
	}
	return pkg, http.StatusCreated, nil
}

func packageLinks(pkg *entity.Package) map[string]string {
	base := "/api/packages/" + pkg.ID
	links := map[string]string{
		"sketch":   base + "/sketch.jpg",
		"outline":  base + "/outline.dxf",
		"send":     base + "/send",
		"snapshot": base + "/snapshot.json",
	}
	if len(pkg.SketchSVG) > 0 {
		links["preview"] = base + "/sketch.svg"
	}
	for i := range pkg.Photos {
		links[fmt.Sprintf("photo_%d", i+1)] = fmt.Sprintf("%s/photos/%d", base, i+1)
	}
	return links
}

func prepareStatus(err error) int {
	switch {
	case errors.Is(err, entity.ErrInsufficientMeasurements):
		return http.StatusUnprocessableEntity
	case errors.Is(err, entity.ErrInvalidPanel),
		errors.Is(err, entity.ErrInvalidMeasurement),
		errors.Is(err, entity.ErrNoHoles),
		errors.Is(err, entity.ErrTooManyHoles):
		return http.StatusBadRequest
	}
	log.Printf("Prepare package: %v", err)
	return http.StatusInternalServerError
}

// SketchHandler отдаёт JPEG эскиз
func (h *Handler) SketchHandler(w http.ResponseWriter, r *http.Request) {
	pkg, ok := h.lookup(w, r)
	if !ok {
		return
	}
	respondFile(w, pkg.SketchName(), "image/jpeg", pkg.Sketch, false)
}

// PreviewHandler отдаёт SVG превью
func (h *Handler) PreviewHandler(w http.ResponseWriter, r *http.Request) {
	pkg, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if len(pkg.SketchSVG) == 0 {
		respondError(w, "Preview is not available", http.StatusNotFound)
		return
	}
	respondFile(w, pkg.SketchSVGName(), "image/svg+xml", pkg.SketchSVG, false)
}

// OutlineHandler отдаёт DXF контур
func (h *Handler) OutlineHandler(w http.ResponseWriter, r *http.Request) {
	pkg, ok := h.lookup(w, r)
	if !ok {
		return
	}
	respondFile(w, pkg.OutlineName(), "application/dxf", pkg.Outline, true)
}

// PhotoHandler отдаёт фото по номеру (с единицы)
func (h *Handler) PhotoHandler(w http.ResponseWriter, r *http.Request) {
	pkg, ok := h.lookup(w, r)
	if !ok {
		return
	}
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil || n < 1 || n > len(pkg.Photos) {
		respondError(w, "Photo not found", http.StatusNotFound)
		return
	}
	ph := pkg.Photos[n-1]
	contentType := ph.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(ph.Data)
	}
	respondFile(w, ph.Name, contentType, ph.Data, false)
}

// SendHandler отправляет пакет в цех
func (h *Handler) SendHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.c.DispatchService.Send(r.Context(), r.PathValue("id"))
	if err != nil {
		msg, status := sendFailure(r.PathValue("id"), err)
		respondError(w, msg, status)
		return
	}
	respondJSON(w, snapshot, http.StatusOK)
}

func sendFailure(id string, err error) (string, int) {
	switch {
	case errors.Is(err, entity.ErrPackageNotFound):
		return "Package not found", http.StatusNotFound
	case errors.Is(err, entity.ErrMailNotConfigured):
		return "Email is not configured; download the files instead", http.StatusServiceUnavailable
	}
	log.Printf("Send package %s: %v", id, err)
	return fmt.Sprintf("Failed to send email: %v", err), http.StatusBadGateway
}

// SnapshotHandler отдаёт JSON снимок отправленного пакета
func (h *Handler) SnapshotHandler(w http.ResponseWriter, r *http.Request) {
	data, name, err := h.c.DispatchService.Snapshot(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
		respondFile(w, name, "application/json", data, true)
	case errors.Is(err, entity.ErrPackageNotFound):
		respondError(w, "Package not found", http.StatusNotFound)
	case errors.Is(err, app.ErrSnapshotNotReady):
		respondError(w, err.Error(), http.StatusConflict)
	default:
		respondError(w, err.Error(), http.StatusInternalServerError)
	}
}

// HealthHandler проверка здоровья сервиса
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*entity.Package, bool) {
	pkg, err := h.c.Packages.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, entity.ErrPackageNotFound) {
			respondError(w, "Package not found", http.StatusNotFound)
		} else {
			respondError(w, err.Error(), http.StatusInternalServerError)
		}
		return nil, false
	}
	return pkg, true
}

func respondJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, map[string]string{"error": message}, status)
}

func respondFile(w http.ResponseWriter, name, contentType string, data []byte, download bool) {
	disposition := "inline"
	if download {
		disposition = "attachment"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// corsMiddleware добавляет CORS заголовки
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// logRequests пишет метод, путь, статус и время ответа
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Millisecond))
	})
}
