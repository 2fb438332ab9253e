package web

import (
	"errors"
	"fmt"
	"net/http"

	"chase-cover/internal/domain/entity"
)

type photoLink struct {
	Name string
	URL  string
}

type packagePage struct {
	Pkg     *entity.Package
	Title   string
	Base    string
	Preview bool
	Photos  []photoLink
	Error   string
}

type errorPage struct {
	Message string
}

// SubmitHandler принимает форму со страницы и ведёт на страницу пакета.
func (h *Handler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	pkg, status, err := h.prepare(r)
	if err != nil {
		renderPage(w, "error.html", errorPage{Message: err.Error()}, status)
		return
	}
	http.Redirect(w, r, "/packages/"+pkg.ID, http.StatusSeeOther)
}

// PackagePageHandler страница результата: эскиз, файлы, отправка в цех.
func (h *Handler) PackagePageHandler(w http.ResponseWriter, r *http.Request) {
	pkg, ok := h.lookupPage(w, r)
	if !ok {
		return
	}
	renderPage(w, "package.html", newPackagePage(pkg), http.StatusOK)
}

// SendPageHandler отправляет пакет со страницы. При ошибке страница
// показывается снова, файлы остаются доступны для скачивания.
func (h *Handler) SendPageHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.c.DispatchService.Send(r.Context(), id); err != nil {
		msg, status := sendFailure(id, err)
		pkg, ok := h.lookupPage(w, r)
		if !ok {
			return
		}
		page := newPackagePage(pkg)
		page.Error = msg
		renderPage(w, "package.html", page, status)
		return
	}
	http.Redirect(w, r, "/packages/"+id, http.StatusSeeOther)
}

func (h *Handler) lookupPage(w http.ResponseWriter, r *http.Request) (*entity.Package, bool) {
	pkg, err := h.c.Packages.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		status := http.StatusInternalServerError
		msg := err.Error()
		if errors.Is(err, entity.ErrPackageNotFound) {
			status, msg = http.StatusNotFound, "Package not found"
		}
		renderPage(w, "error.html", errorPage{Message: msg}, status)
		return nil, false
	}
	return pkg, true
}

func newPackagePage(pkg *entity.Package) packagePage {
	base := "/api/packages/" + pkg.ID
	page := packagePage{
		Pkg:     pkg,
		Title:   pkg.Order.DisplayName(),
		Base:    base,
		Preview: len(pkg.SketchSVG) > 0,
	}
	for i, ph := range pkg.Photos {
		page.Photos = append(page.Photos, photoLink{
			Name: ph.Name,
			URL:  fmt.Sprintf("%s/photos/%d", base, i+1),
		})
	}
	return page
}
