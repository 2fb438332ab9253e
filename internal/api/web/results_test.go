package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"chase-cover/internal/domain/entity"
)

func submitForm(t *testing.T, srv http.Handler, fields map[string]string, photos map[string][]byte) string {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, multipartRequest(t, "/sketches", fields, photos))
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())

	location := rec.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/packages/"), location)
	return location
}

func getPage(t *testing.T, srv http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestIndexHandler_FormTarget(t *testing.T) {
	srv := newTestServer(&stubMailer{})
	body := getPage(t, srv, "/").Body.String()
	require.Contains(t, body, `action="/sketches"`)
	require.NotContains(t, body, `action="/api/sketches"`)
}

func TestSubmitAndSend(t *testing.T) {
	mailer := &stubMailer{}
	srv := newTestServer(mailer)
	page := submitForm(t, srv, squareFields(), map[string][]byte{"roof.jpg": []byte("photo-bytes")})
	id := strings.TrimPrefix(page, "/packages/")
	api := "/api/packages/" + id

	rec := getPage(t, srv, page)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	require.Contains(t, body, `<img src="`+api+`/sketch.svg"`)
	require.Contains(t, body, `href="`+api+`/sketch.jpg"`)
	require.Contains(t, body, `href="`+api+`/outline.dxf"`)
	require.Contains(t, body, `href="`+api+`/photos/1"`)
	require.Contains(t, body, "24.00")
	require.Contains(t, body, `action="/packages/`+id+`/send"`)
	require.NotContains(t, body, "snapshot.json")

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, page+"/send", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	require.Equal(t, page, rec.Header().Get("Location"))
	require.Equal(t, 1, mailer.sent)

	body = getPage(t, srv, page).Body.String()
	require.Contains(t, body, "Sent to the shop.")
	require.Contains(t, body, `href="`+api+`/snapshot.json"`)
	require.NotContains(t, body, `/send"`)

	rec = getPage(t, srv, api+"/snapshot.json")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmit_Warnings(t *testing.T) {
	srv := newTestServer(&stubMailer{})
	fields := squareFields()
	fields["hole_1_diameter"] = "30"

	body := getPage(t, srv, submitForm(t, srv, fields, nil)).Body.String()
	require.Contains(t, body, `class="warning"`)
}

func TestSubmit_Errors(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		code  int
	}{
		{"invalid width", "width", "wide", http.StatusBadRequest},
		{"insufficient", "hole_1_right", "", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(&stubMailer{})
			fields := squareFields()
			fields[tt.field] = tt.value
			if tt.field == "hole_1_right" {
				fields["hole_1_back"] = ""
			}

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, multipartRequest(t, "/sketches", fields, nil))
			require.Equal(t, tt.code, rec.Code)
			require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			require.Contains(t, rec.Body.String(), "Request failed")
		})
	}
}

func TestSendPage_MailNotConfigured(t *testing.T) {
	srv := newTestServer(&stubMailer{err: entity.ErrMailNotConfigured})
	page := submitForm(t, srv, squareFields(), nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, page+"/send", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Email is not configured; download the files instead")
	require.Contains(t, body, "/outline.dxf")
	require.Contains(t, body, "Send to shop")
}

func TestPackagePage_NotFound(t *testing.T) {
	srv := newTestServer(&stubMailer{})
	rec := getPage(t, srv, "/packages/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Package not found")
}
