package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/infrastructure/config"
	sharedConfig "ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Backend:    sharedConfig.BackendConfig{Mode: sharedConfig.BackendModeLocal},
		LocalStore: sharedConfig.LocalStoreConfig{IDStrategy: "monotonic"},
		Session:    sharedConfig.SessionConfig{CurrentUserID: "user-001", Header: "X-Ticketdesk-User"},
		Flash:      sharedConfig.FlashConfig{Backend: "memory", TTLSeconds: 60, CookieName: "ticketdesk_flash"},
		Metrics:    sharedConfig.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	r, err := NewRouter(context.Background(), testConfig(), logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(r.Shutdown)
	r.SetupRoutes()
	return r
}

func do(r *Router, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.GetEngine().ServeHTTP(w, req)
	return w
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestRouter_SystemRoutes(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(r, httptest.NewRequest(http.MethodGet, "/no/such/page", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = do(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ticketdesk_http_requests_total")
}

func TestRouter_Pages(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = do(r, httptest.NewRequest(http.MethodGet, "/tickets?sort=id&dir=asc", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Less(t, strings.Index(body, "TKT-001"), strings.Index(body, "TKT-002"))

	w = do(r, httptest.NewRequest(http.MethodGet, "/tickets/TKT-003", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "API rate limiting not working")

	w = do(r, httptest.NewRequest(http.MethodGet, "/tickets/TKT-999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_CreateThenDeleteWithFlash(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, postForm("/tickets", url.Values{
		"title":       {"Printer jam"},
		"description": {"Paper stuck in tray 2"},
		"status":      {"open"},
		"priority":    {"high"},
		"tag_input":   {"hardware"},
		"action":      {"submit"},
	}))
	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
	assert.Equal(t, "/tickets/TKT-011", w.Header().Get("Location"))

	w = do(r, httptest.NewRequest(http.MethodGet, "/tickets/TKT-011", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Printer jam")
	assert.Contains(t, w.Body.String(), "hardware")

	w = do(r, postForm("/tickets/TKT-011/delete", url.Values{}))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/tickets", w.Header().Get("Location"))

	var flash *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "ticketdesk_flash" {
			flash = ck
		}
	}
	require.NotNil(t, flash)

	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	req.AddCookie(flash)
	w = do(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ticket deleted")
	assert.NotContains(t, w.Body.String(), "Printer jam")

	w = do(r, httptest.NewRequest(http.MethodGet, "/tickets/TKT-011", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
