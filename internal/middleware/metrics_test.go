package middleware_test

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shortlinks/internal/domain"
	"shortlinks/internal/handler"
	handlermocks "shortlinks/internal/handler/mocks"
	"shortlinks/internal/messages"
	"shortlinks/internal/metrics"
	"shortlinks/internal/middleware"
	"shortlinks/internal/middleware/mocks"
	"shortlinks/internal/registry"
)

type nopBusiness struct{}

func (nopBusiness) RecordBusiness(string, float64, map[string]string) {}

// newApp wires the middleware chain from main around the real routes.
func newApp(t *testing.T, links handler.LinkService, recorder middleware.HTTPRecorder, pprofSecret string) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Use(middleware.RequestID())
	if recorder != nil {
		e.Use(middleware.Metrics(recorder))
	}
	handler.New(links, messages.New("en"), "http://sho.rt", slog.New(slog.DiscardHandler), nopBusiness{}).Register(e)
	middleware.MountPprof(e, pprofSecret)
	return e
}

// captureOne expects exactly one recorded metric and returns a pointer to it.
func captureOne(rec *mocks.MockHTTPRecorder) *metrics.HTTPMetric {
	var captured metrics.HTTPMetric
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m metrics.HTTPMetric) {
			captured = m
		}).Return().Once()
	return &captured
}

func TestMetrics_RedirectRecordsRouteTemplate(t *testing.T) {
	links := handlermocks.NewMockLinkService(t)
	links.EXPECT().ResolveAndRecordHit(mock.Anything, "aB3xY9").Return("https://example.com/x", nil).Once()

	rec := mocks.NewMockHTTPRecorder(t)
	m := captureOne(rec)

	e := newApp(t, links, rec, "")
	req := httptest.NewRequest(http.MethodGet, "/aB3xY9", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/:code", m.Path)
	assert.NotContains(t, m.Path, "aB3xY9")
	assert.Equal(t, http.MethodGet, m.Method)
	assert.Equal(t, http.StatusFound, m.StatusCode)
	assert.Equal(t, "192.168.1.1", m.ClientIP)
	assert.GreaterOrEqual(t, m.DurationMs, 0.0)
	assert.Empty(t, m.Error)
	assert.Equal(t, resp.Header().Get(echo.HeaderXRequestID), m.RequestID)
	assert.NotEmpty(t, m.RequestID)
}

func TestMetrics_UnknownCode(t *testing.T) {
	links := handlermocks.NewMockLinkService(t)
	links.EXPECT().ResolveAndRecordHit(mock.Anything, "nope42").
		Return("", registry.ErrNotFound).Once()

	rec := mocks.NewMockHTTPRecorder(t)
	m := captureOne(rec)

	resp := httptest.NewRecorder()
	newApp(t, links, rec, "").ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/nope42", nil))

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "/:code", m.Path)
	assert.Equal(t, http.StatusNotFound, m.StatusCode)
}

func TestMetrics_SlashCommandPath(t *testing.T) {
	links := handlermocks.NewMockLinkService(t)
	rec := mocks.NewMockHTTPRecorder(t)
	m := captureOne(rec)

	form := url.Values{"command": {"/short"}, "text": {"help"}}
	req := httptest.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	resp := httptest.NewRecorder()
	newApp(t, links, rec, "").ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "/slack/events", m.Path)
	assert.Equal(t, http.MethodPost, m.Method)
	assert.Equal(t, http.StatusOK, m.StatusCode)
}

func TestMetrics_APIStatsPath(t *testing.T) {
	links := handlermocks.NewMockLinkService(t)
	links.EXPECT().Lookup(mock.Anything, "aB3xY9").
		Return(domain.Link{Code: "aB3xY9", URL: "https://example.com", CreatedAt: time.Now().UTC()}, nil).Once()

	rec := mocks.NewMockHTTPRecorder(t)
	m := captureOne(rec)

	resp := httptest.NewRecorder()
	newApp(t, links, rec, "").ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/urls/aB3xY9", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "/api/v1/urls/:code", m.Path)
}

func TestMetrics_HTTPErrorStatus(t *testing.T) {
	links := handlermocks.NewMockLinkService(t)
	rec := mocks.NewMockHTTPRecorder(t)
	m := captureOne(rec)

	resp := httptest.NewRecorder()
	newApp(t, links, rec, "s3cret").ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/debug/pprof/heap", nil))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "/debug/pprof/heap", m.Path)
	assert.Equal(t, http.StatusUnauthorized, m.StatusCode)
	assert.NotEmpty(t, m.Error)
}

func TestMetrics_PlainError(t *testing.T) {
	rec := mocks.NewMockHTTPRecorder(t)
	m := captureOne(rec)

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.GET("/fail", func(c echo.Context) error {
		return errors.New("store unavailable")
	})
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, "store unavailable", m.Error)
}
