package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	handlermocks "shortlinks/internal/handler/mocks"
)

func TestMountPprof_BesideRedirectRoute(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		header     string
		path       string
		wantStatus int
	}{
		{"open without secret", "", "", "/debug/pprof/heap", http.StatusOK},
		{"index", "", "", "/debug/pprof/", http.StatusOK},
		{"cmdline", "", "", "/debug/pprof/cmdline", http.StatusOK},
		{"matching secret", "s3cret", "s3cret", "/debug/pprof/goroutine", http.StatusOK},
		{"missing secret", "s3cret", "", "/debug/pprof/heap", http.StatusUnauthorized},
		{"secret prefix only", "s3cret", "s3cre", "/debug/pprof/heap", http.StatusUnauthorized},
		{"unknown profile", "", "", "/debug/pprof/nosuch", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No resolve expectations: a profiling path must never reach the
			// redirect handler.
			links := handlermocks.NewMockLinkService(t)
			e := newApp(t, links, nil, tt.secret)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("X-Pprof-Secret", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestMountPprof_SymbolAcceptsPost(t *testing.T) {
	e := newApp(t, handlermocks.NewMockLinkService(t), nil, "")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/debug/pprof/symbol", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
