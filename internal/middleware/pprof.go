package middleware

import (
	"crypto/subtle"
	"net/http"
	"net/http/pprof"

	"github.com/labstack/echo/v4"
)

const (
	pprofPrefix     = "/debug/pprof"
	pprofAuthHeader = "X-Pprof-Secret"
)

var namedProfiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"}

// PprofAuth rejects requests whose X-Pprof-Secret header does not match secret.
// An empty secret disables the check.
func PprofAuth(secret string) echo.MiddlewareFunc {
	if secret == "" {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	want := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := []byte(c.Request().Header.Get(pprofAuthHeader))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, "profiling secret required")
			}
			return next(c)
		}
	}
}

// MountPprof serves net/http/pprof under /debug/pprof. The paths have more than
// one segment, so they never collide with the /:code redirect route.
func MountPprof(e *echo.Echo, secret string) {
	routes := map[string]http.Handler{
		"/":        http.HandlerFunc(pprof.Index),
		"/cmdline": http.HandlerFunc(pprof.Cmdline),
		"/profile": http.HandlerFunc(pprof.Profile),
		"/trace":   http.HandlerFunc(pprof.Trace),
	}
	for _, name := range namedProfiles {
		routes["/"+name] = pprof.Handler(name)
	}

	g := e.Group(pprofPrefix, PprofAuth(secret))
	for path, h := range routes {
		g.GET(path, echo.WrapHandler(h))
	}
	g.Match([]string{http.MethodGet, http.MethodPost}, "/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
}
