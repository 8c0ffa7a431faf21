package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"shortlinks/internal/domain"
	"shortlinks/internal/messages"
	"shortlinks/internal/registry"
	"shortlinks/internal/validation"
)

var (
	errInvalidBody       = map[string]string{"error": "invalid request body"}
	errURLRequired       = map[string]string{"error": "url is required"}
	errURLsRequired      = map[string]string{"error": "urls is required"}
	errCodeRequired      = map[string]string{"error": "code is required"}
	errLinkNotFound      = map[string]string{"error": "link not found"}
	errCreateFailed      = map[string]string{"error": "failed to create short url"}
	errCreateBatchFailed = map[string]string{"error": "failed to create short urls"}
	errGetFailed         = map[string]string{"error": "failed to get link"}
	errInvalidURL        = map[string]string{"error": "invalid url format"}
	errUnsafeURL         = map[string]string{"error": "url protocol not allowed"}
	errURLTooLong        = map[string]string{"error": "url exceeds maximum length"}
	errPrivateIP         = map[string]string{"error": "private ip addresses not allowed"}
	errBatchTooLarge     = map[string]string{"error": "batch size exceeds maximum"}
	respHealthOK         = map[string]string{"status": "ok"}
)

type Handler struct {
	links    LinkService
	messages *messages.Catalog
	baseURL  string
	logger   *slog.Logger
	recorder BusinessRecorder
}

func New(
	links LinkService,
	catalog *messages.Catalog,
	baseURL string,
	logger *slog.Logger,
	recorder BusinessRecorder,
) *Handler {
	return &Handler{
		links:    links,
		messages: catalog,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
		recorder: recorder,
	}
}

// Register mounts every route. The catch-all /:code route is matched last by
// echo's router, so static paths always win.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.POST("/slack/events", h.SlashCommand)

	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	api.POST("/urls", h.CreateURL)
	api.POST("/urls/batch", h.CreateURLBatch)
	api.GET("/urls/:code", h.LinkStats)

	e.GET("/:code", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) CreateURL(c echo.Context) error {
	var req domain.CreateURLRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	code, err := h.links.GetOrCreateShortCode(c.Request().Context(), req.URL)
	if err != nil {
		if errors.Is(err, registry.ErrInvalidURL) {
			return h.handleValidationError(c, err)
		}
		h.logger.Error("failed to create short url", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errCreateFailed)
	}

	return c.JSON(http.StatusCreated, h.createResponse(code, req.URL))
}

func (h *Handler) CreateURLBatch(c echo.Context) error {
	var req domain.CreateURLBatchRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	codes, err := h.links.GetOrCreateShortCodes(c.Request().Context(), req.URLs)
	if err != nil {
		if errors.Is(err, registry.ErrInvalidURL) {
			return h.handleValidationError(c, err)
		}
		h.logger.Error("failed to create short urls", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errCreateBatchFailed)
	}

	responses := make([]domain.CreateURLResponse, len(codes))
	for i, code := range codes {
		responses[i] = h.createResponse(code, req.URLs[i])
	}
	return c.JSON(http.StatusCreated, domain.CreateURLBatchResponse{URLs: responses})
}

func (h *Handler) Redirect(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, errCodeRequired)
	}

	targetURL, err := h.links.ResolveAndRecordHit(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errLinkNotFound)
		}
		h.logger.Error("failed to resolve short code",
			slog.String("code", code),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errGetFailed)
	}

	return c.Redirect(http.StatusFound, targetURL)
}

func (h *Handler) LinkStats(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, errCodeRequired)
	}

	link, err := h.links.Lookup(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errLinkNotFound)
		}
		h.logger.Error("failed to look up short code",
			slog.String("code", code),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errGetFailed)
	}

	return c.JSON(http.StatusOK, domain.LinkStatsResponse{
		ShortCode:   link.Code,
		ShortURL:    h.shortURL(link.Code),
		OriginalURL: link.URL,
		CreatedAt:   link.CreatedAt,
		Clicks:      link.Clicks,
	})
}

func (h *Handler) shortURL(code string) string {
	return h.baseURL + "/" + code
}

func (h *Handler) createResponse(code, originalURL string) domain.CreateURLResponse {
	return domain.CreateURLResponse{
		ShortCode:   code,
		ShortURL:    h.shortURL(code),
		OriginalURL: originalURL,
	}
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var batchErr *validation.BatchValidationError
	if errors.As(err, &batchErr) {
		return c.JSON(http.StatusBadRequest, h.formatBatchErrors(batchErr))
	}

	switch {
	case errors.Is(err, validation.ErrEmptyURL):
		return c.JSON(http.StatusBadRequest, errURLRequired)
	case errors.Is(err, validation.ErrInvalidURLFormat):
		return c.JSON(http.StatusBadRequest, errInvalidURL)
	case errors.Is(err, validation.ErrUnsafeProtocol):
		return c.JSON(http.StatusBadRequest, errUnsafeURL)
	case errors.Is(err, validation.ErrURLTooLong):
		return c.JSON(http.StatusBadRequest, errURLTooLong)
	case errors.Is(err, validation.ErrPrivateIPNotAllowed):
		return c.JSON(http.StatusBadRequest, errPrivateIP)
	case errors.Is(err, validation.ErrBatchTooLarge):
		return c.JSON(http.StatusBadRequest, errBatchTooLarge)
	case errors.Is(err, validation.ErrEmptyBatch):
		return c.JSON(http.StatusBadRequest, errURLsRequired)
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
	}
}

func (h *Handler) formatBatchErrors(err *validation.BatchValidationError) map[string]any {
	errs := make([]map[string]any, len(err.Errors))
	for i, e := range err.Errors {
		errs[i] = map[string]any{
			"index": e.Index,
			"error": e.Err.Error(),
		}
	}
	return map[string]any{"errors": errs}
}
