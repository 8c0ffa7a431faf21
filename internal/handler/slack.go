package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/slack-go/slack"

	"shortlinks/internal/registry"
)

const responseTypeEphemeral = "ephemeral"

var urlInText = regexp.MustCompile(`https?://\S+`)

// ExtractURL returns the first http(s) token of a command's text.
func ExtractURL(text string) (string, bool) {
	found := urlInText.FindString(text)
	return found, found != ""
}

// SlashCommand answers the /short command. Every outcome is a 200 with an
// ephemeral message so the chat client shows the text to the caller only.
func (h *Handler) SlashCommand(c echo.Context) error {
	cmd, err := slack.SlashCommandParse(c.Request())
	if err != nil {
		h.logger.Warn("failed to parse slash command", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	text := strings.TrimSpace(cmd.Text)
	if strings.EqualFold(text, "help") {
		h.recordCommand("help")
		return h.reply(c, h.messages.Help())
	}

	targetURL, ok := ExtractURL(text)
	if !ok {
		h.recordCommand("no_url")
		return h.reply(c, h.messages.NoURL())
	}

	code, err := h.links.GetOrCreateShortCode(c.Request().Context(), targetURL)
	switch {
	case err == nil:
	case errors.Is(err, registry.ErrInvalidURL):
		h.recordCommand("invalid_url")
		return h.reply(c, h.messages.InvalidURL())
	default:
		h.logger.Error("slash command failed",
			slog.String("command", cmd.Command),
			slog.String("user_id", cmd.UserID),
			slog.String("error", err.Error()))
		h.recordCommand("error")
		return h.reply(c, h.messages.General())
	}

	h.logger.Info("short link issued",
		slog.String("code", code),
		slog.String("user_id", cmd.UserID),
		slog.String("team_id", cmd.TeamID))
	h.recordCommand("ok")
	return h.reply(c, h.messages.Success(targetURL, h.shortURL(code)))
}

func (h *Handler) reply(c echo.Context, text string) error {
	return c.JSON(http.StatusOK, slack.Msg{
		ResponseType: responseTypeEphemeral,
		Text:         text,
	})
}

func (h *Handler) recordCommand(outcome string) {
	h.recorder.RecordBusiness("slash_commands", 1, map[string]string{"outcome": outcome})
}
