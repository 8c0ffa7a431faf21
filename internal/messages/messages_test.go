package messages_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"shortlinks/internal/messages"
)

func TestNew_Language(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want string
	}{
		{name: "empty defaults to arabic", lang: "", want: "ar"},
		{name: "arabic", lang: "ar", want: "ar"},
		{name: "english upper case", lang: " EN ", want: "en"},
		{name: "unknown falls back to english", lang: "fr", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messages.New(tt.lang).Lang())
		})
	}
}

func TestCatalog_Success(t *testing.T) {
	c := messages.New("en")

	got := c.Success("https://example.com/a/b?x=1", "http://localhost:3000/aB3xY9")

	assert.True(t, strings.HasPrefix(got, "Shortened URL created successfully!"))
	assert.Contains(t, got, "*Original URL:*\n`https://example.com/a/b?x=1`")
	assert.Contains(t, got, "*Short URL:*\n`http://localhost:3000/aB3xY9`")
	assert.True(t, strings.HasSuffix(got, "_Thanks for using AzmX Shortener!_"))
}

func TestCatalog_Arabic(t *testing.T) {
	c := messages.New("ar")

	assert.Contains(t, c.Success("https://example.com", "https://s.io/abc123"), "الرابط المختصر")
	assert.Equal(t, c.Get(messages.KeyErrInvalid), c.InvalidURL())
	assert.Equal(t, c.Get(messages.KeyErrGeneral), c.General())
}

func TestCatalog_NoURLIncludesHelp(t *testing.T) {
	c := messages.New("en")

	assert.Equal(t, "No URL found in command.\n\n"+c.Help(), c.NoURL())
	assert.Contains(t, c.Help(), "/short https://example.com/very/long/url")
}
