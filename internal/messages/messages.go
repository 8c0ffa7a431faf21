// Package messages renders the user-facing text of the slash command.
package messages

import "strings"

type Key string

const (
	KeySuccess     Key = "SUCCESS"
	KeyOriginalURL Key = "ORIGINAL_URL"
	KeyShortURL    Key = "SHORT_URL"
	KeyCopyHint    Key = "COPY_HINT"
	KeyErrNoURL    Key = "ERROR_NO_URL"
	KeyErrInvalid  Key = "ERROR_INVALID_URL"
	KeyErrGeneral  Key = "ERROR_GENERAL"
	KeyHelp        Key = "HELP"
	KeyThankYou    Key = "THANK_YOU"
)

const (
	DefaultLanguage = "ar"
	fallbackLang    = "en"
)

var catalog = map[Key]map[string]string{
	KeySuccess: {
		"ar": "✅ تم إنشاء الرابط المختصر بنجاح!",
		"en": "Shortened URL created successfully!",
	},
	KeyOriginalURL: {
		"ar": "🔗 الرابط الأصلي:",
		"en": "Original URL:",
	},
	KeyShortURL: {
		"ar": "📝 الرابط المختصر:",
		"en": "Short URL:",
	},
	KeyCopyHint: {
		"ar": "انقر للنسخ أو اختر واختصر من هنا 👇",
		"en": "Click to copy or select",
	},
	KeyErrNoURL: {
		"ar": "❌ لم أجد رابط في الأمر. تأكد من كتابة الرابط بشكل صحيح.",
		"en": "No URL found in command.",
	},
	KeyErrInvalid: {
		"ar": "❌ للأسف، الرابط غير صحيح. يرجى التحقق والمحاولة مرة أخرى.",
		"en": "Invalid URL format.",
	},
	KeyErrGeneral: {
		"ar": "❌ حدث خطأ. يرجى المحاولة لاحقاً.",
		"en": "An error occurred. Please try again.",
	},
	KeyHelp: {
		"ar": "📌 *طريقة الاستخدام:*\n`/short https://example.com/very/long/url`\n\nسأنشئ رابط مختصر خاص بك!",
		"en": "*Usage:*\n`/short https://example.com/very/long/url`",
	},
	KeyThankYou: {
		"ar": "شكراً لاستخدام AzmX Shortener! 🙏",
		"en": "Thanks for using AzmX Shortener!",
	},
}

// Catalog looks messages up in one language.
type Catalog struct {
	lang string
}

// New returns a catalog for lang. An empty lang selects Arabic and a language
// without translations falls back to English.
func New(lang string) *Catalog {
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch {
	case lang == "":
		lang = DefaultLanguage
	case catalog[KeySuccess][lang] == "":
		lang = fallbackLang
	}
	return &Catalog{lang: lang}
}

func (c *Catalog) Lang() string {
	return c.lang
}

func (c *Catalog) Get(key Key) string {
	texts := catalog[key]
	if text, ok := texts[c.lang]; ok {
		return text
	}
	return texts[fallbackLang]
}

// Success formats the reply for a newly shortened or reused link.
func (c *Catalog) Success(originalURL, shortURL string) string {
	var b strings.Builder
	b.WriteString(c.Get(KeySuccess))
	b.WriteString("\n\n*")
	b.WriteString(c.Get(KeyOriginalURL))
	b.WriteString("*\n`")
	b.WriteString(originalURL)
	b.WriteString("`\n\n*")
	b.WriteString(c.Get(KeyShortURL))
	b.WriteString("*\n`")
	b.WriteString(shortURL)
	b.WriteString("`\n\n_")
	b.WriteString(c.Get(KeyCopyHint))
	b.WriteString("_\n\n---\n_")
	b.WriteString(c.Get(KeyThankYou))
	b.WriteString("_")
	return b.String()
}

// NoURL is sent when the command text holds no http(s) link. It includes usage help.
func (c *Catalog) NoURL() string {
	return c.Get(KeyErrNoURL) + "\n\n" + c.Get(KeyHelp)
}

func (c *Catalog) InvalidURL() string {
	return c.Get(KeyErrInvalid)
}

func (c *Catalog) General() string {
	return c.Get(KeyErrGeneral)
}

func (c *Catalog) Help() string {
	return c.Get(KeyHelp)
}
