package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// Supported locales. Indonesian is the site default, English the fallback.
const (
	LocaleID = "id-ID"
	LocaleEN = "en-US"
)

// DefaultLocale locale used when the request carries no usable hint
const DefaultLocale = LocaleID

// Normalize maps a raw locale hint to a supported locale
func Normalize(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	switch {
	case strings.HasPrefix(l, "id"):
		return LocaleID
	case strings.HasPrefix(l, "en"):
		return LocaleEN
	default:
		return DefaultLocale
	}
}

// ResolveLocale picks the response locale from the request.
// Explicit ?lang= wins over Accept-Language.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return Normalize(lang)
	}
	if header := strings.TrimSpace(c.GetHeader("Accept-Language")); header != "" {
		first := header
		if idx := strings.IndexAny(header, ",;"); idx > 0 {
			first = header[:idx]
		}
		return Normalize(first)
	}
	return DefaultLocale
}

// T translates a key; returns the key itself when no translation exists
func T(locale, key string) string {
	normalized := Normalize(locale)
	if table, ok := messages[normalized]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if normalized != LocaleEN {
		if msg, ok := messages[LocaleEN][key]; ok {
			return msg
		}
	}
	return key
}

// Sprintf translates a key and formats it with args
func Sprintf(locale, key string, args ...interface{}) string {
	template := T(locale, key)
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}
