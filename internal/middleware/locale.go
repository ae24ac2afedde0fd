package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/soaringjerry/myndwell/internal/utils"
)

type ctxKey int

const localeKey ctxKey = 1

// Locale resolves ?lang= or Accept-Language to a supported locale and puts
// it on the request context.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := utils.DetermineLocale(c.Query("lang"), c.GetHeader("Accept-Language"), utils.SupportedLocales, utils.DefaultLocale)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), localeKey, locale))
		c.Next()
	}
}

// LocaleFromContext returns the locale set by Locale, or DefaultLocale.
func LocaleFromContext(ctx context.Context) string {
	if v := ctx.Value(localeKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return utils.DefaultLocale
}
