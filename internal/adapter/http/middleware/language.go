package middleware

import (
	"github.com/gin-gonic/gin"

	"taskdeck/pkg/translator"
)

// LanguageMiddleware stores the request language so handlers can translate
// error messages. Raw header value, fallback to en.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
