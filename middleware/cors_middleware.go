package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"
)

// CORSMiddleware allows the kiosk page to be embedded by and polled from
// the configured origins.
func CORSMiddleware(appOrigins string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(appOrigins, ",")
	corsConfig.AllowWildcard = true
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodHead}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, []string{
		"Accept",
		"X-Requested-With",
		"X-Request-ID",
	}...)

	return cors.New(corsConfig)
}
