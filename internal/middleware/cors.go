package middleware

import (
	"time"

	"marketing_cms/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// defaultAllowedOrigins are always accepted in production mode, in addition
// to the configured CLIENT_URL.
var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
}

// CORSMiddleware builds the origin policy. Non-production mode accepts any
// origin; production mode checks against the allow-list.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "Accept"},
		ExposeHeaders:    []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if cfg.IsProduction() {
		allowed := defaultAllowedOrigins
		if cfg.ClientURL != "" {
			allowed = append(allowed, cfg.ClientURL)
		}
		corsCfg.AllowOrigins = allowed
	} else {
		corsCfg.AllowOriginFunc = func(origin string) bool { return true }
	}

	return cors.New(corsCfg)
}
