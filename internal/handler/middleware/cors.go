package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"travel-broker/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always lets browsers send the acting user header,
// since every state-changing route requires it.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	headers := slices.Clone(cfg.AllowHeaders)
	if !slices.ContainsFunc(headers, func(h string) bool {
		return http.CanonicalHeaderKey(h) == http.CanonicalHeaderKey(ActorHeader)
	}) {
		headers = append(headers, ActorHeader)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     headers,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_headers", headers)
	return cors.New(corsCfg)
}
