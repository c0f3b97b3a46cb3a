package transport

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"reward-lab/services"
)

// NewRouter builds the ingestion API router.
func NewRouter(log *slog.Logger, svc services.ISessionService, tokenDuration time.Duration) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	NewHandler(log, svc, tokenDuration).RegisterRoutes(router)
	return router
}
