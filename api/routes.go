package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-backup/api/episodes"
	"github.com/killallgit/podcast-backup/api/health"
	"github.com/killallgit/podcast-backup/api/runs"
	"github.com/killallgit/podcast-backup/api/types"
	"github.com/killallgit/podcast-backup/api/version"
	"github.com/killallgit/podcast-backup/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	v1 := engine.Group("/api/v1")
	if config.GetBool("rate_limiting.enabled") {
		rps := config.GetInt("rate_limiting.requests_per_second")
		burst := config.GetInt("rate_limiting.burst")
		if rps <= 0 {
			rps = 20
		}
		if burst <= 0 {
			burst = rps * 2
		}
		v1.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}

	episodes.RegisterRoutes(v1, deps)
	runs.RegisterRoutes(v1, deps)

	return nil
}
