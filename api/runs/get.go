package runs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-backup/api/types"
	"github.com/killallgit/podcast-backup/internal/archive"
)

// GetAll returns the most recent backup runs
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Archive == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "archive index not configured"})
			return
		}

		limit := 20
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 || parsed > 200 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 200"})
				return
			}
			limit = parsed
		}

		list, err := deps.Archive.ListRuns(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"runs":  list,
			"count": len(list),
		})
	}
}

// GetByUUID returns one run with its per-episode items
func GetByUUID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Archive == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "archive index not configured"})
			return
		}

		run, err := deps.Archive.GetRunByUUID(c.Request.Context(), c.Param("uuid"))
		if err != nil {
			if errors.Is(err, archive.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get run"})
			return
		}

		c.JSON(http.StatusOK, run)
	}
}
