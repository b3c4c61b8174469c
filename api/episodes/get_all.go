package episodes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-backup/api/types"
)

// GetAll returns the most recently archived episodes
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Archive == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "archive index not configured"})
			return
		}

		limit := 50
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 || parsed > 500 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 500"})
				return
			}
			limit = parsed
		}

		items, err := deps.Archive.ListItems(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list episodes"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"episodes": items,
			"count":    len(items),
		})
	}
}
