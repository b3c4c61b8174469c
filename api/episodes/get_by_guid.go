package episodes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-backup/api/types"
	"github.com/killallgit/podcast-backup/internal/archive"
)

// GetByGUID returns the latest archive record for one episode GUID
func GetByGUID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Archive == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "archive index not configured"})
			return
		}

		guid := c.Param("guid")
		item, err := deps.Archive.GetItemByGUID(c.Request.Context(), guid)
		if err != nil {
			if errors.Is(err, archive.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "episode not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get episode"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}
