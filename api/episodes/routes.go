package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-backup/api/types"
)

// RegisterRoutes registers episode routes under the given group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("/episodes", GetAll(deps))
	group.GET("/episodes/:guid", GetByGUID(deps))
}
