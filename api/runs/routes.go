package runs

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-backup/api/types"
)

// RegisterRoutes registers backup run routes under the given group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("/runs", GetAll(deps))
	group.GET("/runs/:uuid", GetByUUID(deps))
}
