package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-backup/api/types"
	"github.com/killallgit/podcast-backup/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		setupDeps func(t *testing.T) *types.Dependencies
		wantDB    string
	}{
		{
			name: "healthy with database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				t.Cleanup(func() { _ = db.Close() })
				return &types.Dependencies{DB: db}
			},
			wantDB: "healthy",
		},
		{
			name: "healthy without database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				return &types.Dependencies{}
			},
			wantDB: "not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			RegisterRoutes(engine, tt.setupDeps(t))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			engine.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "ok", body["status"])

			dbStatus, ok := body["database"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, tt.wantDB, dbStatus["status"])
		})
	}
}
