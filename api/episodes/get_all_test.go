package episodes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/killallgit/podcast-backup/api/types"
	"github.com/killallgit/podcast-backup/internal/archive"
)

func setupTestDeps(t *testing.T) *types.Dependencies {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	repo := archive.NewRepository(db)
	require.NoError(t, repo.Migrate())

	return &types.Dependencies{Archive: repo}
}

func seedItems(t *testing.T, deps *types.Dependencies, n int) {
	t.Helper()

	ctx := context.Background()
	run := &archive.Run{FeedURL: "https://example.com/feed.xml"}
	require.NoError(t, deps.Archive.CreateRun(ctx, run))

	for i := 1; i <= n; i++ {
		item := &archive.Item{
			RunID:       run.ID,
			GUID:        fmt.Sprintf("guid-%d", i),
			Title:       fmt.Sprintf("Episode %d", i),
			BaseName:    fmt.Sprintf("episode_%d", i),
			AudioStatus: archive.StatusDownloaded,
			ImageStatus: archive.StatusSkipped,
		}
		require.NoError(t, deps.Archive.CreateItem(ctx, item))
	}
}

func newTestRouter(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	RegisterRoutes(engine.Group("/api/v1"), deps)
	return engine
}

func TestGetAll(t *testing.T) {
	deps := setupTestDeps(t)
	seedItems(t, deps, 3)
	router := newTestRouter(deps)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/episodes", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Episodes []archive.Item `json:"episodes"`
		Count    int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	assert.Len(t, body.Episodes, 3)
}

func TestGetAll_LimitValidation(t *testing.T) {
	deps := setupTestDeps(t)
	router := newTestRouter(deps)

	tests := []struct {
		query      string
		wantStatus int
	}{
		{"limit=10", http.StatusOK},
		{"limit=0", http.StatusBadRequest},
		{"limit=-5", http.StatusBadRequest},
		{"limit=abc", http.StatusBadRequest},
		{"limit=9999", http.StatusBadRequest},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/episodes?"+tt.query, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, tt.wantStatus, w.Code, "query %s", tt.query)
	}
}

func TestGetAll_NoArchive(t *testing.T) {
	router := newTestRouter(&types.Dependencies{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/episodes", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetByGUID(t *testing.T) {
	deps := setupTestDeps(t)
	seedItems(t, deps, 2)
	router := newTestRouter(deps)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/episodes/guid-2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var item archive.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, "Episode 2", item.Title)
}

func TestGetByGUID_NotFound(t *testing.T) {
	deps := setupTestDeps(t)
	router := newTestRouter(deps)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/episodes/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
