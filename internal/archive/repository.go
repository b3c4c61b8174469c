package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no record
var ErrNotFound = errors.New("archive: record not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the archive tables
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&Run{}, &Item{}); err != nil {
		return fmt.Errorf("migrating archive schema: %w", err)
	}
	return nil
}

// CreateRun persists a new run record
func (r *Repository) CreateRun(ctx context.Context, run *Run) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("creating run: %w", err)
	}
	return nil
}

// CompleteRun stamps a run as finished with its final counts
func (r *Repository) CompleteRun(ctx context.Context, runID uint, episodeCount, audioFailures, imageFailures int) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&Run{}).Where("id = ?", runID).Updates(map[string]any{
		"episode_count":  episodeCount,
		"audio_failures": audioFailures,
		"image_failures": imageFailures,
		"completed_at":   &now,
	})
	if result.Error != nil {
		return fmt.Errorf("completing run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateItem persists one processed episode
func (r *Repository) CreateItem(ctx context.Context, item *Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("creating item: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []Run
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

// GetRunByUUID returns a single run with its items preloaded
func (r *Repository) GetRunByUUID(ctx context.Context, id string) (*Run, error) {
	var run Run
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("uuid = ?", id).
		First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting run: %w", err)
	}
	return &run, nil
}

// ListItems returns the most recently archived episodes, newest first
func (r *Repository) ListItems(ctx context.Context, limit int) ([]Item, error) {
	if limit <= 0 {
		limit = 50
	}
	var items []Item
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return items, nil
}

// GetItemByGUID returns the most recent archive record for an episode GUID
func (r *Repository) GetItemByGUID(ctx context.Context, guid string) (*Item, error) {
	var item Item
	if err := r.db.WithContext(ctx).
		Where("guid = ?", guid).
		Order("created_at DESC").
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return &item, nil
}
