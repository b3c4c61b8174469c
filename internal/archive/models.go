// Package archive records backup run history in SQLite. The index is
// advisory: the backup pipeline writes to it but never consults it to skip
// work, so losing or deleting the database only loses history.
package archive

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Artifact status values
const (
	StatusDownloaded = "downloaded" // Asset fetched and written
	StatusFailed     = "failed"     // Download attempted, failed
	StatusSkipped    = "skipped"    // No URL in the feed, nothing attempted
)

// Run represents one invocation of the backup pipeline
type Run struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UUID      string    `json:"uuid" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FeedURL   string `json:"feed_url" gorm:"not null;size:500"`
	OutputDir string `json:"output_dir" gorm:"size:500"`

	EpisodeCount  int        `json:"episode_count"`
	AudioFailures int        `json:"audio_failures"`
	ImageFailures int        `json:"image_failures"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`

	Items []Item `json:"items,omitempty" gorm:"foreignKey:RunID"`
}

// BeforeCreate generates a UUID before creating a new run
func (r *Run) BeforeCreate(tx *gorm.DB) error {
	if r.UUID == "" {
		r.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Run model
func (Run) TableName() string {
	return "runs"
}

// Item represents one episode processed during a run and where its
// artifacts landed
type Item struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	RunID    uint   `json:"run_id" gorm:"not null;index"`
	GUID     string `json:"guid" gorm:"index;size:500"`
	Title    string `json:"title"`
	BaseName string `json:"base_name"`

	AudioStatus  string `json:"audio_status" gorm:"size:20"`
	ImageStatus  string `json:"image_status" gorm:"size:20"`
	AudioPath    string `json:"audio_path,omitempty"`
	ImagePath    string `json:"image_path,omitempty"`
	MetadataPath string `json:"metadata_path,omitempty"`
	AudioError   string `json:"audio_error,omitempty"`
	ImageError   string `json:"image_error,omitempty"`
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
