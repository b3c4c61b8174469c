package types

import (
	"github.com/killallgit/podcast-backup/internal/archive"
	"github.com/killallgit/podcast-backup/internal/database"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB      *database.DB
	Archive *archive.Repository
}
