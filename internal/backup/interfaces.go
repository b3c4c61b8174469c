package backup

import (
	"context"
	"io"

	"github.com/killallgit/podcast-backup/internal/archive"
	"github.com/killallgit/podcast-backup/internal/feed"
	"github.com/killallgit/podcast-backup/pkg/download"
)

// FeedFetcher retrieves the raw feed document
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FeedParser turns raw feed markup into episodes
type FeedParser interface {
	Parse(r io.Reader) ([]feed.Episode, error)
}

// FileDownloader fetches a remote asset to a local path. Failures are
// reported in the Result, never as a panic or error return.
type FileDownloader interface {
	Download(ctx context.Context, url, destPath string) download.Result
}

// Recorder persists run history to the archive index. Optional; a nil
// Recorder disables history without affecting the backup itself.
type Recorder interface {
	CreateRun(ctx context.Context, run *archive.Run) error
	CreateItem(ctx context.Context, item *archive.Item) error
	CompleteRun(ctx context.Context, runID uint, episodeCount, audioFailures, imageFailures int) error
}
