// Package backup drives the feed-to-disk pipeline: fetch the feed, then for
// each episode download audio and cover art and write a JSON sidecar.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/killallgit/podcast-backup/internal/archive"
	"github.com/killallgit/podcast-backup/internal/feed"
	"github.com/killallgit/podcast-backup/pkg/sanitize"
)

// Output subdirectories created under the backup root
const (
	audioDir = "audio"
	imageDir = "images"
	jsonDir  = "json"
)

// Orchestrator runs the backup pipeline sequentially, one episode at a
// time. A failure on any single asset is logged and processing continues;
// only a feed-level fetch or parse failure aborts the run.
type Orchestrator struct {
	fetcher    FeedFetcher
	parser     FeedParser
	downloader FileDownloader
	recorder   Recorder
}

// Option is a functional option for configuring the orchestrator
type Option func(*Orchestrator)

// WithRecorder wires an archive index so runs leave a queryable history
func WithRecorder(recorder Recorder) Option {
	return func(o *Orchestrator) {
		o.recorder = recorder
	}
}

// NewOrchestrator creates an orchestrator from its collaborators
func NewOrchestrator(fetcher FeedFetcher, parser FeedParser, downloader FileDownloader, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		fetcher:    fetcher,
		parser:     parser,
		downloader: downloader,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run backs up every episode of the feed at feedURL into outputDir.
// Returns an error only for run-level failures: directory setup, feed
// fetch, or feed parse.
func (o *Orchestrator) Run(ctx context.Context, feedURL, outputDir string) error {
	for _, sub := range []string{audioDir, imageDir, jsonDir} {
		if err := os.MkdirAll(filepath.Join(outputDir, sub), 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", sub, err)
		}
	}

	raw, err := o.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return fmt.Errorf("fetching feed: %w", err)
	}

	episodes, err := o.parser.Parse(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parsing feed: %w", err)
	}
	log.Printf("[INFO] Feed parsed: %d episodes", len(episodes))

	var run *archive.Run
	if o.recorder != nil {
		run = &archive.Run{FeedURL: feedURL, OutputDir: outputDir}
		if err := o.recorder.CreateRun(ctx, run); err != nil {
			log.Printf("[ERROR] Failed to record run, continuing without history: %v", err)
			run = nil
		}
	}

	var audioFailures, imageFailures int
	for i, ep := range episodes {
		log.Printf("[INFO] Processing episode %d/%d: %s", i+1, len(episodes), ep.Title)

		item := o.processEpisode(ctx, ep, outputDir)
		if item.AudioStatus == archive.StatusFailed {
			audioFailures++
		}
		if item.ImageStatus == archive.StatusFailed {
			imageFailures++
		}

		if run != nil {
			item.RunID = run.ID
			if err := o.recorder.CreateItem(ctx, item); err != nil {
				log.Printf("[ERROR] Failed to record episode %q: %v", ep.Title, err)
			}
		}
	}

	if run != nil {
		if err := o.recorder.CompleteRun(ctx, run.ID, len(episodes), audioFailures, imageFailures); err != nil {
			log.Printf("[ERROR] Failed to complete run record: %v", err)
		}
	}

	log.Printf("[INFO] Backup complete: %d episodes, %d audio failures, %d image failures",
		len(episodes), audioFailures, imageFailures)
	return nil
}

// processEpisode handles one episode's three artifacts. Every sub-step is
// independent: a download failure still leaves the JSON sidecar written.
func (o *Orchestrator) processEpisode(ctx context.Context, ep feed.Episode, outputDir string) *archive.Item {
	base := sanitize.BaseName(ep.Title)
	item := &archive.Item{
		GUID:        ep.GUID,
		Title:       ep.Title,
		BaseName:    base,
		AudioStatus: archive.StatusSkipped,
		ImageStatus: archive.StatusSkipped,
	}

	if ep.AudioURL != "" {
		dest := filepath.Join(outputDir, audioDir, base+".mp3")
		result := o.downloader.Download(ctx, ep.AudioURL, dest)
		if result.OK() {
			log.Printf("[INFO] Downloaded audio: %s", dest)
			item.AudioStatus = archive.StatusDownloaded
			item.AudioPath = dest
		} else {
			log.Printf("[WARN] Audio download failed for %q: %v", ep.Title, result.Err)
			item.AudioStatus = archive.StatusFailed
			item.AudioError = result.Err.Error()
		}
	} else {
		log.Printf("[WARN] Episode %q has no enclosure, skipping audio", ep.Title)
	}

	if ep.ImageURL != "" {
		dest := filepath.Join(outputDir, imageDir, base+"."+imageExt(ep.ImageURL))
		result := o.downloader.Download(ctx, ep.ImageURL, dest)
		if result.OK() {
			log.Printf("[INFO] Downloaded image: %s", dest)
			item.ImageStatus = archive.StatusDownloaded
			item.ImagePath = dest
		} else {
			log.Printf("[WARN] Image download failed for %q: %v", ep.Title, result.Err)
			item.ImageStatus = archive.StatusFailed
			item.ImageError = result.Err.Error()
		}
	}

	dest := filepath.Join(outputDir, jsonDir, base+".json")
	if err := writeMetadata(ep, dest); err != nil {
		log.Printf("[WARN] Metadata write failed for %q: %v", ep.Title, err)
	} else {
		item.MetadataPath = dest
	}

	return item
}

// writeMetadata serializes the episode as an indented JSON sidecar,
// overwriting any previous file of the same name
func writeMetadata(ep feed.Episode, dest string) error {
	data, err := json.MarshalIndent(ep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling episode: %w", err)
	}
	if err := os.WriteFile(dest, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	return nil
}

// imageExt returns the extension after the last '.' in url, defaulting to
// jpg when the URL has no dot
func imageExt(url string) string {
	if idx := strings.LastIndex(url, "."); idx >= 0 && idx < len(url)-1 {
		return url[idx+1:]
	}
	return "jpg"
}
