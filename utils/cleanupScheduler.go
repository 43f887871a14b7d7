package utils

import (
	"context"
	"log"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"eduequi/catalog"
	"eduequi/store"

	"github.com/robfig/cron/v3"
)

// Files younger than this are skipped by the sweeper: an upload may already
// be on disk while its video document is still being inserted.
const sweepGracePeriod = time.Hour

// logSweeper logs sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[UPLOAD-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartCleanupScheduler runs a nightly sweep that removes stored video files
// no longer referenced by any video document. Cascade deletes only remove
// documents, so files can be stranded by a crash between the document delete
// and the file delete.
func StartCleanupScheduler(cat *catalog.Catalog, uploadDir string) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 3 * * *", func() {
		SweepOrphanUploads(cat, uploadDir)
	}); err != nil {
		log.Printf("Failed to register upload sweeper: %v", err)
		return c
	}

	c.Start()
	logSweeper("Upload sweeper scheduled")
	return c
}

// SweepOrphanUploads deletes files in the upload directory that no stored
// video references through videoUrl or islVideoUrl.
func SweepOrphanUploads(cat *catalog.Catalog, uploadDir string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	videos, err := cat.Videos.List(ctx, store.Query{})
	if err != nil {
		logSweeper("Error listing videos: " + err.Error())
		return
	}

	referenced := make(map[string]bool, len(videos)*2)
	for _, v := range videos {
		if v.VideoURL != "" {
			referenced[path.Base(v.VideoURL)] = true
		}
		if v.ISLVideoURL != "" {
			referenced[path.Base(v.ISLVideoURL)] = true
		}
	}

	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			logSweeper("Error reading upload dir: " + err.Error())
		}
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || time.Since(info.ModTime()) < sweepGracePeriod {
			continue
		}
		if err := os.Remove(filepath.Join(uploadDir, entry.Name())); err != nil {
			logSweeper("Error removing " + entry.Name() + ": " + err.Error())
			continue
		}
		removed++
	}

	if removed > 0 {
		logSweeper("Removed " + strconv.Itoa(removed) + " orphaned upload(s)")
	}
}
