package siteforge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/siteforge/siteforge-go/remotepath"
	"golang.org/x/sync/errgroup"
)

// Purge deletes every file directly inside dir and, when recursive is
// set, every file in its descendant folders. Deletes within one
// directory fan out concurrently and are awaited together; the first
// failure aborts the purge and cancels in-flight siblings. Folders need
// no explicit deletion upstream, they disappear with their last file.
//
// No snapshot isolation: files added concurrently during the purge may
// survive it.
func (f *FilesAPI) Purge(ctx context.Context, dir remotepath.Path, recursive bool) error {
	if _, _, err := f.c.sessionView(); err != nil {
		return err
	}
	return f.purge(ctx, dir, recursive)
}

func (f *FilesAPI) purge(ctx context.Context, dir remotepath.Path, recursive bool) error {
	listing, err := f.List(ctx, dir)
	if err != nil {
		return err
	}

	f.c.log.Info("purge",
		"path", dir.String(),
		"files", len(listing.Files),
		"folders", len(listing.Folders),
		"recursive", recursive)

	g, gctx := errgroup.WithContext(ctx)
	for _, file := range listing.Files {
		g.Go(func() error {
			return f.Delete(gctx, dir, file.Name)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if !recursive {
		return nil
	}

	g, gctx = errgroup.WithContext(ctx)
	for _, folder := range listing.Folders {
		g.Go(func() error {
			return f.purge(gctx, dir.Append(folder.Name), true)
		})
	}
	return g.Wait()
}

// UploadDir mirrors a local directory tree onto the remote directory,
// preserving relative subfolder structure. Every regular file produces
// exactly one UploadResult; a failed upload is recorded with OK false
// instead of aborting the walk. Only local enumeration errors abort.
//
// Siblings within one directory level (file uploads and subfolder
// recursions) fan out together and are awaited before the level
// returns. Result order is not deterministic.
func (f *FilesAPI) UploadDir(ctx context.Context, dir remotepath.Path, localDir string) ([]*UploadResult, error) {
	if _, _, err := f.c.sessionView(); err != nil {
		return nil, err
	}

	info, err := os.Stat(localDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, localDir)
	}

	col := &resultCollector{}
	if err := f.uploadDir(ctx, dir, localDir, col); err != nil {
		return nil, err
	}
	return col.results, nil
}

func (f *FilesAPI) uploadDir(ctx context.Context, dir remotepath.Path, localDir string, col *resultCollector) error {
	entries, err := os.ReadDir(localDir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", localDir, err)
	}

	var g errgroup.Group
	for _, entry := range entries {
		localPath := filepath.Join(localDir, entry.Name())

		if entry.IsDir() {
			g.Go(func() error {
				return f.uploadDir(ctx, dir.Append(entry.Name()), localPath, col)
			})
			continue
		}

		g.Go(func() error {
			res, err := f.Upload(ctx, dir, localPath)
			if err != nil {
				f.c.log.Warn("upload failed", "path", localPath, "error", err)
				col.add(&UploadResult{LocalPath: localPath, OK: false})
				return nil
			}
			col.add(&UploadResult{LocalPath: localPath, OK: true, URL: res.URL})
			return nil
		})
	}

	return g.Wait()
}

// resultCollector gathers UploadResults from concurrently running
// upload tasks.
type resultCollector struct {
	mu      sync.Mutex
	results []*UploadResult
}

func (c *resultCollector) add(r *UploadResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, r)
}
