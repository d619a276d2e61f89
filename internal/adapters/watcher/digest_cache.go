package watcher

import (
	"context"
	"sync"
	"unique"

	slnfs "go.trai.ch/slnver/internal/adapters/fs"
	"go.trai.ch/slnver/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentDigests bounds the files hashed at once.
const maxConcurrentDigests = 8

// DigestCache remembers the content digest of watched files so that events
// which leave a file's content unchanged can be ignored.
type DigestCache struct {
	fs      ports.FileSystem
	mu      sync.Mutex
	digests map[unique.Handle[string]]string
}

// NewDigestCache creates a new, empty digest cache.
func NewDigestCache(fs ports.FileSystem) *DigestCache {
	return &DigestCache{
		fs:      fs,
		digests: make(map[unique.Handle[string]]string),
	}
}

// Changed hashes paths and returns, in input order, those whose content
// differs from the last digest recorded for them. Missing files hash to "",
// so a deletion counts as a change once. The cache is updated.
func (c *DigestCache) Changed(ctx context.Context, paths []string) ([]string, error) {
	digests := make([]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDigests)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			digest, err := slnfs.Digest(c.fs, path)
			if err != nil {
				return err
			}
			digests[i] = digest
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var changed []string
	for i, path := range paths {
		handle := unique.Make(path)
		previous, seen := c.digests[handle]
		if seen && previous == digests[i] {
			continue
		}
		if !seen && digests[i] == "" {
			continue
		}
		c.digests[handle] = digests[i]
		changed = append(changed, path)
	}
	return changed, nil
}

// Prime records the current digests of paths without reporting changes.
func (c *DigestCache) Prime(ctx context.Context, paths []string) error {
	_, err := c.Changed(ctx, paths)
	return err
}
