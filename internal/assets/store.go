package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// ErrNotFound is returned by Store.Open when no asset exists at the path.
var ErrNotFound = errors.New("asset not found")

// Store returns raw asset bytes by slash-separated relative path.
type Store interface {
	Open(name string) ([]byte, error)
}

// FSStore reads assets from an fs.FS and caches the bytes it has read.
type FSStore struct {
	fsys fs.FS

	// OnInvalidate, if set before Watch starts, is called with each path
	// Watch drops from the cache. An empty path means the whole cache.
	OnInvalidate func(name string)

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewFSStore wraps fsys.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys, cache: map[string][]byte{}}
}

// NewDirStore returns a store rooted at a directory on disk.
func NewDirStore(root string) *FSStore {
	return NewFSStore(os.DirFS(root))
}

// FS exposes the underlying file system.
func (s *FSStore) FS() fs.FS {
	return s.fsys
}

// Open implements Store.
func (s *FSStore) Open(name string) ([]byte, error) {
	s.mu.RLock()
	b, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		return b, nil
	}

	b, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("read asset %s: %w", name, err)
	}

	s.mu.Lock()
	s.cache[name] = b
	s.mu.Unlock()
	return b, nil
}

// Invalidate drops a cached entry. An empty name clears the whole cache.
func (s *FSStore) Invalidate(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name == "" {
		s.cache = map[string][]byte{}
		return
	}
	delete(s.cache, name)
}

// Cached reports whether name is currently held in the cache.
func (s *FSStore) Cached(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.cache[name]
	return ok
}

// Watch invalidates cache entries when files under root change on disk. root
// must be the directory the store was created from. Watch blocks until ctx
// is done or the watcher fails.
func (s *FSStore) Watch(ctx context.Context, root string, onErr func(error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	// fsnotify is not recursive; register every directory in the pack.
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if fi, statErr := os.Stat(ev.Name); statErr == nil && fi.IsDir() {
					_ = w.Add(ev.Name)
				}
			}
			name := ""
			if rel, relErr := filepath.Rel(root, ev.Name); relErr == nil {
				name = filepath.ToSlash(rel)
			}
			s.Invalidate(name)
			if s.OnInvalidate != nil {
				s.OnInvalidate(name)
			}
		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if onErr != nil {
				onErr(werr)
			}
		}
	}
}

// List returns every path in fsys matching a doublestar pattern such as
// "**/*.png".
func List(fsys fs.FS, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	return matches, nil
}
