package assets

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vbonduro/councilweb/internal/domain"
)

// Catalog indexes a collection laid out as <root>/<collection>/<YYYY-MM>/<image>
// and serves it by year and month. It satisfies period.Source.
type Catalog struct {
	root       string
	collection string
	urlPrefix  string
	logger     *slog.Logger

	mu     sync.RWMutex
	byYear map[int]map[int][]domain.Resource
}

func NewCatalog(root, collection, urlPrefix string, logger *slog.Logger) *Catalog {
	return &Catalog{
		root:       root,
		collection: collection,
		urlPrefix:  strings.TrimRight(urlPrefix, "/"),
		logger:     logger,
		byYear:     map[int]map[int][]domain.Resource{},
	}
}

func (c *Catalog) dir() string {
	return filepath.Join(c.root, c.collection)
}

// Reindex rescans the collection directory. A missing directory yields an
// empty catalog. Directories whose name is not a YYYY-MM period and files
// that are not images are skipped.
func (c *Catalog) Reindex() error {
	entries, err := os.ReadDir(c.dir())
	if errors.Is(err, fs.ErrNotExist) {
		c.swap(map[int]map[int][]domain.Resource{})
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.collection, err)
	}

	index := map[int]map[int][]domain.Resource{}
	var id int64
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		year, month, ok := parsePeriod(e.Name())
		if !ok {
			continue
		}

		files, err := os.ReadDir(filepath.Join(c.dir(), e.Name()))
		if err != nil {
			return fmt.Errorf("failed to read %s/%s: %w", c.collection, e.Name(), err)
		}

		var items []domain.Resource
		for _, f := range files {
			if f.IsDir() || !IsImage(f.Name()) {
				continue
			}
			id++
			items = append(items, domain.Resource{
				ID:       id,
				Title:    strings.TrimSuffix(f.Name(), filepath.Ext(f.Name())),
				ImageURL: c.urlPrefix + "/" + path.Join(c.collection, e.Name(), f.Name()),
				Year:     year,
				Month:    month,
			})
		}
		if len(items) == 0 {
			continue
		}
		if index[year] == nil {
			index[year] = map[int][]domain.Resource{}
		}
		index[year][month] = items
	}

	c.swap(index)
	return nil
}

func (c *Catalog) swap(index map[int]map[int][]domain.Resource) {
	c.mu.Lock()
	c.byYear = index
	c.mu.Unlock()
}

// Years returns the indexed years, newest first.
func (c *Catalog) Years(_ context.Context) ([]int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	years := make([]int, 0, len(c.byYear))
	for y := range c.byYear {
		years = append(years, y)
	}
	slices.SortFunc(years, func(a, b int) int { return cmp.Compare(b, a) })
	return years, nil
}

// Months returns the months of year that have images, in calendar order.
func (c *Catalog) Months(_ context.Context, year int) ([]int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	months := make([]int, 0, len(c.byYear[year]))
	for m := range c.byYear[year] {
		months = append(months, m)
	}
	slices.Sort(months)
	return months, nil
}

func (c *Catalog) Resources(_ context.Context, year, month int) ([]domain.Resource, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.byYear[year][month]), nil
}

// Watch reindexes whenever the collection changes, once events have been
// quiet for settle. It blocks until ctx is done.
func (c *Catalog) Watch(ctx context.Context, settle time.Duration) error {
	if err := os.MkdirAll(c.dir(), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", c.collection, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := c.addDirs(w); err != nil {
		return err
	}
	c.logger.Info("watching asset collection", "collection", c.collection, "dir", c.dir())

	if settle <= 0 {
		settle = 300 * time.Millisecond
	}
	ticker := time.NewTicker(settle / 2)
	defer ticker.Stop()

	var lastEvent time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.Add(ev.Name); err != nil {
						c.logger.Warn("failed to watch directory", "dir", ev.Name, "error", err)
					}
				}
			}
			lastEvent = time.Now()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.logger.Warn("asset watcher error", "error", err)
		case <-ticker.C:
			if lastEvent.IsZero() || time.Since(lastEvent) < settle {
				continue
			}
			lastEvent = time.Time{}
			if err := c.Reindex(); err != nil {
				c.logger.Error("failed to reindex asset collection", "collection", c.collection, "error", err)
				continue
			}
			c.logger.Info("asset collection reindexed", "collection", c.collection)
		}
	}
}

func (c *Catalog) addDirs(w *fsnotify.Watcher) error {
	if err := w.Add(c.dir()); err != nil {
		return fmt.Errorf("failed to watch %s: %w", c.dir(), err)
	}
	entries, err := os.ReadDir(c.dir())
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.dir(), err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := w.Add(filepath.Join(c.dir(), e.Name())); err != nil {
			return fmt.Errorf("failed to watch %s: %w", e.Name(), err)
		}
	}
	return nil
}

// parsePeriod parses a YYYY-MM directory name.
func parsePeriod(name string) (year, month int, ok bool) {
	t, err := time.Parse("2006-01", name)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), int(t.Month()), true
}
