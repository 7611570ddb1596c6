// Package assets loads OBJ models into render-ready meshes.
package assets

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/objmesh/internal/config"
	"github.com/Faultbox/objmesh/internal/logger"
	"github.com/Faultbox/objmesh/pkg/encoding"
	"github.com/Faultbox/objmesh/pkg/wavefront"
)

// Model is the result of loading one OBJ file.
type Model struct {
	Path   string
	Meshes []wavefront.Mesh
}

// VertexCount returns the number of vertices over all meshes.
func (m *Model) VertexCount() int {
	n := 0
	for i := range m.Meshes {
		n += m.Meshes[i].VertexCount
	}
	return n
}

// Manager loads models using the configured roots, encoding and strategy.
// It is safe for concurrent use.
type Manager struct {
	loader   wavefront.Loader
	base     wavefront.Source
	encoding string
	cache    *Cache // nil when caching is disabled
	workers  int
	log      *zap.Logger
}

// NewManager creates a manager from cfg. Source files are read from disk.
func NewManager(cfg *config.Config) (*Manager, error) {
	return NewManagerWithSource(cfg, wavefront.FileSource{})
}

// NewManagerWithSource creates a manager reading files through src.
func NewManagerWithSource(cfg *config.Config, src wavefront.Source) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategy, _ := wavefront.ParseStrategy(cfg.Loader.Strategy)

	m := &Manager{
		base:     src,
		encoding: cfg.Assets.Encoding,
		workers:  cfg.Loader.Workers,
		log:      logger.Named("assets"),
	}
	if cfg.Assets.Cache {
		m.cache = NewCache()
	}
	m.loader = wavefront.Loader{
		Source:       m,
		ModelsRoot:   cfg.Assets.ModelsRoot,
		TexturesRoot: cfg.Assets.TexturesRoot,
		Strategy:     strategy,
	}
	return m, nil
}

// Load implements wavefront.Source: it reads path through the underlying
// source, decodes it to UTF-8 and caches the result.
func (m *Manager) Load(path string) (wavefront.RawText, error) {
	if m.cache != nil {
		if data, ok := m.cache.Get(path); ok {
			return wavefront.RawText{Name: path, Data: data}, nil
		}
	}

	text, err := m.base.Load(path)
	if err != nil {
		return wavefront.RawText{}, err
	}
	data, err := encoding.ToUTF8(text.Data, m.encoding)
	if err != nil {
		return wavefront.RawText{}, fmt.Errorf("%s: %w", path, err)
	}
	text.Data = data

	if m.cache != nil {
		m.cache.Set(path, data)
	}
	m.log.Debug("read source", zap.String("path", path), zap.Int("bytes", len(data)))
	return text, nil
}

// LoadModel loads one OBJ file and its material library.
func (m *Manager) LoadModel(path string) (*Model, error) {
	start := time.Now()

	meshes, err := m.loader.Load(path)
	if err != nil {
		m.log.Error("model load failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("loading model %s: %w", path, err)
	}

	model := &Model{Path: path, Meshes: meshes}
	m.log.Debug("model loaded",
		zap.String("path", path),
		zap.Int("meshes", len(meshes)),
		zap.Int("vertices", model.VertexCount()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return model, nil
}

// LoadAll loads independent models in parallel, at most the configured
// number at a time. Results are in the order of paths. The first failure
// cancels loads that have not started yet and is returned.
func (m *Manager) LoadAll(ctx context.Context, paths []string) ([]*Model, error) {
	models := make([]*Model, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			model, err := m.LoadModel(path)
			if err != nil {
				return err
			}
			models[i] = model
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return models, nil
}

// Count reads path and tallies its directives without parsing values.
func (m *Manager) Count(path string) (wavefront.Counts, error) {
	text, err := m.Load(path)
	if err != nil {
		return wavefront.Counts{}, err
	}
	return wavefront.Count(text.Data), nil
}

// Materials reads and parses an MTL file. The path is used as given,
// without the models root.
func (m *Manager) Materials(path string) (*wavefront.MaterialTable, error) {
	return wavefront.LoadMTL(m, path)
}

// Cache returns the source cache, or nil when caching is disabled.
func (m *Manager) Cache() *Cache {
	return m.cache
}

// Cache is a simple in-memory cache for decoded source text.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	// Write lock: the stats counters are updated on every lookup.
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Len returns the number of cached files.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
