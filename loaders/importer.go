package loaders

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/units"
)

type Config struct {
	SearchPath []string
	Extensions []string
	// Factory builds units from source, units.New if nil
	Factory units.Factory
	Logger  logs.Logger
}

// Importer resolves dotted names to brainfuck files and caches the built units.
// A name is translated at most once while it stays cached.
type Importer struct {
	config Config
	mu     sync.Mutex
	cache  map[string]*cacheEntry
}

type cacheEntry struct {
	load func() (*units.Unit, error)
	unit *units.Unit
}

var _ Finder = new(Importer)

func NewImporter(config Config) *Importer {
	if len(config.Extensions) == 0 {
		config.Extensions = slices.Clone(DefaultExtensions)
	}
	if config.Factory == nil {
		config.Factory = units.NewFactory()
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Importer{
		config: config,
		cache:  make(map[string]*cacheEntry),
	}
}

func (i *Importer) Config() Config {
	return i.config
}

func (i *Importer) Resolve(name string) (string, error) {
	return Resolve(name, i.config.SearchPath, i.config.Extensions)
}

func (i *Importer) Load(name string) (*units.Unit, error) {
	i.mu.Lock()
	entry, ok := i.cache[name]
	if !ok {
		entry = &cacheEntry{}
		entry.load = sync.OnceValues(func() (*units.Unit, error) {
			return i.load(name)
		})
		i.cache[name] = entry
	}
	i.mu.Unlock()

	if ok {
		i.config.Logger.Debug("module cache hit", "name", name)
	}

	unit, err := entry.load()
	i.mu.Lock()
	defer i.mu.Unlock()
	if err != nil {
		// failures are not cached
		if i.cache[name] == entry {
			delete(i.cache, name)
		}
		return nil, err
	}
	entry.unit = unit
	return unit, nil
}

func (i *Importer) load(name string) (*units.Unit, error) {
	path, err := i.Resolve(name)
	if err != nil {
		i.config.Logger.Debug("module not resolved", "name", name, "error", err)
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(err)
	}

	unit, err := i.config.Factory(name, string(content))
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, fmt.Errorf("factory built no unit for %s", name)
	}
	if unit.Path == "" {
		unit.Path = path
	}

	i.config.Logger.Info("module loaded",
		"name", name,
		"path", path,
		"instructions", unit.Program.Count(),
	)

	return unit, nil
}

// Cached returns the unit for name if it has been loaded.
func (i *Importer) Cached(name string) (*units.Unit, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	entry, ok := i.cache[name]
	if !ok || entry.unit == nil {
		return nil, false
	}
	return entry.unit, true
}

func (i *Importer) Clear() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.cache = make(map[string]*cacheEntry)
}
