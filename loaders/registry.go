package loaders

import (
	"errors"
	"slices"
	"sync"

	"github.com/reusee/bf/units"
)

// Registry is the ordered list of active finders consulted for name based loading.
// At most one *Importer is expected in it.
// Units it has handed out are remembered until Clear, whatever happens to the finders.
type Registry struct {
	config  Config
	mu      sync.Mutex
	finders []Finder
	loaded  map[string]*units.Unit
}

// NewRegistry returns an empty registry. config is used by Install(nil).
func NewRegistry(config Config) *Registry {
	return &Registry{
		config: config,
		loaded: make(map[string]*units.Unit),
	}
}

// Install registers importer, or a new one built from the registry config if nil.
// An existing *Importer is replaced in place and false is returned,
// otherwise importer is appended and true is returned.
func (r *Registry) Install(importer *Importer) bool {
	if importer == nil {
		importer = NewImporter(r.config)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, finder := range r.finders {
		if _, ok := finder.(*Importer); ok {
			r.finders[i] = importer
			return false
		}
	}
	r.finders = append(r.finders, importer)
	return true
}

// Remove unregisters the first *Importer. Names already loaded still resolve.
func (r *Registry) Remove() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, finder := range r.finders {
		if _, ok := finder.(*Importer); ok {
			r.finders = slices.Delete(r.finders, i, i+1)
			return true
		}
	}
	return false
}

// Add appends a finder of any kind.
func (r *Registry) Add(finder Finder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finders = append(r.finders, finder)
}

func (r *Registry) Finders() []Finder {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.finders)
}

// Importer returns the active importer, nil if none is installed.
func (r *Registry) Importer() *Importer {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, finder := range r.finders {
		if importer, ok := finder.(*Importer); ok {
			return importer
		}
	}
	return nil
}

// Load returns the unit already loaded for name, or asks each finder in order.
// The first one that knows name wins.
func (r *Registry) Load(name string) (*units.Unit, error) {
	if unit, ok := r.Loaded(name); ok {
		return unit, nil
	}

	var tried []string
	for _, finder := range r.Finders() {
		unit, err := finder.Load(name)
		if err == nil {
			return r.remember(name, unit), nil
		}
		if !errors.Is(err, ErrModuleNotFound) {
			return nil, err
		}
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			tried = append(tried, notFound.Tried...)
		}
	}
	return nil, &NotFoundError{
		Name:  name,
		Tried: tried,
	}
}

func (r *Registry) remember(name string, unit *units.Unit) *units.Unit {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded == nil {
		r.loaded = make(map[string]*units.Unit)
	}
	// a concurrent load may have won
	if prev, ok := r.loaded[name]; ok {
		return prev
	}
	r.loaded[name] = unit
	return unit
}

// Loaded returns the unit previously loaded for name.
func (r *Registry) Loaded(name string) (*units.Unit, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	unit, ok := r.loaded[name]
	return unit, ok
}

// Clear forgets every loaded unit. Finders keep their own caches.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = make(map[string]*units.Unit)
}
