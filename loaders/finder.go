package loaders

import (
	"fmt"
	"sync"

	"github.com/reusee/bf/units"
)

// Finder loads units by dotted name.
// Names it does not know yield an error wrapping ErrModuleNotFound.
type Finder interface {
	Load(name string) (*units.Unit, error)
}

// MapFinder serves units from in-memory sources.
type MapFinder struct {
	factory units.Factory
	mu      sync.Mutex
	sources map[string]string
	built   map[string]*units.Unit
}

var _ Finder = new(MapFinder)

func NewMapFinder(sources map[string]string, factory units.Factory) *MapFinder {
	if factory == nil {
		factory = units.NewFactory()
	}
	return &MapFinder{
		factory: factory,
		sources: sources,
		built:   make(map[string]*units.Unit),
	}
}

func (m *MapFinder) Load(name string) (*units.Unit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if unit, ok := m.built[name]; ok {
		return unit, nil
	}
	source, ok := m.sources[name]
	if !ok {
		return nil, &NotFoundError{
			Name: name,
		}
	}
	unit, err := m.factory(name, source)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, fmt.Errorf("factory built no unit for %s", name)
	}
	m.built[name] = unit
	return unit, nil
}
