package starhost

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/reusee/bf/loaders"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/units"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ScriptExt marks load() arguments that are Starlark files rather than brainfuck module names.
const ScriptExt = ".star"

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Host runs Starlark with brainfuck modules loadable through load().
type Host struct {
	Registry *loaders.Registry
	// Factory builds units for the brainfuck and bf_run builtins
	Factory units.Factory
	Logger  logs.Logger
	// Output receives print(), os.Stdout if nil
	Output io.Writer

	mu      sync.Mutex
	scripts map[string]*script
}

type script struct {
	ready   chan struct{}
	globals starlark.StringDict
	err     error
}

func NewHost(registry *loaders.Registry, factory units.Factory, logger logs.Logger) *Host {
	if factory == nil {
		factory = units.NewFactory()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Host{
		Registry: registry,
		Factory:  factory,
		Logger:   logger,
		scripts:  make(map[string]*script),
	}
}

func (h *Host) newThread(ctx context.Context, name string) *starlark.Thread {
	output := h.Output
	if output == nil {
		output = os.Stdout
	}
	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(output, msg)
		},
		Load: h.Load,
	}
	thread.SetLocal(contextKey, ctx)
	return thread
}

// watch cancels thread when ctx is done. The returned func stops watching.
func watch(ctx context.Context, thread *starlark.Thread) func() {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()
	return func() {
		close(done)
	}
}

const loadingKey = "loading"

// Load implements starlark.Thread.Load.
func (h *Host) Load(thread *starlark.Thread, module string) (starlark.StringDict, error) {
	if strings.HasSuffix(module, ScriptExt) {
		return h.loadScript(thread, module)
	}
	return h.loadUnit(module)
}

func (h *Host) loadUnit(name string) (starlark.StringDict, error) {
	if h.Registry == nil {
		return nil, fmt.Errorf("load %s: %w", name, loaders.ErrModuleNotFound)
	}
	unit, err := h.Registry.Load(name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return starlark.StringDict{
		symbolOf(name): UnitValue{
			Unit: unit,
		},
	}, nil
}

// symbolOf is the binding name of a dotted module name, its last segment.
func symbolOf(name string) string {
	return name[strings.LastIndex(name, ".")+1:]
}

// Bindings loads names from the registry as REPL globals keyed by their last segment.
func (h *Host) Bindings(names []string) (map[string]any, error) {
	ret := make(map[string]any, len(names))
	for _, name := range names {
		if h.Registry == nil {
			return nil, fmt.Errorf("load %s: %w", name, loaders.ErrModuleNotFound)
		}
		unit, err := h.Registry.Load(name)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		ret[symbolOf(name)] = unit
	}
	return ret, nil
}

func (h *Host) loadScript(thread *starlark.Thread, path string) (starlark.StringDict, error) {
	path = filepath.Clean(path)

	loading, _ := thread.Local(loadingKey).([]string)
	if slices.Contains(loading, path) {
		return nil, fmt.Errorf("cycle in load graph: %s", strings.Join(append(loading, path), " -> "))
	}

	h.mu.Lock()
	if h.scripts == nil {
		h.scripts = make(map[string]*script)
	}
	entry, ok := h.scripts[path]
	if ok {
		h.mu.Unlock()
		<-entry.ready
		return entry.globals, entry.err
	}
	entry = &script{
		ready: make(chan struct{}),
	}
	h.scripts[path] = entry
	h.mu.Unlock()

	ctx := contextOf(thread)
	h.Logger.DebugContext(ctx, "load script", "path", path)
	src, err := os.ReadFile(path)
	if err != nil {
		entry.err = err
	} else {
		child := h.newThread(ctx, path)
		child.SetLocal(loadingKey, append(slices.Clone(loading), path))
		stop := watch(ctx, child)
		entry.globals, entry.err = starlark.ExecFileOptions(fileOptions, child, path, src, h.Predeclared())
		stop()
	}
	close(entry.ready)

	if entry.err != nil {
		h.mu.Lock()
		delete(h.scripts, path)
		h.mu.Unlock()
	}
	return entry.globals, entry.err
}

// ExecFile runs a Starlark script. src may be nil to read filename.
func (h *Host) ExecFile(ctx context.Context, filename string, src any) (starlark.StringDict, error) {
	thread := h.newThread(ctx, filename)
	if strings.HasSuffix(filename, ScriptExt) {
		thread.SetLocal(loadingKey, []string{filepath.Clean(filename)})
	}
	defer watch(ctx, thread)()
	globals, err := starlark.ExecFileOptions(fileOptions, thread, filename, src, h.Predeclared())
	if err != nil {
		h.Logger.DebugContext(ctx, "script failed", "file", filename, "error", err)
		return nil, err
	}
	return globals, nil
}

// REPL reads and evaluates Starlark from stdin with globals bound.
func (h *Host) REPL(ctx context.Context, globals map[string]any) {
	mappings := h.Predeclared()
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	thread := h.newThread(ctx, "repl")
	defer watch(ctx, thread)()
	repl.REPLOptions(fileOptions, thread, mappings)
}
