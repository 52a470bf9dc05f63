package configs

import (
	"errors"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

var ErrValueNotFound = errors.New("value not found")

// Loader reads cue files lazily. Earlier files take precedence.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, err
				}
			}

			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}
				root, err := compile(ctx, schema, filePath, content)
				if err != nil {
					return nil, err
				}
				ret = append(ret, root)
			}

			return
		}),
	}
}

// NewSourceLoader is like NewLoader with in-memory sources.
func NewSourceLoader(sources map[string]string, order []string, schemaSrc string) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, err
				}
			}

			for _, name := range order {
				root, err := compile(ctx, schema, name, []byte(sources[name]))
				if err != nil {
					return nil, err
				}
				ret = append(ret, root)
			}
			return
		}),
	}
}

func compile(ctx *cue.Context, schema cue.Value, name string, content []byte) (rootInfo, error) {
	value := ctx.CompileBytes(
		content,
		cue.Filename(name),
	)
	if err := value.Err(); err != nil {
		return rootInfo{}, err
	}
	if schema.Exists() {
		if err := schema.Unify(value).Validate(); err != nil {
			return rootInfo{}, err
		}
	}
	return rootInfo{
		value: value,
		path:  name,
	}, nil
}

type rootInfo struct {
	value cue.Value
	path  string
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		if l.getRoots == nil {
			return
		}
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if err := value.Err(); err == nil {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}

// Paths returns the files the loader reads from.
func (l Loader) Paths() ([]string, error) {
	if l.getRoots == nil {
		return nil, nil
	}
	roots, err := l.getRoots()
	if err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(roots))
	for _, root := range roots {
		ret = append(ret, root.path)
	}
	return ret, nil
}
