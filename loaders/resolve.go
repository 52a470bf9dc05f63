package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve finds the file for a dotted module name.
// For each directory in searchPath, in order, and each extension, in order,
// it checks dir/parent/segments/last.ext and returns the first regular file.
func Resolve(name string, searchPath []string, extensions []string) (string, error) {
	segments, err := splitName(name)
	if err != nil {
		return "", err
	}
	parents := segments[:len(segments)-1]
	last := segments[len(segments)-1]

	var tried []string
	for _, dir := range searchPath {
		for _, ext := range extensions {
			parts := make([]string, 0, len(segments)+1)
			if dir != "" {
				parts = append(parts, dir)
			}
			parts = append(parts, parents...)
			parts = append(parts, last+"."+strings.TrimPrefix(ext, "."))
			path := filepath.Join(parts...)
			tried = append(tried, path)

			stat, err := os.Stat(path)
			if err == nil && !stat.IsDir() {
				return path, nil
			}
		}
	}

	return "", &NotFoundError{
		Name:  name,
		Tried: tried,
	}
}

func splitName(name string) ([]string, error) {
	segments := strings.Split(name, ".")
	for _, segment := range segments {
		if segment == "" ||
			strings.ContainsAny(segment, `/\`) {
			return nil, fmt.Errorf("%w: invalid name %q", ErrModuleNotFound, name)
		}
	}
	return segments, nil
}
