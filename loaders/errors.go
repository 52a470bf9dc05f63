package loaders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/e5"
)

var ErrModuleNotFound = errors.New("module not found")

var wrap = e5.Wrap.With(e5.WrapStacktrace)

type NotFoundError struct {
	Name string
	// Tried lists candidate paths in the order they were checked
	Tried []string
}

func (n *NotFoundError) Error() string {
	if len(n.Tried) == 0 {
		return fmt.Sprintf("%s: %s", ErrModuleNotFound.Error(), n.Name)
	}
	return fmt.Sprintf("%s: %s (tried %s)", ErrModuleNotFound.Error(), n.Name, strings.Join(n.Tried, ", "))
}

func (n *NotFoundError) Unwrap() error {
	return ErrModuleNotFound
}
