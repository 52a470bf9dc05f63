package loaders

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
)

// PathEnv lists extra search directories, separated like PATH.
const PathEnv = "BFPATH"

// SearchPath is the ordered list of directories modules are resolved in.
type SearchPath []string

var pathFlag = cmds.Collect[string]("-path")

func (Module) SearchPath(
	loader configs.Loader,
	logger logs.Logger,
) (ret SearchPath) {
	defer func() {
		logger.Debug("search path", "dirs", []string(ret))
	}()

	var dirs []string
	dirs = append(dirs, *pathFlag...)
	for list := range configs.All[[]string](loader, "search_path") {
		dirs = append(dirs, list...)
	}
	if env := os.Getenv(PathEnv); env != "" {
		dirs = append(dirs, filepath.SplitList(env)...)
	}
	dirs = append(dirs, ".")

	for _, dir := range dirs {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		dir = filepath.Clean(dir)
		if slices.Contains(ret, dir) {
			continue
		}
		ret = append(ret, dir)
	}
	return
}
