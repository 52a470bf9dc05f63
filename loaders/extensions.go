package loaders

import (
	"slices"
	"strings"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

type Extensions []string

var DefaultExtensions = Extensions{"bf", "b"}

var extFlag = cmds.Collect[string]("-ext")

func (Module) Extensions(
	loader configs.Loader,
) (ret Extensions) {
	exts := *extFlag
	if len(exts) == 0 {
		exts = configs.First[[]string](loader, "extensions")
	}
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" || slices.Contains(ret, ext) {
			continue
		}
		ret = append(ret, ext)
	}
	if len(ret) == 0 {
		ret = slices.Clone(DefaultExtensions)
	}
	return
}
