package loaders

import (
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/units"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
}

func (Module) Config(
	searchPath SearchPath,
	extensions Extensions,
	vmOptions bfconfigs.VMOptions,
	logger logs.Logger,
) Config {
	return Config{
		SearchPath: searchPath,
		Extensions: extensions,
		Factory:    units.NewFactory(vmOptions...),
		Logger:     logger,
	}
}

func (Module) Registry(
	config Config,
) *Registry {
	return NewRegistry(config)
}
