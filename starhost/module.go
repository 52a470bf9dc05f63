package starhost

import (
	"github.com/reusee/bf/loaders"
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Loaders loaders.Module
}

func (Module) Host(
	registry *loaders.Registry,
	config loaders.Config,
	logger logs.Logger,
) *Host {
	return NewHost(registry, config.Factory, logger)
}
