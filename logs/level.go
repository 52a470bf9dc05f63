package logs

import (
	"log/slog"

	"github.com/reusee/bf/cmds"
)

var level = new(slog.LevelVar)

func init() {
	level.Set(slog.LevelWarn)
	for name, l := range map[string]slog.Level{
		"-log-debug": slog.LevelDebug,
		"-log-info":  slog.LevelInfo,
		"-log-warn":  slog.LevelWarn,
		"-log-error": slog.LevelError,
	} {
		cmds.Define(name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+l.String()))
	}
}

type Level = *slog.LevelVar

func (Module) Level() Level {
	return level
}
