package babbageconfigs

import (
	"github.com/reusee/babbage/configs"
)

// LogLevel is the configured diagnostic level name. -log-* flags win over it.
type LogLevel string

func (Module) LogLevel(
	loader configs.Loader,
) LogLevel {
	return LogLevel(configs.First[string](loader, "log_level"))
}
