package babbageconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/babbage/configs"
	"github.com/reusee/babbage/logs"
)

//go:embed schema.cue
var Schema string

var FileNames = []string{
	"babbage.cue",
	".babbage.cue",
}

// ConfigPaths lists existing config files, most specific first.
type ConfigPaths []string

func (Module) ConfigPaths() ConfigPaths {
	var paths []string
	add := func(dir string) {
		for _, filename := range FileNames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	// working directory
	if dir, err := os.Getwd(); err == nil {
		add(dir)
	}

	// user config dir
	if dir, err := os.UserConfigDir(); err == nil {
		add(dir)
	}

	// system wide
	add("/etc")

	return paths
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	paths ConfigPaths,
) configs.Loader {
	if len(paths) > 0 {
		logger.Debug("config files",
			"paths", []string(paths),
		)
	}
	return configs.NewLoader(paths, Schema)
}
