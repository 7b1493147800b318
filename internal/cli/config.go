package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// configFile is the optional per-project configuration file, looked up
// in the working directory.
const configFile = ".parlay.toml"

// config holds the settings of the optional .parlay.toml file. Flags
// given on the command line always win over config values.
type config struct {
	Render renderConfig `toml:"render"`
}

type renderConfig struct {
	Format  string `toml:"format"`  // default output format for render
	Rankdir string `toml:"rankdir"` // default layout direction for diagrams
}

// loadConfig reads the config file from the working directory.
// A missing file is not an error and yields the zero config.
func loadConfig() (config, error) {
	var cfg config
	if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
		if os.IsNotExist(err) {
			return config{}, nil
		}
		return config{}, fmt.Errorf("load %s: %w", configFile, err)
	}
	return cfg, nil
}
