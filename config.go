package gnuplot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries session defaults loadable from a YAML file, so deploy
// environments can point the library at their gnuplot build without code
// changes.
//
// Example file:
//
//	executable: /opt/gnuplot/bin/gnuplot
//	terminal: pngcairo
//	scratch_dir: /var/tmp/plots
//	debug: false
type Config struct {
	Executable string `yaml:"executable"`
	Terminal   string `yaml:"terminal"`
	ScratchDir string `yaml:"scratch_dir"`
	Debug      bool   `yaml:"debug"`
}

// LoadConfig reads a YAML config file. Use the result with [WithConfig].
func LoadConfig(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}
