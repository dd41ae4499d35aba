package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

const (
	YAMLFile = "cflat.yml"
	TOMLFile = "cflat.toml"
)

type Debug struct {
	Tokens bool `yaml:"tokens" toml:"tokens"`
	AST    bool `yaml:"ast" toml:"ast"`
}

// Module is the project file found next to the sources.
type Module struct {
	Package string `yaml:"package" toml:"package"`
	Debug   Debug  `yaml:"debug" toml:"debug"`
	Color   *bool  `yaml:"color,omitempty" toml:"color,omitempty"`
}

// UseColor reports whether diagnostics should be colored. Defaults to true.
func (m Module) UseColor() bool {
	return m.Color == nil || *m.Color
}

// Load reads the project file from dir. A YAML file takes priority over a
// TOML one; when neither exists the zero Module is returned.
func Load(dir string) (Module, error) {
	var m Module

	data, err := ioutil.ReadFile(filepath.Join(dir, YAMLFile))
	if err == nil {
		if err := yaml.Unmarshal(data, &m); err != nil {
			return Module{}, fmt.Errorf("error reading %s: %w", YAMLFile, err)
		}
		return m, nil
	}
	if !os.IsNotExist(err) {
		return Module{}, fmt.Errorf("error reading %s: %w", YAMLFile, err)
	}

	data, err = ioutil.ReadFile(filepath.Join(dir, TOMLFile))
	if os.IsNotExist(err) {
		return Module{}, nil
	}
	if err == nil {
		_, err = toml.Decode(string(data), &m)
	}
	if err != nil {
		return Module{}, fmt.Errorf("error reading %s: %w", TOMLFile, err)
	}

	return m, nil
}

// Init writes a fresh YAML project file for name into dir.
func Init(dir, name string) error {
	if name == "" {
		return fmt.Errorf("no module name provided")
	}

	out, err := yaml.Marshal(Module{Package: name})
	if err != nil {
		return fmt.Errorf("error creating %s: %w", YAMLFile, err)
	}

	err = ioutil.WriteFile(filepath.Join(dir, YAMLFile), out, 0644)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", YAMLFile, err)
	}

	return nil
}
