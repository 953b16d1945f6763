// internal/config/config.go
package config

import (
	"gopkg.in/yaml.v3"

	"github.com/tamzrod/controller-launch/internal/launch"
)

type Config struct {
	Launch LaunchConfig `yaml:"launch"`
}

// ---- LAUNCH ----

type LaunchConfig struct {
	ControllerManager string   `yaml:"controller_manager"`
	TimeoutS          *int     `yaml:"timeout_s"`
	ExtraArgs         []string `yaml:"extra_args"`
	Inactive          bool     `yaml:"inactive"`
	ActivateAsGroup   bool     `yaml:"activate_as_group"`

	// list form only; mapping entries carry their own files
	ParamFiles []string `yaml:"param_files"`

	Spawn       []string  `yaml:"spawn"`
	SpawnParams yaml.Node `yaml:"spawn_params"` // decoded by Load, order preserved
	Load        []string  `yaml:"load"`

	// Params is SpawnParams in document order.
	Params launch.ControllerParams `yaml:"-"`
}

// Options maps configuration onto builder options.
func (c *Config) Options() []launch.Option {
	l := c.Launch

	var opts []launch.Option
	if l.ControllerManager != "" {
		opts = append(opts, launch.WithControllerManager(l.ControllerManager))
	}
	if l.TimeoutS != nil {
		opts = append(opts, launch.WithTimeout(*l.TimeoutS))
	}
	if len(l.ExtraArgs) > 0 {
		opts = append(opts, launch.WithExtraArgs(l.ExtraArgs...))
	}
	if l.Inactive {
		opts = append(opts, launch.WithInactive())
	}
	if l.ActivateAsGroup {
		opts = append(opts, launch.WithActivateAsGroup())
	}
	return opts
}

// ListOptions is Options plus the list-form parameter files.
func (c *Config) ListOptions() []launch.Option {
	opts := c.Options()
	if len(c.Launch.ParamFiles) > 0 {
		opts = append(opts, launch.WithParamFiles(c.Launch.ParamFiles...))
	}
	return opts
}
