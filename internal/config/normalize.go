// internal/config/normalize.go
package config

import (
	"strconv"
	"strings"

	"github.com/tamzrod/controller-launch/internal/launch"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	l := &cfg.Launch

	// Defaults mirror the baseline launch arguments.
	l.ControllerManager = strings.TrimSpace(l.ControllerManager)
	if l.ControllerManager == "" {
		l.ControllerManager = launch.DefaultControllerManager
	}

	if l.TimeoutS == nil {
		def, _ := strconv.Atoi(launch.DefaultControllerManagerTimeout)
		l.TimeoutS = &def
	}

	l.Spawn = trimAll(l.Spawn)
	l.Load = trimAll(l.Load)
	l.ParamFiles = dropEmpty(l.ParamFiles)

	for i := range l.Params {
		l.Params[i].Name = strings.TrimSpace(l.Params[i].Name)
	}
}

func trimAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

func dropEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
