// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/controller-launch/internal/launch"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	l := cfg.Launch

	// ------------------------------------------------------------
	// CONTROLLER MANAGER
	// ------------------------------------------------------------

	// absent is fine (Normalize fills the default), blank is not
	if l.ControllerManager != "" && strings.TrimSpace(l.ControllerManager) == "" {
		return fmt.Errorf("controller_manager must not be blank")
	}

	if l.TimeoutS != nil && *l.TimeoutS < 0 {
		return fmt.Errorf("timeout_s must be >= 0, got %d", *l.TimeoutS)
	}

	// ------------------------------------------------------------
	// CONTROLLER NAMES
	// ------------------------------------------------------------

	// duplicates inside one list are allowed: uniqueness is not enforced
	for i, name := range l.Spawn {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("spawn[%d]: controller name is empty", i)
		}
	}
	for i, name := range l.Load {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("load[%d]: controller name is empty", i)
		}
	}

	// ------------------------------------------------------------
	// PARAMETER FILES (MAPPING FORM)
	// ------------------------------------------------------------

	listed := make(map[string]struct{}, len(l.Spawn))
	for _, name := range l.Spawn {
		listed[strings.TrimSpace(name)] = struct{}{}
	}

	for _, p := range l.Params {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("spawn_params: controller name is empty")
		}

		if _, err := launch.NormalizeParamFiles(p.Files); err != nil {
			return fmt.Errorf("spawn_params: %w", &launch.InvalidParameterTypeError{
				Controller: p.Name,
				Value:      p.Files,
			})
		}

		if _, exists := listed[strings.TrimSpace(p.Name)]; exists {
			return fmt.Errorf(
				"controller %q is listed in both spawn and spawn_params",
				p.Name,
			)
		}
	}

	return nil
}
