// internal/config/load.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tamzrod/controller-launch/internal/launch"
)

// Load reads and parses a launch bundle.
// It performs no validation beyond YAML shape.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a launch bundle from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	params, err := DecodeControllerParams(&cfg.Launch.SpawnParams)
	if err != nil {
		return nil, err
	}
	cfg.Launch.Params = params

	return &cfg, nil
}

// DecodeControllerParams decodes a YAML mapping into ControllerParams,
// keeping document order.
// Values are decoded generically; their types are checked by Validate.
func DecodeControllerParams(n *yaml.Node) (launch.ControllerParams, error) {
	if n == nil || n.Kind == 0 {
		return nil, nil
	}
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("spawn_params: expected mapping at line %d", n.Line)
	}

	out := make(launch.ControllerParams, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]

		var name string
		if err := key.Decode(&name); err != nil {
			return nil, fmt.Errorf("spawn_params: key at line %d: %w", key.Line, err)
		}

		var files any
		if err := val.Decode(&files); err != nil {
			return nil, fmt.Errorf("spawn_params: %q: %w", name, err)
		}

		out = append(out, launch.ControllerParam{Name: name, Files: files})
	}

	return out, nil
}
