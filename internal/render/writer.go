// internal/render/writer.go
package render

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tamzrod/controller-launch/internal/launch"
)

// ErrFileExists is returned by WriteFile when the target exists and force is not set.
var ErrFileExists = errors.New("render: launch file already exists")

type yamlWriter struct {
	w io.Writer
}

// NewYAMLWriter returns a Writer that encodes descriptions as YAML launch files.
func NewYAMLWriter(w io.Writer) Writer {
	return &yamlWriter{w: w}
}

func (y *yamlWriter) Write(d launch.Description) error {
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)

	if err := enc.Encode(Encode(d)); err != nil {
		_ = enc.Close()
		return fmt.Errorf("render: encode launch file: %w", err)
	}
	return enc.Close()
}

// WriteFile renders d into path.
// An existing file is only replaced when force is set.
func WriteFile(path string, d launch.Description, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
		return fmt.Errorf("render: open %s: %w", path, err)
	}

	if err := NewYAMLWriter(f).Write(d); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
