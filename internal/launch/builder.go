// internal/launch/builder.go
package launch

import (
	"slices"
	"strconv"
)

// ---- OPTIONS ----

type options struct {
	controllerManager string
	timeout           string

	paramFiles []string
	extraArgs  []string
	flags      Flags
}

// Option adjusts how controller actions are built.
// Options never change the number of actions.
type Option func(*options)

// WithControllerManager overrides the default controller manager name.
func WithControllerManager(name string) Option {
	return func(o *options) { o.controllerManager = name }
}

// WithTimeout overrides the default controller manager timeout, in seconds.
func WithTimeout(seconds int) Option {
	return func(o *options) { o.timeout = strconv.Itoa(seconds) }
}

// WithParamFiles applies parameter files to every controller of a list-form build.
// Mapping-form entries keep their own files.
func WithParamFiles(files ...string) Option {
	return func(o *options) {
		o.paramFiles = append(o.paramFiles, files...)
	}
}

// WithExtraArgs appends spawner arguments verbatim to every controller action.
func WithExtraArgs(args ...string) Option {
	return func(o *options) {
		o.extraArgs = append(o.extraArgs, args...)
	}
}

// WithInactive spawns controllers configured but not activated.
func WithInactive() Option {
	return func(o *options) { o.flags.Inactive = true }
}

// WithActivateAsGroup activates all spawned controllers together.
func WithActivateAsGroup() Option {
	return func(o *options) { o.flags.ActivateAsGroup = true }
}

func collect(opts []Option) options {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// ---- BUILDERS ----

// BuildSpawnerFromList builds a spawner description for controller names.
// Output is the baseline declarations followed by one SpawnController per
// name, in input order. The caller's slice is never written to.
func BuildSpawnerFromList(names []string, opts ...Option) Description {
	o := collect(opts)
	return buildSpawners(slices.Clone(names), func(int) []string {
		return slices.Clone(o.paramFiles)
	}, o)
}

// BuildSpawnerFromMapping builds a spawner description for a controller to
// parameter-file mapping.
// Every value is validated before any action is built: on error the returned
// Description is empty and the error matches ErrInvalidParameterType.
func BuildSpawnerFromMapping(params ControllerParams, opts ...Option) (Description, error) {
	files := make([][]string, 0, len(params))
	for _, e := range params {
		f, err := NormalizeParamFiles(e.Files)
		if err != nil {
			return Description{}, &InvalidParameterTypeError{
				Controller: e.Name,
				Value:      e.Files,
			}
		}
		files = append(files, f)
	}

	o := collect(opts)
	return buildSpawners(params.Names(), func(i int) []string {
		return files[i]
	}, o), nil
}

// BuildLoadControllers builds a description that loads each controller
// without activating it.
func BuildLoadControllers(names []string, opts ...Option) Description {
	o := collect(opts)

	actions := baseline(o)
	for _, n := range names {
		actions = append(actions, LoadController{
			Name:       n,
			ParamFiles: slices.Clone(o.paramFiles),
			Args:       slices.Clone(o.extraArgs),
		})
	}

	return Description{actions: actions}
}

// buildSpawners takes ownership of names.
// paramFiles returns the files for the i-th controller.
func buildSpawners(names []string, paramFiles func(i int) []string, o options) Description {
	actions := baseline(o)
	for i, n := range names {
		actions = append(actions, SpawnController{
			Name:       n,
			ParamFiles: paramFiles(i),
			Args:       slices.Clone(o.extraArgs),
			Flags:      o.flags,
		})
	}

	return Description{actions: actions}
}
