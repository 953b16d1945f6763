// internal/launch/params.go
package launch

import (
	"slices"
	"sort"
)

// ControllerParam pairs a controller with its raw parameter file value.
// Files is one of: nil, string, []string, or []any holding strings.
type ControllerParam struct {
	Name  string
	Files any
}

// ControllerParams maps controllers to their parameter files.
// It is ordered: entry order defines spawn order.
type ControllerParams []ControllerParam

// Names copies the key sequence into an owned slice.
// The result is safe to append to.
func (p ControllerParams) Names() []string {
	names := make([]string, 0, len(p))
	for _, e := range p {
		names = append(names, e.Name)
	}
	return names
}

// ParamsFromMap materializes a Go map into ControllerParams.
// Go maps carry no order, so entries are sorted by name.
func ParamsFromMap(m map[string]any) ControllerParams {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(ControllerParams, 0, len(keys))
	for _, k := range keys {
		out = append(out, ControllerParam{Name: k, Files: m[k]})
	}
	return out
}

// NormalizeParamFiles converts a raw parameter file value into a list of paths.
// It never aliases the caller's slice.
func NormalizeParamFiles(v any) ([]string, error) {
	switch files := v.(type) {
	case nil:
		return nil, nil

	case string:
		if files == "" {
			return nil, nil
		}
		return []string{files}, nil

	case []string:
		return slices.Clone(files), nil

	case []any:
		out := make([]string, 0, len(files))
		for _, f := range files {
			s, ok := f.(string)
			if !ok {
				return nil, &InvalidParameterTypeError{Value: v}
			}
			out = append(out, s)
		}
		return out, nil

	default:
		return nil, &InvalidParameterTypeError{Value: v}
	}
}
