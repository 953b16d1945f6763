// internal/launch/errors.go
package launch

import (
	"errors"
	"fmt"
)

// ErrInvalidParameterType is returned when a controller's parameter file value
// is neither absent, a string, nor a sequence of strings.
var ErrInvalidParameterType = errors.New("Invalid controller_params_file type")

// InvalidParameterTypeError reports the offending controller and value.
type InvalidParameterTypeError struct {
	Controller string
	Value      any
}

func (e *InvalidParameterTypeError) Error() string {
	if e.Controller == "" {
		return fmt.Sprintf("%s: %T", ErrInvalidParameterType, e.Value)
	}
	return fmt.Sprintf("%s for controller %q: %T", ErrInvalidParameterType, e.Controller, e.Value)
}

func (e *InvalidParameterTypeError) Unwrap() error {
	return ErrInvalidParameterType
}
