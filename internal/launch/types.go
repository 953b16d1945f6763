// internal/launch/types.go
package launch

import "slices"

// Kind identifies an action variant.
type Kind string

const (
	KindDeclareArgument Kind = "declare_argument"
	KindSpawnController Kind = "spawn_controller"
	KindLoadController  Kind = "load_controller"
)

// Action is one unit of work handed to the launch framework.
// The set of variants is closed: DeclareArgument, SpawnController, LoadController.
type Action interface {
	Kind() Kind

	// ControllerName is empty for actions that do not target a controller.
	ControllerName() string

	isAction()
}

// ---- DECLARATIONS ----

// DeclareArgument declares a launch argument with a default value.
type DeclareArgument struct {
	Name        string
	Default     string
	Description string
}

func (DeclareArgument) Kind() Kind             { return KindDeclareArgument }
func (DeclareArgument) ControllerName() string { return "" }
func (DeclareArgument) isAction()              {}

// ---- CONTROLLER ACTIONS ----

// Flags carried by controller actions.
// Flags only: rendering into a command line belongs to the adapter.
type Flags struct {
	Inactive        bool
	ActivateAsGroup bool
}

// SpawnController loads, configures and activates one controller.
type SpawnController struct {
	Name       string
	ParamFiles []string
	Args       []string // extra spawner arguments, verbatim
	Flags      Flags
}

func (SpawnController) Kind() Kind               { return KindSpawnController }
func (s SpawnController) ControllerName() string { return s.Name }
func (SpawnController) isAction()                {}

// LoadController loads and configures one controller without activating it.
type LoadController struct {
	Name       string
	ParamFiles []string
	Args       []string
}

func (LoadController) Kind() Kind               { return KindLoadController }
func (l LoadController) ControllerName() string { return l.Name }
func (LoadController) isAction()                {}

// ---- DESCRIPTION ----

// Description is the ordered list of actions for one launch.
// It is built once and never introspected by the builders themselves.
type Description struct {
	actions []Action
}

// NewDescription copies actions into a new Description.
func NewDescription(actions ...Action) Description {
	return Description{actions: slices.Clone(actions)}
}

// Len returns the number of actions.
func (d Description) Len() int { return len(d.actions) }

// Actions returns a copy of the action list.
func (d Description) Actions() []Action { return slices.Clone(d.actions) }

// ControllerNames returns the controller of every controller action, in order.
func (d Description) ControllerNames() []string {
	var names []string
	for _, a := range d.actions {
		if n := a.ControllerName(); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// Merge concatenates descriptions in order.
// Only the first declaration of each argument name is kept.
func Merge(ds ...Description) Description {
	seen := make(map[string]struct{})
	var out []Action

	for _, d := range ds {
		for _, a := range d.actions {
			if decl, ok := a.(DeclareArgument); ok {
				if _, dup := seen[decl.Name]; dup {
					continue
				}
				seen[decl.Name] = struct{}{}
			}
			out = append(out, a)
		}
	}

	return Description{actions: out}
}
