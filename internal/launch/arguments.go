// internal/launch/arguments.go
package launch

// Baseline launch arguments.
// Every description opens with these declarations, in this order.
// The set is a contract with the host launch framework and MUST NOT change.
// Only default values may be overridden, through options.

// ---- ARGUMENT NAMES ----

// ArgControllerManager names the controller manager node the spawner talks to.
const ArgControllerManager = "controller_manager_name"

// ArgUnloadOnKill controls whether controllers are unloaded when the spawner is killed.
const ArgUnloadOnKill = "unload_on_kill"

// ArgControllerManagerTimeout is the spawner wait for the controller manager, in seconds.
const ArgControllerManagerTimeout = "controller_manager_timeout"

// ---- DEFAULTS ----

const DefaultControllerManager = "controller_manager"
const DefaultUnloadOnKill = "false"
const DefaultControllerManagerTimeout = "10"

// ---- COUNT ----

// BaselineCount is the number of declarations emitted before any controller action.
const BaselineCount = 3

// baseline returns fresh copies of the baseline declarations.
func baseline(o options) []Action {
	manager := DefaultControllerManager
	if o.controllerManager != "" {
		manager = o.controllerManager
	}
	timeout := DefaultControllerManagerTimeout
	if o.timeout != "" {
		timeout = o.timeout
	}

	return []Action{
		DeclareArgument{
			Name:        ArgControllerManager,
			Default:     manager,
			Description: "Controller manager node name",
		},
		DeclareArgument{
			Name:        ArgUnloadOnKill,
			Default:     DefaultUnloadOnKill,
			Description: "Unload controllers when the spawner is killed",
		},
		DeclareArgument{
			Name:        ArgControllerManagerTimeout,
			Default:     timeout,
			Description: "Time to wait for the controller manager, in seconds",
		},
	}
}
