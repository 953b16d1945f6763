// internal/render/encode.go
package render

import (
	"strconv"
	"strings"

	"github.com/tamzrod/controller-launch/internal/launch"
)

// Spawner node identity inside the host framework.
// These values define the contract and MUST NOT be configurable.
const (
	SpawnerPackage    = "controller_manager"
	SpawnerExecutable = "spawner"
	SpawnerOutput     = "screen"
)

// Arguments builds the spawner command line for one controller action.
// Declarations have no command line: nil is returned.
// No IO. No side effects.
func Arguments(a launch.Action) []string {
	var (
		name  string
		files []string
		extra []string
		flags []string
	)

	switch v := a.(type) {
	case launch.SpawnController:
		name, files, extra = v.Name, v.ParamFiles, v.Args
		if v.Flags.Inactive {
			flags = append(flags, "--inactive")
		}
		if v.Flags.ActivateAsGroup {
			flags = append(flags, "--activate-as-group")
		}
	case launch.LoadController:
		name, files, extra = v.Name, v.ParamFiles, v.Args
		flags = append(flags, "--load-only")
	default:
		return nil
	}

	args := []string{name}
	for _, f := range files {
		args = append(args, "--param-file", f)
	}
	args = append(args, flags...)
	args = append(args, extra...)
	args = append(args,
		"--controller-manager", substitution(launch.ArgControllerManager),
		"--controller-manager-timeout", substitution(launch.ArgControllerManagerTimeout),
	)

	return args
}

// UnloadOnKillFlag is appended to the spawner command line of the node
// guarded by the unload_on_kill launch argument.
const UnloadOnKillFlag = "--unload-on-kill"

// Encode converts a Description into a YAML launch document.
// Action order is preserved.
// Each controller action yields a pair of nodes sharing one name: exactly one
// of them runs, selected by the unload_on_kill launch argument.
func Encode(d launch.Description) Document {
	doc := Document{}
	seen := make(map[string]int)

	for _, a := range d.Actions() {
		switch v := a.(type) {
		case launch.DeclareArgument:
			doc.Launch = append(doc.Launch, Entry{
				Arg: &ArgEntry{
					Name:        v.Name,
					Default:     v.Default,
					Description: v.Description,
				},
			})
		default:
			name := nodeName(a, seen)
			args := Arguments(a)
			cond := substitution(launch.ArgUnloadOnKill)

			doc.Launch = append(doc.Launch,
				Entry{Node: &NodeEntry{
					Pkg:    SpawnerPackage,
					Exec:   SpawnerExecutable,
					Name:   name,
					Output: SpawnerOutput,
					Args:   commandLine(args),
					Unless: cond,
				}},
				Entry{Node: &NodeEntry{
					Pkg:    SpawnerPackage,
					Exec:   SpawnerExecutable,
					Name:   name,
					Output: SpawnerOutput,
					Args:   commandLine(append(args, UnloadOnKillFlag)),
					If:     cond,
				}},
			)
		}
	}

	return doc
}

func substitution(arg string) string {
	return "$(var " + arg + ")"
}

func isSubstitution(s string) bool {
	return strings.HasPrefix(s, "$(") && strings.HasSuffix(s, ")")
}

// commandLine joins args into one launch-file argument line.
// Arguments holding whitespace or quotes are single-quoted shell style;
// substitutions are left for the launch framework to expand.
func commandLine(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, quote(arg))
	}
	return strings.Join(quoted, " ")
}

func quote(arg string) string {
	if arg == "" {
		return "''"
	}
	if isSubstitution(arg) || !strings.ContainsAny(arg, " \t\n\"'\\") {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

// nodeName derives the node name from the controller and action kind.
// A controller listed more than once gets a numeric suffix from its second
// occurrence on, so names stay unique across pairs.
func nodeName(a launch.Action, seen map[string]int) string {
	prefix := "spawner_"
	if a.Kind() == launch.KindLoadController {
		prefix = "load_"
	}

	name := prefix + a.ControllerName()
	seen[name]++
	if n := seen[name]; n > 1 {
		return name + "_" + strconv.Itoa(n)
	}
	return name
}
