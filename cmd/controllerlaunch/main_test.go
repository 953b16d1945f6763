// cmd/controllerlaunch/main_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) error {
	t.Helper()

	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func TestSpawnCommand_WritesLaunchFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "spawn.launch.yaml")

	require.NoError(t, run(t, "--output", out, "spawn", "arm_controller", "gripper_controller"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "name: spawner_arm_controller")
	require.Contains(t, string(data), "name: spawner_gripper_controller")
}

func TestSpawnCommand_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")

	require.NoError(t, run(t, "--output", first, "spawn", "--param-file", "/first.yaml", "--inactive", "arm"))
	require.NoError(t, run(t, "--output", second, "spawn", "arm"))

	data, err := os.ReadFile(second)
	require.NoError(t, err)
	require.NotContains(t, string(data), "/first.yaml")
	require.NotContains(t, string(data), "--inactive")
}

func TestGenerateCommand_RejectsInvalidParams(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bundle.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
launch:
  spawn_params:
    controller:
      type: invalid
`), 0o644))

	err := run(t, "--output", filepath.Join(dir, "out.yaml"), "generate", "--config", cfgPath)
	require.ErrorContains(t, err, "Invalid controller_params_file type")
}

func TestGenerateCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bundle.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
launch:
  spawn: [joint_state_broadcaster]
  load: [safety_controller]
`), 0o644))

	out := filepath.Join(dir, "out.yaml")
	require.NoError(t, run(t, "--output", out, "generate", "--config", cfgPath))
	require.Error(t, run(t, "--output", out, "generate", "--config", cfgPath))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "name: load_safety_controller")
}
