// internal/render/encode_test.go
package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tamzrod/controller-launch/internal/launch"
)

func TestArguments_SpawnWithFilesAndFlags(t *testing.T) {
	a := launch.SpawnController{
		Name:       "arm_controller",
		ParamFiles: []string{"/a.yaml", "/b.yaml"},
		Args:       []string{"--switch-timeout", "5"},
		Flags:      launch.Flags{Inactive: true},
	}

	want := []string{
		"arm_controller",
		"--param-file", "/a.yaml",
		"--param-file", "/b.yaml",
		"--inactive",
		"--switch-timeout", "5",
		"--controller-manager", "$(var controller_manager_name)",
		"--controller-manager-timeout", "$(var controller_manager_timeout)",
	}

	if diff := cmp.Diff(want, Arguments(a)); diff != "" {
		t.Fatalf("arguments mismatch (-want +got):\n%s", diff)
	}
}

func TestArguments_LoadOnly(t *testing.T) {
	got := Arguments(launch.LoadController{Name: "safety"})

	want := []string{
		"safety",
		"--load-only",
		"--controller-manager", "$(var controller_manager_name)",
		"--controller-manager-timeout", "$(var controller_manager_timeout)",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("arguments mismatch (-want +got):\n%s", diff)
	}
}

func TestArguments_DeclarationHasNone(t *testing.T) {
	if got := Arguments(launch.DeclareArgument{Name: "x"}); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestEncode_PreservesOrder(t *testing.T) {
	d := launch.BuildSpawnerFromList([]string{"a", "b", "c"})
	doc := Encode(d)

	want := launch.BaselineCount + 2*(d.Len()-launch.BaselineCount)
	if len(doc.Launch) != want {
		t.Fatalf("expected %d entries, got %d", want, len(doc.Launch))
	}

	for i := 0; i < launch.BaselineCount; i++ {
		if doc.Launch[i].Arg == nil || doc.Launch[i].Node != nil {
			t.Fatalf("entry %d: expected arg entry, got %+v", i, doc.Launch[i])
		}
	}

	var names []string
	for _, e := range doc.Launch[launch.BaselineCount:] {
		if e.Node == nil {
			t.Fatalf("expected node entry, got %+v", e)
		}
		if e.Node.Pkg != SpawnerPackage || e.Node.Exec != SpawnerExecutable {
			t.Fatalf("unexpected node identity: %+v", e.Node)
		}
		names = append(names, e.Node.Name)
	}

	wantNames := []string{
		"spawner_a", "spawner_a",
		"spawner_b", "spawner_b",
		"spawner_c", "spawner_c",
	}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Fatalf("node order mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_UnloadOnKillReachesNodeArgs(t *testing.T) {
	doc := Encode(launch.BuildSpawnerFromList([]string{"arm"}))

	plain := doc.Launch[launch.BaselineCount].Node
	unload := doc.Launch[launch.BaselineCount+1].Node
	if plain == nil || unload == nil {
		t.Fatalf("expected a node pair, got %+v", doc.Launch[launch.BaselineCount:])
	}

	cond := "$(var unload_on_kill)"
	if plain.Unless != cond || plain.If != "" {
		t.Fatalf("plain node conditions: if=%q unless=%q", plain.If, plain.Unless)
	}
	if unload.If != cond || unload.Unless != "" {
		t.Fatalf("unload node conditions: if=%q unless=%q", unload.If, unload.Unless)
	}

	if strings.Contains(plain.Args, UnloadOnKillFlag) {
		t.Fatalf("plain node must not unload on kill: %q", plain.Args)
	}
	if !strings.HasSuffix(unload.Args, " "+UnloadOnKillFlag) {
		t.Fatalf("expected %s in unload node args, got %q", UnloadOnKillFlag, unload.Args)
	}
}

func TestEncode_LoadNodeName(t *testing.T) {
	doc := Encode(launch.BuildLoadControllers([]string{"safety"}))

	last := doc.Launch[len(doc.Launch)-1]
	if last.Node == nil || last.Node.Name != "load_safety" {
		t.Fatalf("unexpected load entry: %+v", last)
	}
}

func TestEncode_DuplicateControllersGetDistinctNames(t *testing.T) {
	doc := Encode(launch.BuildSpawnerFromList([]string{"dup", "dup"}))

	var names []string
	for _, e := range doc.Launch[launch.BaselineCount:] {
		names = append(names, e.Node.Name)
	}

	want := []string{"spawner_dup", "spawner_dup", "spawner_dup_2", "spawner_dup_2"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("node names mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_QuotesArgumentsWithWhitespace(t *testing.T) {
	d := launch.BuildSpawnerFromList(
		[]string{"arm"},
		launch.WithParamFiles("/my robot/arm.yaml", "/it's.yaml"),
	)
	doc := Encode(d)

	args := doc.Launch[launch.BaselineCount].Node.Args
	want := `arm --param-file '/my robot/arm.yaml' --param-file '/it'\''s.yaml'` +
		" --controller-manager $(var controller_manager_name)" +
		" --controller-manager-timeout $(var controller_manager_timeout)"
	if args != want {
		t.Fatalf("args mismatch:\nwant %q\ngot  %q", want, args)
	}
}
