package filedeps_test

import (
	"path/filepath"
	"testing"

	filedeps "github.com/pfragkiad/filedeps"
	_ "github.com/pfragkiad/filedeps/source/jsonc"
)

func TestFormatSpec_AssemblesFullTree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.cfg")
	writeFile(t, dir, "a.txt")
	writeFile(t, dir, "b.txt")
	writeFile(t, dir, "mod.so")
	writeFile(t, dir, "inner.dat")
	manifest := writeManifest(t, dir, "cfg.json", `{
		"source": "main.cfg",
		"data": {"items": ["a.txt", "b.txt"]},
		"modules": [{"path": "mod.so"}],
		"child": {"input": "inner.dat"}
	}`)

	child := filedeps.NewFormat("child").Single("input").Required().Spec()
	spec := filedeps.NewFormat("build").
		Single("source").Required().
		Multi("data/items").
		Objects("modules", "path").
		Nested("child", child).
		Spec()

	v := filedeps.NewValidator("FileValidator")
	res := v.Validate(manifest, spec)
	if res.IsFailure() {
		t.Fatalf("Validate failed: %v", res.Err())
	}
	deps := res.Value()

	if deps.Name != "build" {
		t.Fatalf("root name = %q, want build", deps.Name)
	}
	if s := deps.Single("source"); s == nil || s.File.FullPath != filepath.Join(dir, "main.cfg") {
		t.Fatalf("source dependency = %+v", s)
	}
	if m := deps.Multiple("data/items"); m == nil || len(m.Files) != 2 {
		t.Fatalf("data/items dependency = %+v", m)
	}
	if s := deps.Single("modules/path[0]"); s == nil || s.File.FileName != "mod.so" {
		t.Fatalf("modules/path[0] dependency = %+v", s)
	}
	sub := deps.Sub("child")
	if sub == nil {
		t.Fatalf("child subtree missing")
	}
	if s := sub.Single("input"); s == nil || s.File.FileName != "inner.dat" {
		t.Fatalf("child input dependency = %+v", s)
	}
}

func TestFormatSpec_OptionalNestedSkippedWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	manifest := writeManifest(t, dir, "cfg.json", `{}`)

	child := filedeps.NewFormat("child").Single("input").Spec()
	spec := filedeps.NewFormat("build").Nested("child", child).Spec()

	v := filedeps.NewValidator("FileValidator")
	res := v.Validate(manifest, spec)
	if res.IsFailure() {
		t.Fatalf("optional nested must be skipped, got %v", res.Err())
	}
	if len(res.Value().Subdependencies) != 0 {
		t.Fatalf("no subtree expected when the property is absent")
	}
}

func TestFormatSpec_RequiredNestedFailsWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	manifest := writeManifest(t, dir, "cfg.json", `{}`)

	child := filedeps.NewFormat("child").Single("input").Spec()
	spec := filedeps.NewFormat("build").Nested("child", child).Required().Spec()

	v := filedeps.NewValidator("FileValidator")
	res := v.Validate(manifest, spec)
	if res.IsSuccess() || res.Err().Code != "FileValidator.MissingChild" {
		t.Fatalf("expected FileValidator.MissingChild")
	}
}

// The first failure anywhere in the tree is the overall result; later steps
// never run.
func TestFormatSpec_FirstFailureWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt")
	manifest := writeManifest(t, dir, "cfg.json", `{
		"first": "",
		"second": "also-missing.bin"
	}`)

	spec := filedeps.NewFormat("build").
		Single("first").Required().
		Single("second").Required().
		Spec()

	v := filedeps.NewValidator("FileValidator")
	res := v.Validate(manifest, spec)
	if res.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if got := res.Err().Code; got != "FileValidator.EmptyFirst" {
		t.Fatalf("code = %q, want the first failure (FileValidator.EmptyFirst)", got)
	}
}

func TestDependencies_LookupReturnsFirstMatchOrNil(t *testing.T) {
	d := &filedeps.Dependencies{
		Name: "root",
		SingleFiles: []*filedeps.SingleFileDependency{
			{Name: "dup", File: &filedeps.SingleFile{FileName: "first"}},
			{Name: "dup", File: &filedeps.SingleFile{FileName: "second"}},
		},
	}
	if got := d.Single("dup"); got == nil || got.File.FileName != "first" {
		t.Fatalf("Single returns the first match, got %+v", got)
	}
	if d.Single("nope") != nil || d.Multiple("nope") != nil || d.Sub("nope") != nil {
		t.Fatalf("lookups return nil for unknown names")
	}
}
