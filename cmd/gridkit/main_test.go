package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"gridkit/config"
	"gridkit/deck"
	"gridkit/state"
)

func testEnv(t *testing.T) *state.LocalEnv {
	t.Helper()

	env := state.EnvFromContext(state.ContextWithEnv(context.Background()))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	env.Cfg = cfg
	env.Log = zaptest.NewLogger(t)
	return env
}

const buildScript = `
steps:
  - op: add_slide
    layout: Blank
  - op: add_table
    name: grid
    rows: 2
    cols: 2
  - op: set_text
    frame: grid
    cell: [1, 1]
    text: total
  - op: merge
    frame: grid
    from: [0, 0]
    to: [0, 1]
`

func TestApplyCreatesDeck(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "Build Grid.yaml")
	if err := os.WriteFile(scriptPath, []byte(buildScript), 0644); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(dir, "New Deck.xml")

	env := testEnv(t)
	if _, err := runApply(context.Background(), env, scriptPath, src, "", false); err == nil {
		t.Error("missing source accepted without create")
	}

	dst, err := runApply(context.Background(), env, scriptPath, src, "", true)
	if err != nil {
		t.Fatalf("runApply() error = %v", err)
	}
	if want := filepath.Join(dir, "new-deck-build-grid.xml"); dst != want {
		t.Errorf("destination %q, want %q", dst, want)
	}

	doc, err := deck.ReadFile(dst, nil)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var out strings.Builder
	if err := describe(&out, doc, describeOptions{cells: true, tree: true}); err != nil {
		t.Fatalf("describe() error = %v", err)
	}
	for _, want := range []string{
		"slide 0 [Blank]",
		`frame "grid"`,
		"2x2 table, 1 merged",
		"(0,0) span 1x2: \n",
		`(1,1): "total"`,
		"cell #",
		"Title and Content (fallback)",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("description misses %q:\n%s", want, out.String())
		}
	}

	if _, err := runApply(context.Background(), env, scriptPath, src, dst, true); err == nil {
		t.Error("existing destination overwritten")
	}
	env.Overwrite = true
	if _, err := runApply(context.Background(), env, scriptPath, src, dst, true); err != nil {
		t.Errorf("runApply() with overwrite error = %v", err)
	}
}

func TestApplyFailingScript(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(scriptPath, []byte("steps:\n  - op: add_slide\n    layout: Nope\n"), 0644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "out.xml")
	if _, err := runApply(context.Background(), testEnv(t), scriptPath, filepath.Join(dir, "src.xml"), dst, true); err == nil {
		t.Fatal("failing script accepted")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Error("result written for failed script")
	}
}
