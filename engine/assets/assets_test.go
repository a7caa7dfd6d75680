package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/quill/engine/renderer/metadata"
)

func writeDef(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write def: %v", err)
	}
	return path
}

const panelDef = `
name = "panel"
shader = "ui"

[quad]
size_x = 2.0
size_y = 1.0
`

const backdropDef = `
shader = "unlit"

[quad]
size_x = 4.0
size_y = 3.0
`

func TestDefManagerInitialize(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "panel.toml", panelDef)
	writeDef(t, dir, "backdrop.toml", backdropDef)
	writeDef(t, dir, "notes.txt", "not a definition")

	dm, err := NewDefManager()
	if err != nil {
		t.Fatalf("failed to create def manager: %v", err)
	}
	defer dm.Shutdown()

	var reloaded []string
	dm.OnReload(func(def *metadata.RenderDef) {
		reloaded = append(reloaded, def.Name)
	})

	if err := dm.Initialize(dir); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	if got := len(dm.Names()); got != 2 {
		t.Fatalf("loaded %d definitions, want 2 (%v)", got, dm.Names())
	}
	panel, ok := dm.Get("panel")
	if !ok {
		t.Fatalf("panel definition missing")
	}
	if panel.Shader != "ui" || panel.Quad == nil {
		t.Errorf("panel definition incomplete: %+v", panel)
	}
	// The unnamed definition takes its file name.
	if _, ok := dm.Get("backdrop"); !ok {
		t.Errorf("backdrop definition missing")
	}
	if len(reloaded) != 2 {
		t.Errorf("reload callbacks fired %d times, want 2", len(reloaded))
	}
}

func TestDefManagerHandleEvent(t *testing.T) {
	dir := t.TempDir()
	path := writeDef(t, dir, "panel.toml", panelDef)

	// Drive the event handling directly, without the watcher, so the test
	// stays deterministic.
	dm, err := NewDefManager()
	if err != nil {
		t.Fatalf("failed to create def manager: %v", err)
	}
	defer dm.Shutdown()
	if err := dm.loadFile(path); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// A rewrite with a larger quad replaces the stored definition.
	writeDef(t, dir, "panel.toml", `
name = "panel"
shader = "ui"

[quad]
size_x = 8.0
size_y = 8.0
`)
	dm.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})

	panel, ok := dm.Get("panel")
	if !ok {
		t.Fatalf("panel definition missing after reload")
	}
	if panel.Quad.SizeX != 8.0 {
		t.Errorf("panel quad size_x = %f, want 8.0", panel.Quad.SizeX)
	}

	// Removal drops the definition.
	dm.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Remove})
	if _, ok := dm.Get("panel"); ok {
		t.Errorf("panel definition should be gone after removal")
	}

	// Events for non definition files are ignored.
	dm.handleEvent(fsnotify.Event{Name: filepath.Join(dir, "notes.txt"), Op: fsnotify.Write})
}

func TestDefManagerWatchReload(t *testing.T) {
	dir := t.TempDir()

	dm, err := NewDefManager()
	if err != nil {
		t.Fatalf("failed to create def manager: %v", err)
	}
	defer dm.Shutdown()
	if err := dm.Initialize(dir); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	writeDef(t, dir, "late.toml", backdropDef)

	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, ok := dm.Get("late"); ok {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("definition created after initialization was never picked up")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestDefManagerWatchNewSubdirectory(t *testing.T) {
	dir := t.TempDir()

	dm, err := NewDefManager()
	if err != nil {
		t.Fatalf("failed to create def manager: %v", err)
	}
	defer dm.Shutdown()
	if err := dm.Initialize(dir); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	// A directory created after initialization must be watched, so a
	// definition placed inside it still gets loaded.
	sub := filepath.Join(dir, "ui")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		// Rewriting on every poll covers the window between the directory
		// event and the watch actually being added.
		writeDef(t, sub, "late.toml", backdropDef)
		if _, ok := dm.Get("late"); ok {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("definition in a subdirectory created after initialization was never loaded")
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func TestDefManagerShutdownTwice(t *testing.T) {
	dm, err := NewDefManager()
	if err != nil {
		t.Fatalf("failed to create def manager: %v", err)
	}
	if err := dm.Shutdown(); err != nil {
		t.Fatalf("first shutdown failed: %v", err)
	}
	if err := dm.Shutdown(); err == nil {
		t.Errorf("second shutdown should fail")
	}
}
