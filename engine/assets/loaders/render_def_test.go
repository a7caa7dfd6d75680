package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/quill/engine/renderer/metadata"
)

func writeDefFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write def file: %v", err)
	}
	return path
}

func TestRenderDefLoaderLoad(t *testing.T) {
	path := writeDefFile(t, "panel.toml", `
name = "panel"
pass = "OverDraw"
shader = "ui"
textures = ["panel_albedo", "panel_mask"]
material = "ui_panel"

[quad]
size_x = 2.0
size_y = 1.0
verts_x = 4
verts_y = 4
has_uv = true
corner_radius = 0.25
corner_verts = 3
corners = ["top_left", "top_right"]

[uniforms]
tint = [1.0, 0.5, 0.5, 1.0]
`)

	loader := &RenderDefLoader{}
	def, err := loader.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if def.Name != "panel" {
		t.Errorf("name = %q, want panel", def.Name)
	}
	if def.Pass != metadata.RenderPassOverDraw {
		t.Errorf("pass = %s, want OverDraw", def.Pass)
	}
	if def.Shader != "ui" {
		t.Errorf("shader = %q, want ui", def.Shader)
	}
	if len(def.Textures) != 2 || def.Textures[1] != "panel_mask" {
		t.Errorf("textures = %v", def.Textures)
	}
	if tint, ok := def.Uniforms["tint"]; !ok || len(tint) != 4 || tint[1] != 0.5 {
		t.Errorf("uniforms = %v", def.Uniforms)
	}
	if def.Quad == nil {
		t.Fatalf("quad not parsed")
	}
	if def.Quad.SizeX != 2.0 || def.Quad.SizeY != 1.0 {
		t.Errorf("quad size = %f x %f", def.Quad.SizeX, def.Quad.SizeY)
	}
	if def.Quad.CornerVerts != 3 || def.Quad.CornerRadius != 0.25 {
		t.Errorf("quad corners = %d verts radius %f", def.Quad.CornerVerts, def.Quad.CornerRadius)
	}
	if len(def.Quad.Corners) != 2 {
		t.Errorf("quad corner names = %v", def.Quad.Corners)
	}
}

func TestRenderDefLoaderDefaults(t *testing.T) {
	path := writeDefFile(t, "backdrop.toml", `
shader = "unlit"

[quad]
size_x = 4.0
size_y = 3.0
`)

	loader := &RenderDefLoader{}
	def, err := loader.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// The name falls back to the file name, the pass to Main and the quad
	// grid to 2x2.
	if def.Name != "backdrop" {
		t.Errorf("name = %q, want backdrop", def.Name)
	}
	if def.Pass != metadata.RenderPassMain {
		t.Errorf("pass = %s, want Main", def.Pass)
	}
	if def.Quad.VertsX != 2 || def.Quad.VertsY != 2 {
		t.Errorf("quad grid = %dx%d, want 2x2", def.Quad.VertsX, def.Quad.VertsY)
	}
	if def.Quad.HasUv {
		t.Errorf("has_uv should default to false")
	}
}

func TestRenderDefLoaderInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad corner name", `
[quad]
size_x = 1.0
size_y = 1.0
corners = ["middle"]
`},
		{"mesh and quad conflict", `
mesh = "rock_01"

[quad]
size_x = 1.0
size_y = 1.0
`},
		{"malformed toml", `size_x = = 1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDefFile(t, "bad.toml", tt.content)
			loader := &RenderDefLoader{}
			if _, err := loader.Load(path); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}
