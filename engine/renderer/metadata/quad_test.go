package metadata

import (
	"testing"

	"github.com/spaghettifunk/quill/engine/math"
)

func TestQuadDefApplyDefaults(t *testing.T) {
	qd := &QuadDef{SizeX: 2, SizeY: 1}
	qd.ApplyDefaults()
	if qd.VertsX != 2 || qd.VertsY != 2 {
		t.Errorf("default grid = %dx%d, want 2x2", qd.VertsX, qd.VertsY)
	}
	if qd.HasUv {
		t.Errorf("has_uv should default to false")
	}
	if qd.CornerRadius != 0 || qd.CornerVerts != 0 {
		t.Errorf("corner defaults should be zero, got radius %f verts %d", qd.CornerRadius, qd.CornerVerts)
	}

	qd = &QuadDef{VertsX: 6, VertsY: 4}
	qd.ApplyDefaults()
	if qd.VertsX != 6 || qd.VertsY != 4 {
		t.Errorf("explicit grid overwritten: got %dx%d", qd.VertsX, qd.VertsY)
	}
}

func TestQuadDefCornerMask(t *testing.T) {
	tests := []struct {
		name    string
		corners []string
		want    math.CornerMask
		wantErr bool
	}{
		{"empty selects all", nil, math.CornerMaskAll, false},
		{"single corner", []string{"top_left"}, math.CornerMaskTopLeft, false},
		{"two corners", []string{"top_right", "bottom_left"}, math.CornerMaskTopRight.Union(math.CornerMaskBottomLeft), false},
		{"case insensitive", []string{"Bottom_Right"}, math.CornerMaskBottomRight, false},
		{"unknown name", []string{"center"}, math.CornerMaskNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qd := &QuadDef{Corners: tt.corners}
			mask, err := qd.CornerMask()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got mask %04b", mask)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mask != tt.want {
				t.Errorf("mask = %04b, want %04b", mask, tt.want)
			}
		})
	}
}

func TestRenderPassText(t *testing.T) {
	for pass, name := range renderPassNames {
		text, err := pass.MarshalText()
		if err != nil {
			t.Fatalf("marshal %s: %v", name, err)
		}
		var back RenderPass
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %s: %v", name, err)
		}
		if back != pass {
			t.Errorf("round trip of %s gave %s", name, back)
		}
	}

	var pass RenderPass
	if err := pass.UnmarshalText([]byte("")); err != nil {
		t.Fatalf("empty pass: %v", err)
	}
	if pass != RenderPassMain {
		t.Errorf("empty pass = %s, want Main", pass)
	}
	if err := pass.UnmarshalText([]byte("Bloom")); err == nil {
		t.Errorf("expected error for unknown pass name")
	}
}

func TestRenderDefDefaults(t *testing.T) {
	rd := &RenderDef{Quad: &QuadDef{SizeX: 1, SizeY: 1}}
	rd.ApplyDefaults()
	if rd.Pass != RenderPassMain {
		t.Errorf("pass = %s, want Main", rd.Pass)
	}
	if rd.Quad.VertsX != 2 || rd.Quad.VertsY != 2 {
		t.Errorf("nested quad defaults not applied: %dx%d", rd.Quad.VertsX, rd.Quad.VertsY)
	}
}
