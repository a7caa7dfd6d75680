package math

import (
	m "math"
	"testing"
)

func TestGeometryGenerateTangents(t *testing.T) {
	vertices := []Vertex3D{
		{Position: Vec3{0, 0, 0}, Texcoord: Vec2{0, 0}},
		{Position: Vec3{1, 0, 0}, Texcoord: Vec2{1, 0}},
		{Position: Vec3{0, 1, 0}, Texcoord: Vec2{0, 1}},
	}
	indices := []uint16{0, 1, 2}

	vertices = GeometryGenerateTangents(vertices, indices)
	for i, v := range vertices {
		length := v.Tangent.Length()
		if m.IsNaN(float64(length)) || kabs(length-1) > K_FLOAT_EPSILON {
			t.Errorf("vertex %d tangent = %+v, want unit length", i, v.Tangent)
		}
	}
}

func TestGeometryGenerateTangentsDegenerateUvs(t *testing.T) {
	// All three texture coordinates coincide, so the gradient determinant is
	// zero. The triangle is skipped instead of producing NaN tangents.
	vertices := []Vertex3D{
		{Position: Vec3{0, 0, 0}, Texcoord: Vec2{0.25, 0.75}},
		{Position: Vec3{1, 0, 0}, Texcoord: Vec2{0.25, 0.75}},
		{Position: Vec3{0, 1, 0}, Texcoord: Vec2{0.25, 0.75}},
	}
	indices := []uint16{0, 1, 2}

	vertices = GeometryGenerateTangents(vertices, indices)
	for i, v := range vertices {
		if v.Tangent != (Vec3{}) {
			t.Errorf("vertex %d tangent = %+v, want untouched zero tangent", i, v.Tangent)
		}
	}
}
