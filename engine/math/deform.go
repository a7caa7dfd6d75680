package math

import (
	"github.com/spaghettifunk/quill/engine/core"
)

/**
 * @brief Applies a position to position transform in place over a flat vertex
 * buffer. The position is assumed to occupy the first three floats of every
 * stride sized vertex record; any remaining attributes are left untouched.
 * A trailing partial record is ignored.
 */
func ApplyDeformation(vertices []float32, stride int, deform func(Vec3) Vec3) {
	if deform == nil {
		return
	}
	if stride < 3 {
		core.LogError("%s: vertex stride must hold at least a 3 float position, got %d", core.ErrInvalidGeometryRequest.Error(), stride)
		return
	}
	for i := 0; i+stride <= len(vertices); i += stride {
		pos := deform(NewVec3(vertices[i], vertices[i+1], vertices[i+2]))
		vertices[i] = pos.X
		vertices[i+1] = pos.Y
		vertices[i+2] = pos.Z
	}
}
