package math

import (
	"github.com/spaghettifunk/quill/engine/core"
)

/**
 * @brief Bitmask representing a set of quad corners. The corners are named as
 * if looking down the -z axis: +x = right and +y = top.
 */
type CornerMask uint32

const (
	CornerMaskNone        CornerMask = 0
	CornerMaskTopRight    CornerMask = 1 << 0
	CornerMaskBottomRight CornerMask = 1 << 1
	CornerMaskBottomLeft  CornerMask = 1 << 2
	CornerMaskTopLeft     CornerMask = 1 << 3
	CornerMaskAll         CornerMask = CornerMaskTopRight | CornerMaskBottomRight | CornerMaskBottomLeft | CornerMaskTopLeft
)

// Union returns the set of corners present in either mask.
func (cm CornerMask) Union(other CornerMask) CornerMask {
	return cm | other
}

// Intersect returns the set of corners present in both masks.
func (cm CornerMask) Intersect(other CornerMask) CornerMask {
	return cm & other
}

// Has reports whether every corner in `corners` is present in the mask.
func (cm CornerMask) Has(corners CornerMask) bool {
	return cm&corners == corners
}

/**
 * @brief The capability a vertex type must expose to be usable with
 * TesselatedQuadVertices. The generator only ever writes positions and
 * texture coordinates; it never reads a vertex back, so the memory layout
 * of the concrete type is entirely up to the caller.
 */
type QuadVertex interface {
	SetPosition(x, y, z float32)
	SetUv0(u, v float32)
}

/**
 * @brief Constrains P to a pointer to V which carries the QuadVertex
 * capability, so the generator can fill a value slice in place.
 */
type QuadVertexPtr[V any] interface {
	*V
	QuadVertex
}

/**
 * @brief Returns the exact number of vertices TesselatedQuadVertices produces
 * for the given grid resolution and corner vertex count. Generation fills
 * exactly this many slots. Note the corner mask plays no part here: masked
 * corners change vertex positions, never the count.
 */
func TesselatedQuadVertexCount(numVertsX, numVertsY, cornerVerts int) int {
	num_interior_verts_x := numVertsX
	num_interior_verts_y := numVertsY
	num_corner_verts := 0
	if cornerVerts > 0 {
		num_interior_verts_x = numVertsX - 2
		num_interior_verts_y = numVertsY - 2
		num_corner_verts = (4 * cornerVerts) + (2 * num_interior_verts_x) + (2 * num_interior_verts_y)
	}
	return (num_interior_verts_x * num_interior_verts_y) + num_corner_verts
}

// validateQuadGrid applies the shared resolution rules for the vertex and
// index generators. Failures are logged once and the caller returns empty.
func validateQuadGrid(numVertsX, numVertsY, cornerVerts int) bool {
	if cornerVerts > 0 {
		// Two additional verts are reserved in each dimension for the "tabs"
		// that overhang the central quad on the sides for the corner fans to
		// connect to.
		if numVertsX < 4 || numVertsY < 4 {
			core.LogError("%s: num_verts_x and num_verts_y must be >= 4 when corner verts are requested", core.ErrInvalidGeometryRequest.Error())
			return false
		}
	} else if cornerVerts == 0 {
		if numVertsX < 2 || numVertsY < 2 {
			core.LogError("%s: num_verts_x and num_verts_y must be >= 2", core.ErrInvalidGeometryRequest.Error())
			return false
		}
	} else {
		core.LogError("%s: must have >= 0 corner vertices", core.ErrInvalidGeometryRequest.Error())
		return false
	}
	return true
}

/**
 * @brief Generates the vertices of a tessellated rectangle. The vertices form
 * a numVertsX by numVertsY grid with positions from -size/2 to size/2 in each
 * axis. If cornerVerts > 0, triangle fans of radius cornerRadius are generated
 * around the corners of the quad. cornerRadius is assumed to be small compared
 * to sizeX and sizeY, otherwise the additional corner geometry will not deform
 * correctly. cornerMask only applies when cornerVerts > 0 and does not affect
 * the number of vertices generated, only their positions.
 *
 * Vertices are laid out in column major order:
 *
 *  2---5---8
 *  |   |   |
 *  1---4---7
 *  |   |   |
 *  0---3---6
 *
 * When cornerVerts is nonzero, the grid shrinks to the interior rectangle
 * (inset by cornerRadius on every side) and tab vertices are added on the
 * outer edge: one full column on the left (A-B) and right (G-H), and one
 * extra point at the bottom and top of every interior column (C-D, E-F).
 *
 *      D       F
 *      +-------+        ^
 *      |       |        | cornerRadius
 * B +--+-------+--+ H   v
 *   |  |       |  |
 * A +--+-------+--+ G
 *      +-------+
 *      C       E
 *
 * The fan vertices for all four corners follow, interleaved per arc step.
 * On invalid input (negative size, insufficient resolution, negative corner
 * verts count) a diagnostic is logged and an empty slice is returned.
 */
func TesselatedQuadVertices[V any, P QuadVertexPtr[V]](sizeX, sizeY float32, numVertsX, numVertsY int, cornerRadius float32, cornerVerts int, cornerMask CornerMask) []V {
	if sizeX < 0.0 || sizeY < 0.0 {
		core.LogError("%s: size of quad has to be >= 0.0", core.ErrInvalidGeometryRequest.Error())
		return []V{}
	}
	// Never an error; a radius beyond half the smaller extent is clamped.
	cornerRadius = Min(cornerRadius, Min(sizeX, sizeY)/2.0)
	if !validateQuadGrid(numVertsX, numVertsY, cornerVerts) {
		return []V{}
	}

	half_size_x := sizeX / 2.0
	half_size_y := sizeY / 2.0
	interior_size_x := sizeX - (2.0 * cornerRadius)
	interior_size_y := sizeY - (2.0 * cornerRadius)
	half_interior_size_x := interior_size_x / 2.0
	half_interior_size_y := interior_size_y / 2.0
	u_texture_inset := cornerRadius / sizeX
	u_texture_range := 1.0 - (2.0 * u_texture_inset)
	v_texture_inset := cornerRadius / sizeY
	v_texture_range := 1.0 - (2.0 * v_texture_inset)
	z := float32(0.0)
	num_interior_verts_x := numVertsX
	num_interior_verts_y := numVertsY
	if cornerVerts > 0 {
		num_interior_verts_x = numVertsX - 2
		num_interior_verts_y = numVertsY - 2
	}

	// The radiused corners add cornerVerts vertices for each of the four
	// corners as well as an additional line of interior verts on each side
	// of the quad for the tabs.
	num_verts := TesselatedQuadVertexCount(numVertsX, numVertsY, cornerVerts)
	vertices := make([]V, num_verts)
	index := 0

	if cornerVerts > 0 {
		// Build the left tab, the column described by A and B in the diagram.
		for y := 0; y < num_interior_verts_y; y++ {
			y_fraction := float32(y) / float32(num_interior_verts_y-1)
			y_val := (y_fraction * interior_size_y) - half_interior_size_y
			P(&vertices[index]).SetPosition(-half_size_x, y_val, z)
			P(&vertices[index]).SetUv0(0.0, v_texture_inset+((1.0-y_fraction)*v_texture_range))
			index++
		}
	}

	// Build the interior rectangle verts plus the vertical tabs if needed,
	// the square described by CDFE in the diagram.
	for x := 0; x < num_interior_verts_x; x++ {
		// Calculate what fraction of the entire rect this vertex is at.
		x_fraction := float32(x) / float32(num_interior_verts_x-1)
		// Then use that fraction to calculate the actual position.
		x_val := (x_fraction * interior_size_x) - half_interior_size_x
		// And lastly the texture u coordinate.
		u_val := u_texture_inset + (x_fraction * u_texture_range)

		// Append a lower tab vertex if needed.
		if cornerVerts > 0 {
			P(&vertices[index]).SetPosition(x_val, -half_size_y, z)
			P(&vertices[index]).SetUv0(u_val, 1.0)
			index++
		}

		for y := 0; y < num_interior_verts_y; y++ {
			y_fraction := float32(y) / float32(num_interior_verts_y-1)
			y_val := (y_fraction * interior_size_y) - half_interior_size_y

			P(&vertices[index]).SetPosition(x_val, y_val, z)
			// Flip the v coordinate, texture space has 0,0 at the top left.
			P(&vertices[index]).SetUv0(u_val, v_texture_inset+((1.0-y_fraction)*v_texture_range))
			index++
		}

		// Append an upper tab vertex if needed.
		if cornerVerts > 0 {
			P(&vertices[index]).SetPosition(x_val, half_size_y, z)
			P(&vertices[index]).SetUv0(u_val, 0.0)
			index++
		}
	}

	if cornerVerts > 0 {
		// Build the right tab as described by G and H.
		for y := 0; y < num_interior_verts_y; y++ {
			y_fraction := float32(y) / float32(num_interior_verts_y-1)
			y_val := (y_fraction * interior_size_y) - half_interior_size_y
			P(&vertices[index]).SetPosition(half_size_x, y_val, z)
			P(&vertices[index]).SetUv0(1.0, v_texture_inset+((1.0-y_fraction)*v_texture_range))
			index++
		}

		// Compute fan vertices.
		lower_left_xy := NewVec2(-half_interior_size_x, -half_interior_size_y)
		upper_left_xy := NewVec2(-half_interior_size_x, half_interior_size_y)
		lower_right_xy := NewVec2(half_interior_size_x, -half_interior_size_y)
		upper_right_xy := NewVec2(half_interior_size_x, half_interior_size_y)
		u_texture_far_inset := 1.0 - u_texture_inset
		v_texture_far_inset := 1.0 - v_texture_inset
		lower_left_uv := NewVec2(u_texture_inset, v_texture_far_inset)
		upper_left_uv := NewVec2(u_texture_inset, v_texture_inset)
		lower_right_uv := NewVec2(u_texture_far_inset, v_texture_far_inset)
		upper_right_uv := NewVec2(u_texture_far_inset, v_texture_inset)
		uv_scale := NewVec2(1.0/sizeX, -1.0/sizeY)

		// A corner excluded from the mask keeps its vertices but has the arc
		// offset projected out onto the bounding square, so the corner stays
		// sharp and the vertex count stays constant.
		unround_corner := func(offset Vec2) Vec2 {
			absx := kabs(offset.X)
			absy := kabs(offset.Y)
			scale := cornerRadius / Max(absx, absy)
			return offset.MulScalar(scale)
		}

		for i := 0; i < cornerVerts; i++ {
			theta := (float32(i+1) / float32(cornerVerts)) * K_HALF_PI
			r_sin_theta := cornerRadius * ksin(theta)
			r_cos_theta := cornerRadius * kcos(theta)

			// Compute lower left radius vertex.
			ll_offset := NewVec2(-r_sin_theta, -r_cos_theta)
			if cornerMask.Intersect(CornerMaskBottomLeft) == CornerMaskNone {
				ll_offset = unround_corner(ll_offset)
			}
			ll_xy := lower_left_xy.Add(ll_offset)
			ll_uv := lower_left_uv.Add(ll_offset.Mul(uv_scale))
			P(&vertices[index]).SetPosition(ll_xy.X, ll_xy.Y, z)
			P(&vertices[index]).SetUv0(ll_uv.X, ll_uv.Y)
			index++

			// Compute upper left radius vertex.
			ul_offset := NewVec2(-r_cos_theta, r_sin_theta)
			if cornerMask.Intersect(CornerMaskTopLeft) == CornerMaskNone {
				ul_offset = unround_corner(ul_offset)
			}
			ul_xy := upper_left_xy.Add(ul_offset)
			ul_uv := upper_left_uv.Add(ul_offset.Mul(uv_scale))
			P(&vertices[index]).SetPosition(ul_xy.X, ul_xy.Y, z)
			P(&vertices[index]).SetUv0(ul_uv.X, ul_uv.Y)
			index++

			// Compute lower right radius vertex.
			lr_offset := NewVec2(r_cos_theta, -r_sin_theta)
			if cornerMask.Intersect(CornerMaskBottomRight) == CornerMaskNone {
				lr_offset = unround_corner(lr_offset)
			}
			lr_xy := lower_right_xy.Add(lr_offset)
			lr_uv := lower_right_uv.Add(lr_offset.Mul(uv_scale))
			P(&vertices[index]).SetPosition(lr_xy.X, lr_xy.Y, z)
			P(&vertices[index]).SetUv0(lr_uv.X, lr_uv.Y)
			index++

			// Compute upper right radius vertex.
			ur_offset := NewVec2(r_sin_theta, r_cos_theta)
			if cornerMask.Intersect(CornerMaskTopRight) == CornerMaskNone {
				ur_offset = unround_corner(ur_offset)
			}
			ur_xy := upper_right_xy.Add(ur_offset)
			ur_uv := upper_right_uv.Add(ur_offset.Mul(uv_scale))
			P(&vertices[index]).SetPosition(ur_xy.X, ur_xy.Y, z)
			P(&vertices[index]).SetUv0(ur_uv.X, ur_uv.Y)
			index++
		}
	}

	// Should have filled exactly the array.
	if index != num_verts {
		core.LogFatal("tesselated quad generation filled %d of %d vertices", index, num_verts)
	}
	return vertices
}

/**
 * @brief Generates the triangle list indexing the vertices produced by
 * TesselatedQuadVertices for the same grid parameters. Every consecutive
 * triple is one triangle, wound counter-clockwise when viewed down the -z
 * axis. The triangulation covers the interior grid (two triangles per cell),
 * the four tab strips bridging the interior to the outer edge, and one fan
 * per corner anchored at the matching interior corner vertex.
 *
 * The two generators share no state; they must be called with the same grid
 * and corner parameters or the index list will not match the vertex layout.
 */
func TesselatedQuadIndices(numVertsX, numVertsY, cornerVerts int) []uint16 {
	if !validateQuadGrid(numVertsX, numVertsY, cornerVerts) {
		return []uint16{}
	}
	num_verts := TesselatedQuadVertexCount(numVertsX, numVertsY, cornerVerts)
	if num_verts > 65536 {
		core.LogError("%s: %d vertices exceed the 16 bit index range", core.ErrInvalidGeometryRequest.Error(), num_verts)
		return []uint16{}
	}

	if cornerVerts == 0 {
		// Plain column major grid, two triangles per cell.
		indices := make([]uint16, 0, (numVertsX-1)*(numVertsY-1)*6)
		for x := 0; x < numVertsX-1; x++ {
			for y := 0; y < numVertsY-1; y++ {
				v00 := uint16((x * numVertsY) + y)
				v01 := uint16((x * numVertsY) + y + 1)
				v10 := uint16(((x + 1) * numVertsY) + y)
				v11 := uint16(((x + 1) * numVertsY) + y + 1)
				indices = append(indices, v00, v10, v11, v00, v11, v01)
			}
		}
		return indices
	}

	num_interior_verts_x := numVertsX - 2
	num_interior_verts_y := numVertsY - 2

	// Vertex offsets mirroring the emission order of TesselatedQuadVertices:
	// left tab column, then per interior column [bottom tab, column, top tab],
	// then the right tab column, then the interleaved corner fan vertices.
	left_tab := func(y int) uint16 {
		return uint16(y)
	}
	column_start := func(x int) int {
		return num_interior_verts_y + (x * (num_interior_verts_y + 2))
	}
	bottom_tab := func(x int) uint16 {
		return uint16(column_start(x))
	}
	interior := func(x, y int) uint16 {
		return uint16(column_start(x) + 1 + y)
	}
	top_tab := func(x int) uint16 {
		return uint16(column_start(x) + 1 + num_interior_verts_y)
	}
	right_tab_start := num_interior_verts_y + (num_interior_verts_x * (num_interior_verts_y + 2))
	right_tab := func(y int) uint16 {
		return uint16(right_tab_start + y)
	}
	fan_start := right_tab_start + num_interior_verts_y
	// Fan vertices are interleaved per arc step in the order lower left,
	// upper left, lower right, upper right.
	fan := func(corner, step int) uint16 {
		return uint16(fan_start + (step * 4) + corner)
	}

	num_triangles := 2*(num_interior_verts_x-1)*(num_interior_verts_y-1) +
		4*(num_interior_verts_y-1) + 4*(num_interior_verts_x-1) +
		4*cornerVerts
	indices := make([]uint16, 0, num_triangles*3)

	// Interior grid.
	for x := 0; x < num_interior_verts_x-1; x++ {
		for y := 0; y < num_interior_verts_y-1; y++ {
			indices = append(indices,
				interior(x, y), interior(x+1, y), interior(x+1, y+1),
				interior(x, y), interior(x+1, y+1), interior(x, y+1))
		}
	}

	// Left and right tab strips.
	for y := 0; y < num_interior_verts_y-1; y++ {
		indices = append(indices,
			left_tab(y), interior(0, y), interior(0, y+1),
			left_tab(y), interior(0, y+1), left_tab(y+1))
		indices = append(indices,
			interior(num_interior_verts_x-1, y), right_tab(y), right_tab(y+1),
			interior(num_interior_verts_x-1, y), right_tab(y+1), interior(num_interior_verts_x-1, y+1))
	}

	// Bottom and top tab strips.
	for x := 0; x < num_interior_verts_x-1; x++ {
		indices = append(indices,
			bottom_tab(x), bottom_tab(x+1), interior(x+1, 0),
			bottom_tab(x), interior(x+1, 0), interior(x, 0))
		indices = append(indices,
			interior(x, num_interior_verts_y-1), interior(x+1, num_interior_verts_y-1), top_tab(x+1),
			interior(x, num_interior_verts_y-1), top_tab(x+1), top_tab(x))
	}

	// Corner fans. Each fan starts at the tab vertex sitting on the arc's
	// theta = 0 end and sweeps through the arc vertices; the arc's final
	// vertex coincides in position with the tab vertex at the other end.
	// The arcs are emitted rotating clockwise about their anchors, so the
	// triangles take the next arc vertex before the current one to keep a
	// counter-clockwise winding.
	fans := []struct {
		anchor uint16
		start  uint16
		corner int
	}{
		{interior(0, 0), bottom_tab(0), 0},
		{interior(0, num_interior_verts_y-1), left_tab(num_interior_verts_y - 1), 1},
		{interior(num_interior_verts_x-1, 0), right_tab(0), 2},
		{interior(num_interior_verts_x-1, num_interior_verts_y-1), top_tab(num_interior_verts_x - 1), 3},
	}
	for _, f := range fans {
		current := f.start
		for i := 0; i < cornerVerts; i++ {
			next := fan(f.corner, i)
			indices = append(indices, f.anchor, next, current)
			current = next
		}
	}

	return indices
}
