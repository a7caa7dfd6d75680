package math

import "github.com/spaghettifunk/quill/engine/core"

// GeometryGenerateNormals writes a face normal onto the three vertices of
// every triangle in the index list.
func GeometryGenerateNormals(vertices []Vertex3D, indices []uint16) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		c := edge1.Cross(edge2)
		normal := c.Normalized()

		// NOTE: This just generates a face normal. Smoothing out should be done in a separate pass if desired.
		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

// GeometryGenerateTangents derives per-triangle tangents from the texture
// coordinate gradients and writes them onto the triangle's vertices.
func GeometryGenerateTangents(vertices []Vertex3D, indices []uint16) []Vertex3D {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		deltaU1 := vertices[i1].Texcoord.X - vertices[i0].Texcoord.X
		deltaV1 := vertices[i1].Texcoord.Y - vertices[i0].Texcoord.Y

		deltaU2 := vertices[i2].Texcoord.X - vertices[i0].Texcoord.X
		deltaV2 := vertices[i2].Texcoord.Y - vertices[i0].Texcoord.Y

		dividend := (deltaU1*deltaV2 - deltaU2*deltaV1)
		if kabs(dividend) < K_FLOAT_EPSILON {
			// Degenerate texture coordinates; leave the tangents alone.
			continue
		}
		fc := 1.0 / dividend

		tangent := Vec3{
			(fc * (deltaV2*edge1.X - deltaV1*edge2.X)),
			(fc * (deltaV2*edge1.Y - deltaV1*edge2.Y)),
			(fc * (deltaV2*edge1.Z - deltaV1*edge2.Z))}

		tangent = tangent.Normalized()

		sx := deltaU1
		sy := deltaU2
		tx := deltaV1
		ty := deltaV2

		handedness := 1.0
		if (tx*sy - ty*sx) < 0.0 {
			handedness = -1.0
		}

		t4 := tangent.MulScalar(float32(handedness))
		vertices[i0].Tangent = t4
		vertices[i1].Tangent = t4
		vertices[i2].Tangent = t4
	}
	return vertices
}

func Vertex3dEqual(vert0 Vertex3D, vert1 Vertex3D) bool {
	return vert0.Position.Compare(vert1.Position, K_FLOAT_EPSILON) &&
		vert0.Normal.Compare(vert1.Normal, K_FLOAT_EPSILON) &&
		vert0.Texcoord.Compare(vert1.Texcoord, K_FLOAT_EPSILON) &&
		vert0.Colour.Compare(vert1.Colour, K_FLOAT_EPSILON) &&
		vert0.Tangent.Compare(vert1.Tangent, K_FLOAT_EPSILON)
}

func reassignIndex(indices []uint16, from uint16, to uint16) {
	for i := 0; i < len(indices); i++ {
		if indices[i] == from {
			indices[i] = to
		} else if indices[i] > from {
			// Pull in all indices higher than 'from' by 1.
			indices[i]--
		}
	}
}

// GeometryDeduplicateVertices collapses positionally identical vertices and
// rewrites the index list to match. The rounded-corner generator emits
// coincident vertices where the fan arcs meet the tabs; callers that do not
// need the duplicates can merge them here.
func GeometryDeduplicateVertices(vertices []Vertex3D, indices []uint16) []Vertex3D {
	uniqueVerts := make([]Vertex3D, len(vertices))
	outVertexCount := uint16(0)

	foundCount := uint16(0)

	for v := 0; v < len(vertices); v++ {
		found := false
		for u := uint16(0); u < outVertexCount; u++ {
			if Vertex3dEqual(vertices[v], uniqueVerts[u]) {
				// Reassign indices, do not copy
				reassignIndex(indices, uint16(v)-foundCount, u)
				found = true
				foundCount++
				break
			}
		}

		if !found {
			// Copy over to unique
			uniqueVerts[outVertexCount] = vertices[v]
			outVertexCount++
		}
	}

	outVertices := uniqueVerts[:outVertexCount]

	removedCount := len(vertices) - int(outVertexCount)
	core.LogDebug("geometry deduplicate vertices: removed %d vertices, orig/now %d/%d", removedCount, len(vertices), outVertexCount)

	return outVertices
}
