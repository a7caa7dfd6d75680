package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/**
 * @brief Represents the extents of a 2d object.
 */
type Extents2D struct {
	/** @brief The minimum extents of the object. */
	Min Vec2
	/** @brief The maximum extents of the object. */
	Max Vec2
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}

/**
 * @brief Represents a single vertex in 3D space.
 */
type Vertex3D struct {
	/** @brief The position of the vertex */
	Position Vec3
	/** @brief The normal of the vertex. */
	Normal Vec3
	/** @brief The texture coordinate of the vertex. */
	Texcoord Vec2
	/** @brief The colour of the vertex. */
	Colour Vec4
	/** @brief The tangent of the vertex. */
	Tangent Vec3
}

/**
 * @brief Represents a single vertex in 2D space.
 */
type Vertex2D struct {
	/** @brief The position of the vertex */
	Position Vec2
	/** @brief The texture coordinate of the vertex. */
	Texcoord Vec2
}

// SetPosition writes a 3D position onto the vertex.
func (v *Vertex3D) SetPosition(x, y, z float32) {
	v.Position = Vec3{x, y, z}
}

// SetUv0 writes the first texture coordinate channel onto the vertex.
func (v *Vertex3D) SetUv0(u, vc float32) {
	v.Texcoord = Vec2{u, vc}
}

// SetPosition writes a position onto the vertex. The z component is discarded
// since the vertex lives in the 2D plane.
func (v *Vertex2D) SetPosition(x, y, _ float32) {
	v.Position = Vec2{x, y}
}

// SetUv0 writes the first texture coordinate channel onto the vertex.
func (v *Vertex2D) SetUv0(u, vc float32) {
	v.Texcoord = Vec2{u, vc}
}
