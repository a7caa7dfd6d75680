package metadata

import (
	"github.com/spaghettifunk/quill/engine/math"
)

/** @brief The name of the default geometry. */
const DefaultGeometryName string = "default"

/** @brief An invalid identifier value used to mark unoccupied registry slots. */
const InvalidID uint32 = 4294967295

/** @brief The 16-bit variant of the invalid identifier. */
const InvalidIDUint16 uint16 = 65535

/**
 * @brief Represents the configuration for a geometry: the full CPU-side
 * vertex and index data plus bookkeeping. Produced by the generators in the
 * geometry system and consumed by GeometrySystemAcquireFromConfig.
 */
type GeometryConfig struct {
	/** @brief An array of vertices. */
	Vertices []math.Vertex3D
	/** @brief An array of triangle list indices into Vertices. */
	Indices []uint16

	Center     math.Vec3
	MinExtents math.Vec3
	MaxExtents math.Vec3

	/** @brief The name of the geometry. */
	Name string
	/** @brief The name of the material used by the geometry. */
	MaterialName string
}

type GeometryReference struct {
	ReferenceCount uint64
	Geometry       *Geometry
	AutoRelease    bool
}

/**
 * @brief Represents actual geometry registered in the system.
 * Typically (but not always, depending on use) paired with a material.
 */
type Geometry struct {
	/** @brief The geometry identifier. */
	ID uint32
	/** @brief The geometry generation. Incremented every time the geometry changes. */
	Generation uint16
	/** @brief The center of the geometry in local coordinates. */
	Center math.Vec3
	/** @brief The extents of the geometry in local coordinates. */
	Extents math.Extents3D
	/** @brief The geometry name. */
	Name string
	/** @brief The name of the material associated with this geometry. */
	MaterialName string
	/** @brief The vertex data. */
	Vertices []math.Vertex3D
	/** @brief The triangle list index data. */
	Indices []uint16
}

/**
 * @brief The configuration of the geometry system.
 */
type GeometrySystemConfig struct {
	/**
	 * @brief The maximum number of geometries that can be registered at once.
	 * Should be significantly greater than the number of static meshes because
	 * there can and will be more than one of these per mesh.
	 */
	MaxGeometryCount uint32
}
