package systems

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/spaghettifunk/quill/engine/core"
	"github.com/spaghettifunk/quill/engine/math"
	"github.com/spaghettifunk/quill/engine/renderer/metadata"
)

type geometrySystemState struct {
	Config          *metadata.GeometrySystemConfig
	DefaultGeometry *metadata.Geometry
	// Array of registered geometries.
	RegisteredGeometries []*metadata.GeometryReference
	// Allocator for the slots of RegisteredGeometries.
	IDs *core.IdentifierPool
}

var onceGeometrySystem sync.Once
var gsState *geometrySystemState

/**
 * @brief Initializes the geometry system with the given configuration and
 * registers the default geometry (a unit quad).
 *
 * @param config The configuration for this system.
 * @return Nil on success; otherwise an error.
 */
func NewGeometrySystem(config *metadata.GeometrySystemConfig) error {
	if config.MaxGeometryCount == 0 {
		err := fmt.Errorf("func NewGeometrySystem - config.MaxGeometryCount must be > 0")
		core.LogWarn(err.Error())
		return err
	}

	var err error
	onceGeometrySystem.Do(func() {
		gsState = &geometrySystemState{
			Config:               config,
			RegisteredGeometries: make([]*metadata.GeometryReference, config.MaxGeometryCount),
			IDs:                  core.NewIdentifierPool(config.MaxGeometryCount),
		}

		// Invalidate all geometries in the array.
		count := gsState.Config.MaxGeometryCount
		for i := uint32(0); i < count; i++ {
			gsState.RegisteredGeometries[i] = &metadata.GeometryReference{
				Geometry: &metadata.Geometry{
					ID:         metadata.InvalidID,
					Generation: metadata.InvalidIDUint16,
				},
			}
		}

		if err = gsState.createDefaultGeometry(); err != nil {
			core.LogError("failed to create default geometry. Application cannot continue")
		}
	})

	return err
}

/**
 * @brief Shuts down the geometry system and releases all registered
 * geometry. The system can be initialized again afterwards.
 */
func GeometrySystemShutdown() {
	gsState = nil
	onceGeometrySystem = sync.Once{}
}

/**
 * @brief Acquires an existing geometry by id.
 *
 * @param id The geometry identifier to acquire by.
 * @return A pointer to the acquired geometry or an error if failed.
 */
func GeometrySystemAcquireByID(id uint32) (*metadata.Geometry, error) {
	if id < gsState.Config.MaxGeometryCount && gsState.RegisteredGeometries[id].Geometry.ID != metadata.InvalidID {
		gsState.RegisteredGeometries[id].ReferenceCount++
		return gsState.RegisteredGeometries[id].Geometry, nil
	}

	err := fmt.Errorf("func GeometrySystemAcquireByID cannot load invalid geometry id '%d'", id)
	core.LogError(err.Error())
	return nil, err
}

/**
 * @brief Registers and acquires a new geometry using the given config.
 *
 * @param config The geometry configuration.
 * @param autoRelease Indicates if the acquired geometry should be unloaded when its reference count reaches 0.
 * @return A pointer to the acquired geometry or an error if failed.
 */
func GeometrySystemAcquireFromConfig(config *metadata.GeometryConfig, autoRelease bool) (*metadata.Geometry, error) {
	id, err := gsState.IDs.Acquire(config)
	if err != nil {
		err := fmt.Errorf("unable to obtain free slot for geometry. Adjust configuration to allow more space")
		core.LogError(err.Error())
		return nil, err
	}

	ref := gsState.RegisteredGeometries[id]
	ref.AutoRelease = autoRelease
	ref.ReferenceCount = 1
	geometry := ref.Geometry
	geometry.ID = id

	gsState.createGeometry(config, geometry)

	return geometry, nil
}

/**
 * @brief Builds a geometry configuration from a quad definition via the
 * tessellated quad generators. Normals are always generated; tangents only
 * when the definition declares a UV channel. An empty name is replaced with
 * a generated unique one.
 *
 * @param def The quad definition. Defaults are applied in place.
 * @param name The name of the generated geometry.
 * @param materialName The name of the material to be used.
 * @return A geometry configuration which can then be fed into GeometrySystemAcquireFromConfig.
 */
func GeometrySystemGenerateQuadConfig(def *metadata.QuadDef, name, materialName string) (*metadata.GeometryConfig, error) {
	def.ApplyDefaults()
	mask, err := def.CornerMask()
	if err != nil {
		core.LogError("func GeometrySystemGenerateQuadConfig - %s", err.Error())
		return nil, err
	}

	vertices := math.TesselatedQuadVertices[math.Vertex3D](def.SizeX, def.SizeY, def.VertsX, def.VertsY, def.CornerRadius, def.CornerVerts, mask)
	if len(vertices) == 0 {
		return nil, core.ErrInvalidGeometryRequest
	}
	indices := math.TesselatedQuadIndices(def.VertsX, def.VertsY, def.CornerVerts)
	if len(indices) == 0 {
		return nil, core.ErrInvalidGeometryRequest
	}

	if !def.HasUv {
		// The vertex layout always carries a UV channel; a definition
		// without UVs just leaves it zeroed.
		for i := range vertices {
			vertices[i].Texcoord = math.NewVec2Zero()
		}
	}

	math.GeometryGenerateNormals(vertices, indices)
	if def.HasUv {
		vertices = math.GeometryGenerateTangents(vertices, indices)
	}

	config := &metadata.GeometryConfig{
		Vertices:     vertices,
		Indices:      indices,
		Name:         name,
		MaterialName: materialName,
	}
	if config.Name == "" {
		config.Name = uuid.New().String()
	}

	min := vertices[0].Position
	max := vertices[0].Position
	for _, v := range vertices[1:] {
		min.X = math.Min(min.X, v.Position.X)
		min.Y = math.Min(min.Y, v.Position.Y)
		min.Z = math.Min(min.Z, v.Position.Z)
		max.X = math.Max(max.X, v.Position.X)
		max.Y = math.Max(max.Y, v.Position.Y)
		max.Z = math.Max(max.Z, v.Position.Z)
	}
	config.MinExtents = min
	config.MaxExtents = max
	config.Center = min.Add(max).MulScalar(0.5)

	return config, nil
}

/**
 * @brief Registers and acquires geometry generated from the quad carried by
 * a render definition.
 *
 * @param def The render definition. Must declare a quad.
 * @param autoRelease Indicates if the acquired geometry should be unloaded when its reference count reaches 0.
 * @return A pointer to the acquired geometry or an error if failed.
 */
func GeometrySystemAcquireFromRenderDef(def *metadata.RenderDef, autoRelease bool) (*metadata.Geometry, error) {
	if def.Quad == nil {
		err := fmt.Errorf("render definition '%s' declares no quad", def.Name)
		core.LogError(err.Error())
		return nil, err
	}
	config, err := GeometrySystemGenerateQuadConfig(def.Quad, def.Name, def.MaterialName)
	if err != nil {
		return nil, err
	}
	return GeometrySystemAcquireFromConfig(config, autoRelease)
}

/**
 * @brief Releases a reference to the provided geometry.
 *
 * @param geometry The geometry to be released.
 */
func GeometrySystemRelease(geometry *metadata.Geometry) {
	if geometry != nil && geometry.ID != metadata.InvalidID {
		ref := gsState.RegisteredGeometries[geometry.ID]

		// Take a copy of the id;
		id := geometry.ID
		if ref.Geometry.ID == id {
			if ref.ReferenceCount > 0 {
				ref.ReferenceCount--
			}

			// Also blanks out the geometry id.
			if ref.ReferenceCount < 1 && ref.AutoRelease {
				if err := gsState.IDs.Release(id); err != nil {
					core.LogError(err.Error())
				}
				gsState.destroyGeometry(ref.Geometry)
				ref.ReferenceCount = 0
				ref.AutoRelease = false
			}
		} else {
			core.LogError("geometry id mismatch. Check registration logic, as this should never occur.")
		}
		return
	}

	core.LogWarn("GeometrySystemRelease cannot release invalid geometry id. Nothing was done.")
}

/**
 * @brief Obtains a pointer to the default geometry.
 *
 * @return A pointer to the default geometry.
 */
func GeometrySystemGetDefault() *metadata.Geometry {
	return gsState.DefaultGeometry
}

func (state *geometrySystemState) createGeometry(config *metadata.GeometryConfig, geometry *metadata.Geometry) {
	geometry.Name = config.Name
	geometry.MaterialName = config.MaterialName
	geometry.Vertices = config.Vertices
	geometry.Indices = config.Indices
	geometry.Center = config.Center
	geometry.Extents = math.Extents3D{
		Min: config.MinExtents,
		Max: config.MaxExtents,
	}
	if geometry.Generation == metadata.InvalidIDUint16 {
		geometry.Generation = 0
	} else {
		geometry.Generation++
	}
}

func (state *geometrySystemState) destroyGeometry(geometry *metadata.Geometry) {
	geometry.ID = metadata.InvalidID
	geometry.Generation = metadata.InvalidIDUint16
	geometry.Name = ""
	geometry.MaterialName = ""
	geometry.Vertices = nil
	geometry.Indices = nil
}

func (state *geometrySystemState) createDefaultGeometry() error {
	def := &metadata.QuadDef{
		SizeX:  1.0,
		SizeY:  1.0,
		HasUv:  true,
		VertsX: 2,
		VertsY: 2,
	}
	config, err := GeometrySystemGenerateQuadConfig(def, metadata.DefaultGeometryName, "")
	if err != nil {
		return err
	}
	state.DefaultGeometry, err = GeometrySystemAcquireFromConfig(config, false)
	return err
}
