package metadata

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/quill/engine/math"
)

/**
 * @brief Declarative description of a tessellated quad. This is a pure data
 * record; the geometry system turns it into a GeometryConfig. Zero values
 * take the documented defaults via ApplyDefaults.
 */
type QuadDef struct {
	/** @brief The x size of the quad. */
	SizeX float32 `toml:"size_x"`
	/** @brief The y size of the quad. */
	SizeY float32 `toml:"size_y"`
	/** @brief The number of vertices along the x axis. Default 2. */
	VertsX int `toml:"verts_x"`
	/** @brief The number of vertices along the y axis. Default 2. */
	VertsY int `toml:"verts_y"`
	/** @brief Whether the generated mesh carries texture coordinates. Default false. */
	HasUv bool `toml:"has_uv"`
	/** @brief The radius of the rounded corners. Default 0. */
	CornerRadius float32 `toml:"corner_radius"`
	/** @brief The number of fan vertices per rounded corner. 0 disables rounding. */
	CornerVerts int `toml:"corner_verts"`
	/**
	 * @brief The names of the corners to round. Empty means all corners.
	 * Only consulted when CornerVerts > 0.
	 */
	Corners []string `toml:"corners"`
}

// Corner names accepted in QuadDef.Corners.
const (
	CornerNameTopRight    = "top_right"
	CornerNameBottomRight = "bottom_right"
	CornerNameBottomLeft  = "bottom_left"
	CornerNameTopLeft     = "top_left"
)

var cornerNames = map[string]math.CornerMask{
	CornerNameTopRight:    math.CornerMaskTopRight,
	CornerNameBottomRight: math.CornerMaskBottomRight,
	CornerNameBottomLeft:  math.CornerMaskBottomLeft,
	CornerNameTopLeft:     math.CornerMaskTopLeft,
}

/**
 * @brief Fills in the documented defaults for fields left at their zero
 * value: verts_x = verts_y = 2, has_uv = false, corner_radius = 0,
 * corner_verts = 0.
 */
func (qd *QuadDef) ApplyDefaults() {
	if qd.VertsX == 0 {
		qd.VertsX = 2
	}
	if qd.VertsY == 0 {
		qd.VertsY = 2
	}
}

/**
 * @brief Resolves the declared corner names into a CornerMask. An empty list
 * selects all corners. Unknown names are an error.
 */
func (qd *QuadDef) CornerMask() (math.CornerMask, error) {
	if len(qd.Corners) == 0 {
		return math.CornerMaskAll, nil
	}
	mask := math.CornerMaskNone
	for _, name := range qd.Corners {
		corner, ok := cornerNames[strings.ToLower(name)]
		if !ok {
			return math.CornerMaskNone, fmt.Errorf("unknown corner name '%s'", name)
		}
		mask = mask.Union(corner)
	}
	return mask, nil
}
