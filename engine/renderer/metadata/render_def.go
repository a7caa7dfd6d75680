package metadata

import (
	"fmt"
)

/**
 * @brief The render pass a render definition is sorted into. Pass semantics
 * (sort order, blending) belong to the renderer; here the pass is only an
 * enumerated label carried by the definition.
 */
type RenderPass int

// Main is the zero value so a definition that never names a pass lands there.
const (
	RenderPassMain RenderPass = iota
	RenderPassPano
	RenderPassOpaque
	RenderPassOverDraw
	RenderPassDebug
	RenderPassInvisible
	RenderPassOverDrawGlow
)

var renderPassNames = map[RenderPass]string{
	RenderPassPano:         "Pano",
	RenderPassOpaque:       "Opaque",
	RenderPassMain:         "Main",
	RenderPassOverDraw:     "OverDraw",
	RenderPassDebug:        "Debug",
	RenderPassInvisible:    "Invisible",
	RenderPassOverDrawGlow: "OverDrawGlow",
}

func (rp RenderPass) String() string {
	if name, ok := renderPassNames[rp]; ok {
		return name
	}
	return fmt.Sprintf("RenderPass(%d)", int(rp))
}

// MarshalText implements encoding.TextMarshaler for TOML round-tripping.
func (rp RenderPass) MarshalText() ([]byte, error) {
	name, ok := renderPassNames[rp]
	if !ok {
		return nil, fmt.Errorf("unknown render pass %d", int(rp))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value keeps
// the default pass, Main.
func (rp *RenderPass) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*rp = RenderPassMain
		return nil
	}
	for pass, name := range renderPassNames {
		if name == string(text) {
			*rp = pass
			return nil
		}
	}
	return fmt.Errorf("unknown render pass '%s'", string(text))
}

/**
 * @brief Text metadata carried by a render definition, for definitions whose
 * mesh is produced by a text layout step. Layout itself is not handled here.
 */
type TextDef struct {
	/** @brief The text string to display. */
	Text string `toml:"text"`
	/** @brief The name of the font asset to use. */
	Font string `toml:"font"`
	/** @brief The line height in meters. 0 uses the font's own metric. */
	LineHeight float32 `toml:"line_height"`
}

/**
 * @brief Declarative description of a render request: which pass it belongs
 * to, which assets it references, the uniform values bound at draw time, and
 * either an explicit mesh asset or a quad to be generated.
 */
type RenderDef struct {
	/** @brief The name of the definition. Generated if empty. */
	Name string `toml:"name"`
	/** @brief The render pass. Default Main. */
	Pass RenderPass `toml:"pass"`
	/** @brief The name of a mesh asset. Mutually exclusive with Quad. */
	Mesh string `toml:"mesh"`
	/** @brief The name of the shader asset. */
	Shader string `toml:"shader"`
	/** @brief The names of the texture assets, in binding order. */
	Textures []string `toml:"textures"`
	/** @brief Uniform variable bindings by name. */
	Uniforms map[string][]float32 `toml:"uniforms"`
	/** @brief Optional text metadata. */
	Text *TextDef `toml:"text"`
	/** @brief Optional quad description to generate geometry from. */
	Quad *QuadDef `toml:"quad"`
	/** @brief The name of the material used by generated geometry. */
	MaterialName string `toml:"material"`
}

/**
 * @brief Fills in the nested quad defaults when a quad is declared. The pass
 * needs no fixup since Main is the zero value.
 */
func (rd *RenderDef) ApplyDefaults() {
	if rd.Quad != nil {
		rd.Quad.ApplyDefaults()
	}
}
