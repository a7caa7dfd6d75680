package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/quill/engine/renderer/metadata"
)

type RenderDefLoader struct{}

// Load parses a TOML render definition file. A definition without a name
// takes the file's base name. Defaults are applied and the declared corner
// names are validated up front so a bad definition fails at load time, not
// at geometry generation time.
func (rdl *RenderDefLoader) Load(path string) (*metadata.RenderDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	def := &metadata.RenderDef{}
	if err := toml.Unmarshal(data, def); err != nil {
		return nil, fmt.Errorf("failed to parse render definition '%s': %w", path, err)
	}

	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	def.ApplyDefaults()

	if def.Quad != nil {
		if _, err := def.Quad.CornerMask(); err != nil {
			return nil, fmt.Errorf("render definition '%s': %w", path, err)
		}
	}
	if def.Mesh != "" && def.Quad != nil {
		return nil, fmt.Errorf("render definition '%s' declares both a mesh asset and a quad", path)
	}

	return def, nil
}
