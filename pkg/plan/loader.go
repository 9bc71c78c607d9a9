package plan

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Load reads a project descriptor file in YAML format
func Load(filename string) (*Project, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML project descriptor and validates it
func Parse(data []byte) (*Project, error) {
	var project Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to parse project file: %w", err)
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	project.normalize()
	return &project, nil
}

// Marshal encodes the project as a YAML descriptor
func (p *Project) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode project: %w", err)
	}
	return data, nil
}

// Validate checks descriptor fields that the rendering core relies on
func (p *Project) Validate() error {
	if p.Site.Width < 0 || p.Site.Length < 0 {
		return fmt.Errorf("site dimensions must be non-negative, got %gx%g", p.Site.Width, p.Site.Length)
	}
	if p.Site.CeilingHeight < 0 {
		return fmt.Errorf("ceiling height must be non-negative, got %g", p.Site.CeilingHeight)
	}

	for i, o := range p.Objects {
		if o.Width <= 0 || o.Depth <= 0 {
			return fmt.Errorf("object %d (%s): footprint must be positive, got %gx%g", i, o.Label, o.Width, o.Depth)
		}
		if o.Height < 0 || o.Elevation < 0 {
			return fmt.Errorf("object %d (%s): height and elevation must be non-negative", i, o.Label)
		}
	}

	switch p.Lighting.Orientation {
	case "", OrientationLongitudinal, OrientationTransversal:
	default:
		return fmt.Errorf("unknown lighting orientation %q", p.Lighting.Orientation)
	}
	switch p.Lighting.Mode {
	case "", ModeQuantity, ModeDistance:
	default:
		return fmt.Errorf("unknown lighting mode %q", p.Lighting.Mode)
	}

	return nil
}

// normalize fills defaults a hand-written descriptor may omit
func (p *Project) normalize() {
	if p.Domain == "" {
		p.Domain = DomainIndustrial
	}
	if p.Lighting.Orientation == "" {
		p.Lighting.Orientation = OrientationLongitudinal
	}
	if p.Lighting.Mode == "" {
		p.Lighting.Mode = ModeQuantity
	}

	for i, o := range p.Objects {
		if o.ID == "" {
			o.ID = uuid.NewString()
		}
		if o.Label == "" {
			o.Label = fmt.Sprintf("%s %d", o.Kind.DisplayName(), i+1)
		}
	}
}
