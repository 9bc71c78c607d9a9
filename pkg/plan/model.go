package plan

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/planfab/goplan/pkg/geometry"
)

// SnapStep is the position grid for dragged objects, in meters
const SnapStep = 0.5

// SportsMargin is how far an object may leave the field bounds in the
// sports domain, in meters
const SportsMargin = 5.0

// Domain selects the color palette and floor styling of a project
type Domain string

const (
	DomainIndustrial Domain = "industrial"
	DomainSports     Domain = "sports"
)

// ObjectKind identifies the closed set of placeable object types
type ObjectKind string

const (
	KindRack      ObjectKind = "rack"
	KindMezzanine ObjectKind = "mezzanine"
	KindCovering  ObjectKind = "covering"
	KindPost      ObjectKind = "post"
)

var kindNames = map[ObjectKind]string{
	KindRack:      "Rack",
	KindMezzanine: "Mezzanine",
	KindCovering:  "Covering",
	KindPost:      "Post",
}

// DisplayName returns the human-readable name of the kind
func (k ObjectKind) DisplayName() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return string(k)
}

// PlacedObject is a physical object positioned on the floor plan.
// Position and footprint are in meters from the top-left site origin.
type PlacedObject struct {
	ID        string     `yaml:"id"`
	Kind      ObjectKind `yaml:"kind"`
	Label     string     `yaml:"label"`
	X         float64    `yaml:"x"`
	Y         float64    `yaml:"y"`
	Width     float64    `yaml:"width"`
	Depth     float64    `yaml:"depth"`
	Height    float64    `yaml:"height"`
	Elevation float64    `yaml:"elevation,omitempty"`
}

// Footprint returns the object's plan rectangle
func (o *PlacedObject) Footprint() geometry.Rect {
	return geometry.NewRect(o.X, o.Y, o.Width, o.Depth)
}

// Top returns the height of the object's highest point above the floor
func (o *PlacedObject) Top() float64 {
	return o.Elevation + o.Height
}

// DepthKey returns the painter's-algorithm sort key shared by the 2D
// and 3D renderers: farther and lower objects have smaller keys and
// are drawn first.
func (o *PlacedObject) DepthKey() float64 {
	return o.X + o.Y + o.Elevation
}

// Site is the physical envelope of the project, in meters.
// A zero dimension means "undefined" and is rendered as a placeholder.
type Site struct {
	Width         float64 `yaml:"width"`
	Length        float64 `yaml:"length"`
	CeilingHeight float64 `yaml:"ceilingHeight,omitempty"`
}

// Defined reports whether the site has usable plan dimensions
func (s Site) Defined() bool {
	return s.Width > 0 && s.Length > 0
}

// Area returns the site's plan area in square meters
func (s Site) Area() float64 {
	return s.Width * s.Length
}

// LightingOrientation selects the axis light profiles run parallel to
type LightingOrientation string

const (
	// OrientationLongitudinal runs profiles parallel to the length
	// axis; profile positions are distributed across the site width.
	OrientationLongitudinal LightingOrientation = "longitudinal"
	// OrientationTransversal runs profiles parallel to the width
	// axis; profile positions are distributed across the site length.
	OrientationTransversal LightingOrientation = "transversal"
)

// LightingMode selects how profile positions are derived from Value
type LightingMode string

const (
	// ModeQuantity places exactly Value profiles.
	ModeQuantity LightingMode = "quantity"
	// ModeDistance places a profile every Value meters.
	ModeDistance LightingMode = "distance"
)

// LightingConfig describes the lighting layout of an industrial project
type LightingConfig struct {
	Active             bool                `yaml:"active"`
	Orientation        LightingOrientation `yaml:"orientation"`
	Mode               LightingMode        `yaml:"mode"`
	Value              float64             `yaml:"value"`
	Offset             float64             `yaml:"offset"`
	FixturesPerProfile int                 `yaml:"fixturesPerProfile"`
	Lux                float64             `yaml:"lux,omitempty"`
}

// Project is the complete layout state handed to the rendering core
type Project struct {
	Name         string          `yaml:"name"`
	Domain       Domain          `yaml:"domain"`
	Site         Site            `yaml:"site"`
	Lighting     LightingConfig  `yaml:"lighting"`
	Objects      []*PlacedObject `yaml:"objects"`
	Observations string          `yaml:"observations,omitempty"`
}

// NewProject creates an empty project for the given domain
func NewProject(name string, domain Domain) *Project {
	return &Project{
		Name:   name,
		Domain: domain,
	}
}

// AddObject creates an object with a generated identifier and a
// default centered position, appends it, and returns it. Objects with
// a non-positive footprint are rejected and nil is returned.
func (p *Project) AddObject(kind ObjectKind, width, depth, height, elevation float64) *PlacedObject {
	if width <= 0 || depth <= 0 {
		return nil
	}

	obj := &PlacedObject{
		ID:        uuid.NewString(),
		Kind:      kind,
		Label:     fmt.Sprintf("%s %d", kind.DisplayName(), p.countKind(kind)+1),
		Width:     width,
		Depth:     depth,
		Height:    height,
		Elevation: elevation,
	}

	// Default position: centered on the site
	obj.X, obj.Y = p.ClampPosition(obj, (p.Site.Width-width)/2, (p.Site.Length-depth)/2)

	p.Objects = append(p.Objects, obj)
	return obj
}

func (p *Project) countKind(kind ObjectKind) int {
	n := 0
	for _, o := range p.Objects {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Object returns the object with the given identifier, or nil
func (p *Project) Object(id string) *PlacedObject {
	for _, o := range p.Objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// RemoveObject deletes the object with the given identifier and
// reports whether it was present
func (p *Project) RemoveObject(id string) bool {
	for i, o := range p.Objects {
		if o.ID == id {
			p.Objects = append(p.Objects[:i], p.Objects[i+1:]...)
			return true
		}
	}
	return false
}

// MoveObject is the single mutation entry point for positions: the raw
// target is snapped to the position grid, clamped to the legal bounds
// of the project domain, and applied. It reports whether the object
// exists; a vanished identifier is a no-op.
func (p *Project) MoveObject(id string, x, y float64) bool {
	obj := p.Object(id)
	if obj == nil {
		return false
	}
	x, y = p.ClampPosition(obj, SnapToGrid(x), SnapToGrid(y))
	obj.X = x
	obj.Y = y
	return true
}

// ClampPosition restricts a candidate position so the object footprint
// stays within the site bounds. In the sports domain objects may leave
// the field by up to SportsMargin on every side.
func (p *Project) ClampPosition(obj *PlacedObject, x, y float64) (float64, float64) {
	margin := 0.0
	if p.Domain == DomainSports {
		margin = SportsMargin
	}

	x = clamp(x, -margin, p.Site.Width-obj.Width+margin)
	y = clamp(y, -margin, p.Site.Length-obj.Depth+margin)
	return x, y
}

// TallestPoint returns the highest object top above the floor
func (p *Project) TallestPoint() float64 {
	tallest := 0.0
	for _, o := range p.Objects {
		if top := o.Top(); top > tallest {
			tallest = top
		}
	}
	return tallest
}

// SnapToGrid rounds a coordinate to the nearest SnapStep
func SnapToGrid(v float64) float64 {
	return math.Round(v/SnapStep) * SnapStep
}

func clamp(v, min, max float64) float64 {
	if max < min {
		// Object larger than the site: pin to the origin-side bound
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
