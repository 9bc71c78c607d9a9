// Package analysis derives summary statistics from a project for the
// info command, the GUI side panel, and the report data grid.
package analysis

import (
	"fmt"

	"github.com/planfab/goplan/pkg/lighting"
	"github.com/planfab/goplan/pkg/plan"
)

// Summary contains the derived figures of one project
type Summary struct {
	SiteArea       float64 // m²
	ObjectCount    int
	CountByKind    map[plan.ObjectKind]int
	FootprintArea  float64 // m² covered by object footprints
	UtilizationPct float64 // footprint area as share of site area
	TallestPoint   float64 // m above the floor
	ProfileCount   int
	FixtureCount   int
}

// AnalyzeProject computes the full summary for a project
func AnalyzeProject(p *plan.Project) *Summary {
	s := &Summary{
		SiteArea:    p.Site.Area(),
		ObjectCount: len(p.Objects),
		CountByKind: make(map[plan.ObjectKind]int),
	}

	for _, o := range p.Objects {
		s.CountByKind[o.Kind]++
		s.FootprintArea += o.Width * o.Depth
		if top := o.Top(); top > s.TallestPoint {
			s.TallestPoint = top
		}
	}

	if s.SiteArea > 0 {
		s.UtilizationPct = s.FootprintArea / s.SiteArea * 100
	}

	profiles := lighting.Layout(p.Lighting, p.Site)
	s.ProfileCount = len(profiles)
	for _, profile := range profiles {
		s.FixtureCount += len(profile.Fixtures)
	}

	return s
}

// FormatMeters formats a length for display
func FormatMeters(v float64) string {
	return fmt.Sprintf("%.2f m", v)
}

// FormatArea formats an area for display
func FormatArea(v float64) string {
	return fmt.Sprintf("%.2f m²", v)
}
