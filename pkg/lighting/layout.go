// Package lighting computes light-profile and fixture positions for a
// project. A profile is a continuous run of luminaires mounted along
// one axis of the site; profiles are positioned across the other axis
// either by fixed count or by fixed spacing.
package lighting

import (
	"math"

	"github.com/planfab/goplan/pkg/plan"
)

// FixtureInset is the fixed margin between a profile end and its
// outermost fixture, in meters
const FixtureInset = 1.0

// minSpacing guards the distance mode against degenerate spacing values
const minSpacing = 0.01

// Profile is one computed run of light fixtures
type Profile struct {
	// Position across the placement axis, in meters. For
	// longitudinal orientation this is the X coordinate, for
	// transversal the Y coordinate.
	Position float64
	// Length of the run along the profile's own axis.
	Length float64
	// Fixtures holds luminaire positions along the run.
	Fixtures []float64
}

// Layout computes the full lighting layout for a site. It returns nil
// when lighting is inactive, the site is undefined, or the
// configuration produces no profiles (such as a non-positive spacing
// or an offset consuming the whole axis).
func Layout(cfg plan.LightingConfig, site plan.Site) []Profile {
	if !cfg.Active || !site.Defined() {
		return nil
	}

	// Profiles run parallel to one axis and are distributed across
	// the other.
	axisLimit := site.Length
	runLength := site.Width
	if cfg.Orientation == plan.OrientationLongitudinal {
		axisLimit = site.Width
		runLength = site.Length
	}

	positions := profilePositions(cfg, axisLimit)
	if len(positions) == 0 {
		return nil
	}

	fixtures := FixturePositions(runLength, cfg.FixturesPerProfile)

	profiles := make([]Profile, 0, len(positions))
	for _, pos := range positions {
		profiles = append(profiles, Profile{
			Position: pos,
			Length:   runLength,
			Fixtures: fixtures,
		})
	}
	return profiles
}

// profilePositions distributes profile positions across the placement
// axis according to the configured mode.
func profilePositions(cfg plan.LightingConfig, axisLimit float64) []float64 {
	var positions []float64

	switch cfg.Mode {
	case plan.ModeQuantity:
		count := int(math.Round(cfg.Value))
		if count <= 0 {
			return nil
		}
		if count == 1 {
			positions = []float64{axisLimit / 2}
			break
		}
		spacing := (axisLimit - 2*cfg.Offset) / float64(count-1)
		for i := 0; i < count; i++ {
			positions = append(positions, cfg.Offset+float64(i)*spacing)
		}

	case plan.ModeDistance:
		if cfg.Value <= minSpacing {
			return nil
		}
		available := axisLimit - 2*cfg.Offset
		if available < 0 {
			return nil
		}
		// Center the profile group within the available span instead
		// of stepping outward from the first wall, which leaves an
		// uneven trailing gap.
		intervals := math.Floor(available / cfg.Value)
		count := int(intervals) + 1
		span := intervals * cfg.Value
		start := cfg.Offset + (available-span)/2
		for i := 0; i < count; i++ {
			positions = append(positions, start+float64(i)*cfg.Value)
		}

	default:
		return nil
	}

	// Defensive bound: never report a profile past the far wall.
	kept := positions[:0]
	for _, pos := range positions {
		if pos <= axisLimit {
			kept = append(kept, pos)
		}
	}
	return kept
}

// FixturePositions distributes count fixtures evenly along a profile
// of the given length, inset by FixtureInset from each end. A single
// fixture sits at the profile midpoint.
func FixturePositions(length float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []float64{length / 2}
	}

	inset := FixtureInset
	usable := length - 2*inset
	if usable < 0 {
		// Profile shorter than both insets: collapse to the midpoint.
		inset = length / 2
		usable = 0
	}

	spacing := usable / float64(count-1)
	positions := make([]float64, count)
	for i := range positions {
		positions[i] = inset + float64(i)*spacing
	}
	return positions
}
