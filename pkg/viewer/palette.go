package viewer

import (
	"image/color"

	"github.com/planfab/goplan/pkg/plan"
)

// Process-wide immutable palette, decided once at startup.

var (
	colorBackground    = color.RGBA{R: 245, G: 246, B: 248, A: 255}
	colorFloor         = color.RGBA{R: 226, G: 228, B: 231, A: 255}
	colorGrid          = color.RGBA{R: 206, G: 209, B: 213, A: 255}
	colorWall          = color.RGBA{R: 55, G: 61, B: 70, A: 255}
	colorFieldGreen    = color.RGBA{R: 84, G: 148, B: 78, A: 255}
	colorFieldLine     = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	colorDimension     = color.RGBA{R: 52, G: 101, B: 164, A: 255}
	colorAccent        = color.RGBA{R: 232, G: 126, B: 38, A: 255}
	colorLightProfile  = color.RGBA{R: 222, G: 172, B: 42, A: 255}
	colorLightGlow     = color.RGBA{R: 250, G: 226, B: 152, A: 255}
	colorShadow        = color.RGBA{R: 186, G: 189, B: 193, A: 255}
	colorText          = color.RGBA{R: 40, G: 44, B: 50, A: 255}
	colorTextMuted     = color.RGBA{R: 116, G: 122, B: 130, A: 255}
	colorTextInverted  = color.RGBA{R: 252, G: 252, B: 252, A: 255}
	colorPlaceholderBg = color.RGBA{R: 238, G: 239, B: 241, A: 255}
)

// ShapeKind selects the plan-view silhouette of an object
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// ObjectStyle is the rendering trait of one object kind
type ObjectStyle struct {
	Fill   color.RGBA
	Stroke color.RGBA
	Shape  ShapeKind
}

var objectStyles = map[plan.ObjectKind]ObjectStyle{
	plan.KindRack: {
		Fill:   color.RGBA{R: 171, G: 199, B: 224, A: 255},
		Stroke: color.RGBA{R: 54, G: 98, B: 146, A: 255},
		Shape:  ShapeRect,
	},
	plan.KindMezzanine: {
		Fill:   color.RGBA{R: 197, G: 179, B: 222, A: 255},
		Stroke: color.RGBA{R: 106, G: 76, B: 156, A: 255},
		Shape:  ShapeRect,
	},
	plan.KindCovering: {
		Fill:   color.RGBA{R: 160, G: 210, B: 204, A: 255},
		Stroke: color.RGBA{R: 44, G: 122, B: 112, A: 255},
		Shape:  ShapeRect,
	},
	plan.KindPost: {
		Fill:   color.RGBA{R: 229, G: 168, B: 166, A: 255},
		Stroke: color.RGBA{R: 156, G: 51, B: 47, A: 255},
		Shape:  ShapeCircle,
	},
}

// StyleFor returns the rendering trait for an object kind
func StyleFor(kind plan.ObjectKind) ObjectStyle {
	if style, ok := objectStyles[kind]; ok {
		return style
	}
	return ObjectStyle{
		Fill:   color.RGBA{R: 200, G: 200, B: 200, A: 255},
		Stroke: color.RGBA{R: 90, G: 90, B: 90, A: 255},
		Shape:  ShapeRect,
	}
}

// shade darkens a color by the given factor in (0, 1]
func shade(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// lighten moves a color toward white by the given factor in [0, 1]
func lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
