// Package report composes the exported project image: a header, a
// project-data grid, an optional observations block, and the 2D and
// 3D renderings stacked vertically.
package report

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/planfab/goplan/pkg/analysis"
	"github.com/planfab/goplan/pkg/plan"
	"github.com/planfab/goplan/pkg/viewer"
	"github.com/xfmoulet/qoi"
)

const (
	defaultWidth = 1000
	margin       = 24
	headerHeight = 64
	rowHeight    = 22
	titleHeight  = 30
)

var (
	colorPaper   = color.RGBA{R: 252, G: 252, B: 253, A: 255}
	colorAccent  = color.RGBA{R: 232, G: 126, B: 38, A: 255}
	colorHeading = color.RGBA{R: 252, G: 252, B: 252, A: 255}
	colorLabel   = color.RGBA{R: 116, G: 122, B: 130, A: 255}
	colorValue   = color.RGBA{R: 40, G: 44, B: 50, A: 255}
	colorRule    = color.RGBA{R: 222, G: 224, B: 228, A: 255}
)

// Options controls report composition
type Options struct {
	Width int    // total image width in pixels; defaults to 1000
	Date  string // printed in the header, already formatted
}

// Compose renders the full report image for a project
func Compose(p *plan.Project, opts Options) *image.RGBA {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	viewWidth := width - 2*margin
	viewHeight := viewWidth * 2 / 3

	rows := summaryRows(p)
	gridHeight := (len(rows)+1)/2*rowHeight + margin

	observations := wrapText(p.Observations, 11, float64(viewWidth))
	obsHeight := 0
	if len(observations) > 0 {
		obsHeight = titleHeight + len(observations)*rowHeight/2 + margin/2
	}

	total := headerHeight + margin +
		gridHeight +
		obsHeight +
		2*(titleHeight+viewHeight+margin/2) +
		margin

	img := image.NewRGBA(image.Rect(0, 0, width, total))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorPaper), image.Point{}, draw.Src)

	// Header bar.
	draw.Draw(img, image.Rect(0, 0, width, headerHeight), image.NewUniform(colorAccent), image.Point{}, draw.Src)
	drawText(img, margin, 40, 22, colorHeading, p.Name)
	if opts.Date != "" {
		drawText(img, float64(width)-margin-textWidth(12, opts.Date), 40, 12, colorHeading, opts.Date)
	}

	y := headerHeight + margin

	// Two-column project data grid.
	colWidth := float64(viewWidth) / 2
	for i, row := range rows {
		colX := float64(margin) + float64(i%2)*colWidth
		rowY := float64(y + i/2*rowHeight)
		drawText(img, colX, rowY, 11, colorLabel, row[0])
		drawText(img, colX+150, rowY, 11, colorValue, row[1])
	}
	y += gridHeight

	if len(observations) > 0 {
		y = drawSectionTitle(img, y, width, "Observations")
		for _, line := range observations {
			drawText(img, margin, float64(y), 11, colorValue, line)
			y += rowHeight / 2
		}
		y += margin / 2
	}

	scene := viewer.Scene{Project: p, View: viewer.NewViewTransform()}

	y = drawSectionTitle(img, y, width, "Floor plan")
	plan2D := viewer.Render2D(scene, viewWidth, viewHeight)
	draw.Draw(img, image.Rect(margin, y, margin+viewWidth, y+viewHeight), plan2D, image.Point{}, draw.Src)
	y += viewHeight + margin/2

	y = drawSectionTitle(img, y, width, "Perspective")
	plan3D := viewer.Render3D(scene, viewWidth, viewHeight)
	draw.Draw(img, image.Rect(margin, y, margin+viewWidth, y+viewHeight), plan3D, image.Point{}, draw.Src)

	return img
}

func drawSectionTitle(img *image.RGBA, y, width int, title string) int {
	drawText(img, margin, float64(y+16), 14, colorValue, title)
	drawLine(img, margin, y+22, width-margin, y+22, colorRule)
	return y + titleHeight
}

func summaryRows(p *plan.Project) [][2]string {
	s := analysis.AnalyzeProject(p)

	rows := [][2]string{
		{"Domain", string(p.Domain)},
		{"Site", fmt.Sprintf("%s × %s", analysis.FormatMeters(p.Site.Width), analysis.FormatMeters(p.Site.Length))},
	}
	if p.Site.CeilingHeight > 0 {
		rows = append(rows, [2]string{"Ceiling height", analysis.FormatMeters(p.Site.CeilingHeight)})
	}
	rows = append(rows,
		[2]string{"Site area", analysis.FormatArea(s.SiteArea)},
		[2]string{"Objects", fmt.Sprintf("%d", s.ObjectCount)},
		[2]string{"Occupied area", analysis.FormatArea(s.FootprintArea)},
		[2]string{"Utilization", fmt.Sprintf("%.1f %%", s.UtilizationPct)},
	)
	if p.Lighting.Active {
		rows = append(rows,
			[2]string{"Light profiles", fmt.Sprintf("%d", s.ProfileCount)},
			[2]string{"Luminaires", fmt.Sprintf("%d", s.FixtureCount)},
		)
		if p.Lighting.Lux > 0 {
			rows = append(rows, [2]string{"Target level", fmt.Sprintf("%.0f lux", p.Lighting.Lux)})
		}
	}
	return rows
}

// Encode writes the image in the given format, "png" or "qoi"
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "", "png":
		return png.Encode(w, img)
	case "qoi":
		return qoi.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// Save writes the image to a file, deriving the format from the
// file extension
func Save(path string, img image.Image) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		format = "png"
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, img, format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// Filename derives a safe file name from a project name
func Filename(projectName, ext string) string {
	name := strings.ToLower(strings.TrimSpace(projectName))
	if name == "" {
		name = "layout"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	return b.String() + "." + ext
}
