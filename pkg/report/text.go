package report

import (
	"image"
	"image/color"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var reportFont *truetype.Font

var fontFaces = map[float64]font.Face{}

func init() {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		panic("report: failed to parse embedded font: " + err.Error())
	}
	reportFont = f
}

func faceFor(size float64) font.Face {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := truetype.NewFace(reportFont, &truetype.Options{Size: size, DPI: 72})
	fontFaces[size] = face
	return face
}

func textWidth(size float64, s string) float64 {
	return float64(font.MeasureString(faceFor(size), s)) / 64
}

func drawText(img *image.RGBA, x, y, size float64, col color.RGBA, s string) {
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(reportFont)
	c.SetFontSize(size)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(col))
	_, _ = c.DrawString(s, freetype.Pt(int(x+0.5), int(y+0.5)))
}

func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	if y1 == y2 {
		for x := x1; x <= x2; x++ {
			img.SetRGBA(x, y1, col)
		}
		return
	}
	for y := y1; y <= y2; y++ {
		img.SetRGBA(x1, y, col)
	}
}

// wrapText breaks a paragraph into lines no wider than maxWidth
// pixels at the given font size
func wrapText(s string, size, maxWidth float64) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if textWidth(size, candidate) > maxWidth {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
