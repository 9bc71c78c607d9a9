package viewer

import (
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var planFont *truetype.Font

// faces are cached per size; rendering is single-threaded
var fontFaces = map[float64]font.Face{}

func init() {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		panic("viewer: failed to parse embedded font: " + err.Error())
	}
	planFont = f
}

func faceFor(size float64) font.Face {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := truetype.NewFace(planFont, &truetype.Options{Size: size, DPI: 72})
	fontFaces[size] = face
	return face
}

// textWidth returns the rendered width of s in pixels
func textWidth(size float64, s string) float64 {
	return float64(font.MeasureString(faceFor(size), s)) / 64
}

// drawText draws s with its baseline at (x, y)
func drawText(img *image.RGBA, x, y, size float64, col color.RGBA, s string) {
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(planFont)
	c.SetFontSize(size)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(col))

	// DrawString errors only on malformed glyph data, which the
	// embedded font does not have.
	_, _ = c.DrawString(s, freetype.Pt(round(x), round(y)))
}

// drawTextCentered draws s horizontally centered on cx with its
// baseline at y
func drawTextCentered(img *image.RGBA, cx, y, size float64, col color.RGBA, s string) {
	drawText(img, cx-textWidth(size, s)/2, y, size, col, s)
}
