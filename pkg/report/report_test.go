package report

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/planfab/goplan/pkg/plan"
)

func reportProject() *plan.Project {
	p := plan.NewProject("Central Depot", plan.DomainIndustrial)
	p.Site = plan.Site{Width: 30, Length: 50, CeilingHeight: 8}
	p.Lighting = plan.LightingConfig{
		Active:             true,
		Orientation:        plan.OrientationLongitudinal,
		Mode:               plan.ModeDistance,
		Value:              5,
		Offset:             2,
		FixturesPerProfile: 4,
	}
	p.Observations = "Forklift corridor along the east wall must stay clear."
	p.AddObject(plan.KindRack, 2.7, 12, 6, 0)
	p.AddObject(plan.KindMezzanine, 8, 8, 0.4, 3.5)
	return p
}

func TestComposeDimensions(t *testing.T) {
	p := reportProject()
	img := Compose(p, Options{Width: 800, Date: "2024-05-01"})

	if img.Bounds().Dx() != 800 {
		t.Errorf("report width: expected 800, got %d", img.Bounds().Dx())
	}

	// Header + grid + observations + two stacked views must at least
	// exceed twice the view height.
	viewHeight := (800 - 2*margin) * 2 / 3
	if img.Bounds().Dy() <= 2*viewHeight {
		t.Errorf("report too short for two stacked views: %d", img.Bounds().Dy())
	}
}

func TestComposeDeterministic(t *testing.T) {
	p := reportProject()
	opts := Options{Width: 640, Date: "2024-05-01"}

	first := Compose(p, opts)
	second := Compose(p, opts)
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("composing the same report twice produced different pixels")
	}
}

func TestSaveFormats(t *testing.T) {
	p := reportProject()
	img := Compose(p, Options{Width: 400})
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "out.png")
	if err := Save(pngPath, img); err != nil {
		t.Fatalf("Save png failed: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("saved png does not decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds %v != composed bounds %v", decoded.Bounds(), img.Bounds())
	}

	qoiPath := filepath.Join(dir, "out.qoi")
	if err := Save(qoiPath, img); err != nil {
		t.Fatalf("Save qoi failed: %v", err)
	}
	info, err := os.Stat(qoiPath)
	if err != nil || info.Size() == 0 {
		t.Error("qoi file missing or empty")
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	p := reportProject()
	img := Compose(p, Options{Width: 400})

	var buf bytes.Buffer
	if err := Encode(&buf, img, "webp"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Central Depot", "central-depot.png"},
		{"  A/B: plan  ", "ab-plan.png"},
		{"", "layout.png"},
	}
	for _, c := range cases {
		if got := Filename(c.in, "png"); got != c.want {
			t.Errorf("Filename(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}
