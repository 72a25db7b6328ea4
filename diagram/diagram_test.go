package diagram

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/twistedtube"
	"gonum.org/v1/plot/vg"
)

func testTube(t *testing.T) twistedtube.Tube {
	t.Helper()
	tube, err := twistedtube.New(0.034, 3, 0.003, 0.0065)
	if err != nil {
		t.Fatal(err)
	}
	return tube
}

func assertNonEmptyFile(t *testing.T, filename string) {
	t.Helper()
	info, err := os.Stat(filename)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("output file %s is empty", filename)
	}
}

func TestExportCartesian(t *testing.T) {
	tube := testTube(t)
	filename := filepath.Join(t.TempDir(), "cross_section.png")
	err := ExportCartesian(tube, Style{ShowProperties: true}, filename)
	if err != nil {
		t.Fatal(err)
	}
	assertNonEmptyFile(t, filename)
}

func TestExportPolar(t *testing.T) {
	tube := testTube(t)
	filename := filepath.Join(t.TempDir(), "cross_section.svg")
	err := ExportPolar(tube, Style{
		Samples:   500,
		LineWidth: vg.Points(1),
		Color:     color.RGBA{R: 255, A: 255},
	}, filename)
	if err != nil {
		t.Fatal(err)
	}
	assertNonEmptyFile(t, filename)
}

func TestExportDefaultExtension(t *testing.T) {
	tube := testTube(t)
	filename := filepath.Join(t.TempDir(), "cross_section")
	if err := ExportCartesian(tube, Style{}, filename); err != nil {
		t.Fatal(err)
	}
	assertNonEmptyFile(t, filename+".png")
}

func TestStyleDefaults(t *testing.T) {
	var s Style
	if got := s.samples(); got != twistedtube.DefaultSamples {
		t.Errorf("default samples %d, want %d", got, twistedtube.DefaultSamples)
	}
	if got := s.lineWidth(); got != vg.Points(2) {
		t.Errorf("default line width %v, want 2pt", got)
	}
	if s.lineColor() == nil {
		t.Error("default color is nil")
	}
}
