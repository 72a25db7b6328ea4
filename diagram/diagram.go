// Package diagram renders twisted-tube cross-sections with gonum/plot.
//
// It is a presentation collaborator of package twistedtube: it consumes the
// generated profile and the computed properties through their read-only
// surface and owns all rendering configuration itself. The core package has
// no dependency on it.
package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/soypat/twistedtube"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Style configures how a cross-section is drawn. The zero value is usable:
// default resolution, a 2pt blue line and no property annotations.
type Style struct {
	// Samples is the profile resolution. Non-positive means
	// twistedtube.DefaultSamples.
	Samples int
	// LineWidth of the profile curve. Zero means 2pt.
	LineWidth vg.Length
	// Color of the profile curve. Nil means blue.
	Color color.Color
	// ShowProperties annotates the plot with area, perimeter and the
	// hydraulic and valley diameters.
	ShowProperties bool
}

func (s Style) samples() int {
	if s.Samples > 0 {
		return s.Samples
	}
	return twistedtube.DefaultSamples
}

func (s Style) lineWidth() vg.Length {
	if s.LineWidth > 0 {
		return s.LineWidth
	}
	return vg.Points(2)
}

func (s Style) lineColor() color.Color {
	if s.Color != nil {
		return s.Color
	}
	return color.RGBA{B: 255, A: 255}
}

// ExportCartesian writes an x,y plot of the cross-section profile to
// filename. The output format follows the file extension (.png, .svg, .pdf);
// anything else gets ".png" appended.
func ExportCartesian(t twistedtube.Tube, s Style, filename string) error {
	p := newProfilePlot(t)
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	line, err := profileLine(t, s)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("%d-lobed tube", t.NumLobes()), line)
	p.Legend.Top = true

	if s.ShowProperties {
		if err := annotate(p, t, s.samples()); err != nil {
			return err
		}
	}
	return save(p, filename)
}

// ExportPolar writes the profile together with dashed reference circles at
// the inner and outer radius, the closest gonum/plot gets to a polar view
// (it has no polar projection).
func ExportPolar(t twistedtube.Tube, s Style, filename string) error {
	p := newProfilePlot(t)
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	for _, radius := range []float64{t.InnerRadius(), t.OuterRadius()} {
		circle, err := plotter.NewLine(circlePoints(radius, 256))
		if err != nil {
			return err
		}
		circle.LineStyle.Color = color.Gray{Y: 128}
		circle.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(circle)
	}

	line, err := profileLine(t, s)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("%d-lobed tube", t.NumLobes()), line)
	p.Legend.Top = true

	if s.ShowProperties {
		if err := annotate(p, t, s.samples()); err != nil {
			return err
		}
	}
	return save(p, filename)
}

func newProfilePlot(t twistedtube.Tube) *plot.Plot {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Twisted Tube Cross-Section\nD_out=%.1fmm, n=%d, h=%.1fmm",
		t.OuterDiameter()*1e3, t.NumLobes(), t.LobeHeight()*1e3)
	// Equal axis ranges so the profile is not distorted.
	lim := t.OuterRadius() * 1.1
	p.X.Min, p.X.Max = -lim, lim
	p.Y.Min, p.Y.Max = -lim, lim
	return p
}

func profileLine(t twistedtube.Tube, s Style) (*plotter.Line, error) {
	prof := t.Profile(s.samples())
	pts := make(plotter.XYs, len(prof))
	for i, sample := range prof {
		v := sample.Cartesian()
		pts[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = s.lineWidth()
	line.LineStyle.Color = s.lineColor()
	return line, nil
}

func circlePoints(radius float64, segments int) plotter.XYs {
	pts := make(plotter.XYs, segments+1)
	for i := range pts {
		sample := twistedtube.Polar{Theta: 2 * math.Pi * float64(i) / float64(segments), R: radius}
		v := sample.Cartesian()
		pts[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return pts
}

func annotate(p *plot.Plot, t twistedtube.Tube, samples int) error {
	props := t.Properties(samples)
	lines := []string{
		fmt.Sprintf("Area: %.2f mm²", props.Area*1e6),
		fmt.Sprintf("Perimeter: %.2f mm", props.Perimeter*1e3),
		fmt.Sprintf("D_h: %.2f mm", props.EquivalentDiameter*1e3),
		fmt.Sprintf("D_min: %.2f mm", props.InnerDiameter*1e3),
	}
	lim := t.OuterRadius() * 1.1
	for i, text := range lines {
		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: -lim * 0.95, Y: lim * (0.92 - 0.1*float64(i))}},
			Labels: []string{text},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}
	return nil
}

func save(p *plot.Plot, filename string) error {
	const width, height = 6 * vg.Inch, 6 * vg.Inch
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
