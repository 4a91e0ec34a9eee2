package main

import (
	"image/color"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/DSU-DefSec/harmony-viewer/harmony"
)

var wheelRim = color.Gray{Y: 0xa0}

// wheelPoint places a color on the hue wheel: angle from hue, distance from
// the centre from saturation, so grays sit in the middle.
func wheelPoint(c harmony.HSL) plotter.XY {
	rad := c.H * math.Pi / 180
	return plotter.XY{X: c.S * math.Cos(rad), Y: c.S * math.Sin(rad)}
}

func wheelRimLine() (*plotter.Line, error) {
	pts := make(plotter.XYs, 361)
	for i := range pts {
		rad := float64(i) * math.Pi / 180
		pts[i].X = math.Cos(rad)
		pts[i].Y = math.Sin(rad)
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Color = wheelRim
	return l, nil
}

// harmonyPolygon joins the base color to its harmonies and back.
func harmonyPolygon(base harmony.HSL, hexes []string) (*plotter.Line, error) {
	pts := plotter.XYs{wheelPoint(base)}
	for _, hex := range hexes {
		c, err := harmony.HexToHSL(hex)
		if err != nil {
			return nil, err
		}
		pts = append(pts, wheelPoint(c))
	}
	pts = append(pts, wheelPoint(base))
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Color = color.Black
	l.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	return l, nil
}

func swatch(p *plot.Plot, label, hex string) error {
	rgb, err := harmony.ParseHex(hex)
	if err != nil {
		return err
	}
	s, err := plotter.NewScatter(plotter.XYs{wheelPoint(rgb.ToHSL())})
	if err != nil {
		return err
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(8)
	s.GlyphStyle.Color = rgb
	p.Add(s)
	p.Legend.Add(label+" "+hex, s)
	return nil
}

// drawWheel renders the base color and its harmonies on a hue wheel as PNG.
func drawWheel(w io.Writer, set harmony.Set, size vg.Length) error {
	p := plot.New()
	p.Title.Text = set.Base
	p.HideAxes()
	p.BackgroundColor = color.White
	p.X.Min, p.X.Max = -1.2, 1.2
	p.Y.Min, p.Y.Max = -1.2, 1.2
	p.Legend.Top = true
	p.Legend.Left = true

	rim, err := wheelRimLine()
	if err != nil {
		return err
	}
	p.Add(rim)

	triad, err := harmonyPolygon(set.HSL, set.Triad)
	if err != nil {
		return err
	}
	diad, err := harmonyPolygon(set.HSL, set.Diad)
	if err != nil {
		return err
	}
	p.Add(triad, diad)

	if err := swatch(p, "Base", set.Base); err != nil {
		return err
	}
	if err := swatch(p, "Dyad", set.Diad[0]); err != nil {
		return err
	}
	for i, hex := range set.Triad {
		if err := swatch(p, "Triad "+strconv.Itoa(i+1), hex); err != nil {
			return err
		}
	}

	c := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(size, size),
		vgimg.UseBackgroundColor(color.White),
	)}
	p.Draw(draw.New(c))

	_, err = c.WriteTo(w)
	return err
}
