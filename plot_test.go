package main

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/DSU-DefSec/harmony-viewer/harmony"
)

func TestWheelPoint(t *testing.T) {
	tests := []struct {
		c    harmony.HSL
		x, y float64
	}{
		{harmony.HSL{H: 0, S: 1}, 1, 0},
		{harmony.HSL{H: 90, S: 0.5}, 0, 0.5},
		{harmony.HSL{H: 180, S: 1}, -1, 0},
		{harmony.HSL{H: 123, S: 0}, 0, 0},
	}
	for _, tt := range tests {
		p := wheelPoint(tt.c)
		if math.Abs(p.X-tt.x) > 1e-9 || math.Abs(p.Y-tt.y) > 1e-9 {
			t.Errorf("wheelPoint(%+v) = %+v, want (%v, %v)", tt.c, p, tt.x, tt.y)
		}
	}
}

func TestDrawWheel(t *testing.T) {
	for _, hex := range []string{"#3366cc", "#808080", "#000000"} {
		set, err := harmony.Harmonize(hex)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := drawWheel(&buf, set, 6*vg.Centimeter); err != nil {
			t.Fatalf("%s: %v", hex, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("%s: %v", hex, err)
		}
		if b := img.Bounds(); b.Dx() == 0 || b.Dx() != b.Dy() {
			t.Fatalf("%s: unexpected bounds %v", hex, b)
		}
	}
}
