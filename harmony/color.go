/*
	Package harmony implements the RGB/HSL conversions and hue rotations
	behind the color harmony viewer.

	Adapted from https://github.com/gerow/go-color (Brandon Thomson), itself
	based on the closure-library color.js and the algorithms on easyrgb.com.
	Floats are used in the color types to keep conversions accurate; hue is
	kept in degrees, saturation and lightness as fractions.
*/
package harmony

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGB is a color with each channel in [0, 1].
type RGB struct {
	R, G, B float64
}

// HSL is a color with H in degrees [0, 360) and S, L in [0, 1].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// ParseHex decodes "#rrggbb", "rrggbb", "#rgb" or "rgb".
func ParseHex(hex string) (RGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}
	if len(digits) != 6 {
		return RGB{}, invalidColor(hex)
	}

	var channels [3]float64
	for i := range channels {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, invalidColor(hex)
		}
		channels[i] = float64(v) / 255
	}
	return RGB{channels[0], channels[1], channels[2]}, nil
}

// Normalize returns hex in canonical "#rrggbb" form.
func Normalize(hex string) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return "#" + c.ToHTML(), nil
}

// FromColor converts any image/color value, ignoring alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{float64(r>>8) / 255, float64(g>>8) / 255, float64(b>>8) / 255}
}

// ToHSL converts to HSL without rounding; grays get hue and saturation 0.
func (c RGB) ToHSL() HSL {
	r, g, b := c.R, c.G, c.B

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)

	// Lightness is the average of the largest and smallest channels.
	l := (max + min) / 2

	d := max - min
	if d == 0 {
		// it's gray
		return HSL{0, 0, l}
	}

	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}

	return HSL{h * 60, s, l}
}

// ToHTML formats the color as six lowercase hex digits without a leading '#'.
func (c RGB) ToHTML() string {
	return fmt.Sprintf("%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

// RGBA implements color.Color so harmony colors can be drawn directly.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(channelByte(c.R))
	g = uint32(channelByte(c.G))
	b = uint32(channelByte(c.B))
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

func channelByte(v float64) uint8 {
	v = math.Round(v * 255)
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// ToRGB converts to RGB; hue is in degrees and may lie outside [0, 360).
func (c HSL) ToRGB() RGB {
	h, s, l := c.H/360, c.S, c.L

	if s == 0 {
		// it's gray
		return RGB{l, l, l}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: hueToRGB(p, q, h+1.0/3.0),
		G: hueToRGB(p, q, h),
		B: hueToRGB(p, q, h-1.0/3.0),
	}
}

// HexToHSL decodes a hex color into unrounded HSL.
func HexToHSL(hex string) (HSL, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return c.ToHSL(), nil
}

// HSLToHex encodes an HSL triple as six hex digits, without a leading '#'.
func HSLToHex(h, s, l float64) string {
	return HSL{h, s, l}.ToRGB().ToHTML()
}
