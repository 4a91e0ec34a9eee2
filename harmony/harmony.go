package harmony

import "math"

// Hue offsets, in degrees, of the derived harmony colors.
const (
	DiadOffset   = 180
	TriadOffset1 = 120
	TriadOffset2 = 240
)

// Set is every harmony derived from one base color.
type Set struct {
	Base  string   `json:"base" yaml:"base"`
	HSL   HSL      `json:"hsl" yaml:"hsl"`
	Diad  []string `json:"diad" yaml:"diad"`
	Triad []string `json:"triad" yaml:"triad"`
}

// Rotate shifts the hue by deg, normalized into [0, 360).
func Rotate(c HSL, deg float64) HSL {
	h := math.Mod(c.H+deg, 360)
	if h < 0 {
		h += 360
	}
	// -0 and values that round up to 360 both mean red
	if h >= 360 || h == 0 {
		h = 0
	}
	c.H = h
	return c
}

func rotatedHex(c HSL, deg float64) string {
	r := Rotate(c, deg)
	return "#" + HSLToHex(r.H, r.S, r.L)
}

func diad(c HSL) []string {
	return []string{rotatedHex(c, DiadOffset)}
}

func triad(c HSL) []string {
	return []string{
		rotatedHex(c, TriadOffset1),
		rotatedHex(c, TriadOffset2),
	}
}

// Diad returns the complement of hex: one '#'-prefixed color.
func Diad(hex string) ([]string, error) {
	c, err := HexToHSL(hex)
	if err != nil {
		return nil, err
	}
	return diad(c), nil
}

// Triad returns the two colors 120 and 240 degrees around the wheel from
// hex, in that order.
func Triad(hex string) ([]string, error) {
	c, err := HexToHSL(hex)
	if err != nil {
		return nil, err
	}
	return triad(c), nil
}

// Harmonize decodes hex once and derives both harmonies from it.
func Harmonize(hex string) (Set, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return Set{}, err
	}
	c := rgb.ToHSL()
	return Set{
		Base:  "#" + rgb.ToHTML(),
		HSL:   c,
		Diad:  diad(c),
		Triad: triad(c),
	}, nil
}
