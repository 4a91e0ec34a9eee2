package harmony

import (
	"strings"

	"golang.org/x/image/colornames"
)

// Resolve accepts a hex color or an SVG 1.1 color keyword ("tomato",
// "SteelBlue") and returns the canonical "#rrggbb" form.
func Resolve(input string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(input))
	if c, ok := colornames.Map[name]; ok {
		return "#" + FromColor(c).ToHTML(), nil
	}
	return Normalize(input)
}
