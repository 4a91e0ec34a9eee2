package main

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/DSU-DefSec/harmony-viewer/harmony"
)

// validateColor resolves the "color" query parameter. When it is absent the
// visitor's remembered color is used; fromQuery reports which one it was.
func validateColor(c *gin.Context) (color string, fromQuery bool, err error) {
	input, ok := c.GetQuery("color")
	if !ok || input == "" {
		return getColorOptional(c), false, nil
	}
	color, err = harmony.Resolve(input)
	if err != nil {
		return "", true, err
	}
	return color, true, nil
}

// validateHSL reads h, s and l query parameters. Hue may be any finite
// angle and is normalized; saturation and lightness must be fractions.
func validateHSL(c *gin.Context) (harmony.HSL, error) {
	var vals [3]float64
	for i, key := range []string{"h", "s", "l"} {
		raw, ok := c.GetQuery(key)
		if !ok {
			return harmony.HSL{}, errors.Errorf("missing parameter %q", key)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return harmony.HSL{}, errors.Errorf("parameter %q is not a number", key)
		}
		vals[i] = v
	}
	if vals[1] < 0 || vals[1] > 1 {
		return harmony.HSL{}, errors.New("saturation must be between 0 and 1")
	}
	if vals[2] < 0 || vals[2] > 1 {
		return harmony.HSL{}, errors.New("lightness must be between 0 and 1")
	}
	return harmony.Rotate(harmony.HSL{H: vals[0], S: vals[1], L: vals[2]}, 0), nil
}
