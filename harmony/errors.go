package harmony

import "github.com/pkg/errors"

// ErrInvalidColorFormat is returned for any input that is not a 3 or 6 digit
// hex color (or, for Resolve, a known color name).
var ErrInvalidColorFormat = errors.New("invalid color format")

func invalidColor(input string) error {
	return errors.Wrapf(ErrInvalidColorFormat, "%q", input)
}

// IsInvalidColor reports whether err was caused by malformed color input.
func IsInvalidColor(err error) bool {
	return err != nil && errors.Cause(err) == ErrInvalidColorFormat
}
