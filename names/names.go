// Package names is a read-only lookup table from lowercase color name to
// hex notation, backed by the SVG 1.1 color list.
package names

import (
	"fmt"

	"golang.org/x/image/colornames"
)

// Has reports whether name is a recognized color name. Names are matched
// exactly; callers normalize case first.
func Has(name string) bool {
	_, ok := colornames.Map[name]
	return ok
}

// Get returns the 6-digit hex notation for a named color.
func Get(name string) (string, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), true
}

// All returns every recognized color name in alphabetical order.
func All() []string {
	return colornames.Names
}
