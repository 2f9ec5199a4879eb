// Package palette extracts representative colors from images and compares
// colors perceptually in L*a*b* space.
package palette

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/esimov/colorquant"
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"

	"github.com/colorkit/colorkit/colorspace"
	"github.com/colorkit/colorkit/hexcolor"
	"github.com/colorkit/colorkit/names"
)

var klch = &deltae.KLChDefault

// Entry is a palette color, its Lab equivalent, and the number of sampled
// pixels it covers in the source image.
type Entry struct {
	Color colorspace.RGBA
	Lab   colorspace.Lab
	Count int
}

type byCount []Entry

func (es byCount) Len() int           { return len(es) }
func (es byCount) Less(i, j int) bool { return es[i].Count > es[j].Count }
func (es byCount) Swap(i, j int)      { es[i], es[j] = es[j], es[i] }

type byDarkness []Entry

func (es byDarkness) Len() int           { return len(es) }
func (es byDarkness) Less(i, j int) bool { return es[i].Lab.L < es[j].Lab.L }
func (es byDarkness) Swap(i, j int)      { es[i], es[j] = es[j], es[i] }

// DeltaE returns the CIEDE2000 difference between two Lab colors.
func DeltaE(a, b colorspace.Lab) float64 {
	return deltae.CIE2000(
		chromath.Lab{a.L, a.A, a.B},
		chromath.Lab{b.L, b.A, b.B},
		klch,
	)
}

// FromImage quantizes img down to size colors and returns the resulting
// palette ordered by coverage, most prevalent first. Coverage is estimated
// by sampling every fifth pixel.
func FromImage(img image.Image, size int) ([]Entry, error) {
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, size, false, true)

	m := make(map[colorspace.RGBA]int)
	w, h := o.Bounds().Max.X, o.Bounds().Max.Y
	for x := 0; x < w; x += 5 {
		for y := 0; y < h; y += 5 {
			r, g, b, _ := o.At(x, y).RGBA()
			c := colorspace.RGBA{
				R: int(r >> 8),
				G: int(g >> 8),
				B: int(b >> 8),
				A: colorspace.Opaque,
			}
			m[c]++
		}
	}
	if len(m) < size {
		return nil, fmt.Errorf("image does not have enough variation to support a %d color palette", size)
	}

	es := make([]Entry, 0, len(m))
	for c, n := range m {
		es = append(es, Entry{Color: c, Lab: c.Lab(), Count: n})
	}
	sort.Sort(byCount(es))
	return es, nil
}

// Nearest returns the named color perceptually closest to c and its
// CIEDE2000 distance.
func Nearest(c colorspace.RGBA) (string, float64) {
	lab := c.Lab()

	var nearest string
	best := math.Inf(1)
	for _, name := range names.All() {
		hex, _ := names.Get(name)
		h, err := hexcolor.Parse(hex)
		if err != nil {
			continue
		}
		if d := DeltaE(lab, h.RGBA().Lab()); d < best {
			nearest = name
			best = d
		}
	}
	return nearest, best
}

// Distinguish filters entries down to colors that each differ from every
// previously kept color by at least minDiff (CIEDE2000). Order is
// preserved, so coverage-ordered input keeps the most prevalent of any
// cluster of near-identical colors.
func Distinguish(entries []Entry, minDiff float64) []Entry {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		distinct := true
		for _, k := range kept {
			if DeltaE(e.Lab, k.Lab) < minDiff {
				distinct = false
				break
			}
		}
		if distinct {
			kept = append(kept, e)
		}
	}
	return kept
}

// Split partitions entries into dark and light halves by lightness, each
// half ordered by coverage. The input slice is not modified.
func Split(entries []Entry) (dark, light []Entry) {
	es := append([]Entry(nil), entries...)
	sort.Sort(byDarkness(es))

	dark = es[:len(es)/2]
	light = es[len(es)/2:]
	sort.Sort(byCount(dark))
	sort.Sort(byCount(light))
	return dark, light
}
