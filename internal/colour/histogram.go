package colour

import (
	"cmp"
	"image"
	"slices"
)

// Entry is one bucket of a colour histogram.
type Entry struct {
	Colour RGB
	Count  int
}

// Histogram counts every exact colour in img. Alpha is ignored. Entries are
// returned in the order each colour was first seen, scanning row by row.
func Histogram(img *image.RGBA) []Entry {
	bounds := img.Bounds()
	index := make(map[RGB]int)
	entries := make([]Entry, 0, 64)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, y):]
		for x := 0; x < bounds.Dx(); x++ {
			p := row[x*4 : x*4+3]
			rgb := RGB{R: p[0], G: p[1], B: p[2]}
			if i, ok := index[rgb]; ok {
				entries[i].Count++
				continue
			}
			index[rgb] = len(entries)
			entries = append(entries, Entry{Colour: rgb, Count: 1})
		}
	}

	return entries
}

// Rank sorts entries by descending count. Equal counts are ordered by
// ascending 0xRRGGBB value so the result does not depend on scan order.
func Rank(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Colour.Packed(), b.Colour.Packed())
	})
}

// Top returns up to limit entries with distinct hex codes, keeping the first
// occurrence of each. Entries are expected to be ranked already. A limit of
// zero or less means no limit.
func Top(entries []Entry, limit int) []Swatch {
	seen := make(map[string]bool, len(entries))
	var swatches []Swatch

	for _, e := range entries {
		if limit > 0 && len(swatches) == limit {
			break
		}
		hex := e.Colour.Hex()
		if seen[hex] {
			continue
		}
		seen[hex] = true
		swatches = append(swatches, Swatch{Hex: hex, RGB: e.Colour, Count: e.Count})
	}

	return swatches
}
