// Package layout sizes the overview tile grid.
//
// Given a window count and the container box, the solver picks the column
// count that maximizes per-tile width under width, height, and aspect
// constraints. Window counts are small, so a brute-force scan over every
// candidate column count is cheap, deterministic, and easy to test; the
// solver is stateless and re-run in full whenever the container size or
// item count changes.
package layout

import "math"

// DefaultAspectRatio is the tile width/height ratio (4:3).
const DefaultAspectRatio = 4.0 / 3.0

// Params describes one solve request.
type Params struct {
	ItemCount       int
	ContainerWidth  float64
	ContainerHeight float64

	// Spacing is the gap between adjacent tiles, in pixels.
	Spacing float64

	// AspectRatio is tile width divided by tile height. Zero means
	// DefaultAspectRatio.
	AspectRatio float64

	// WidthFraction and HeightFraction scope how much of the container the
	// grid may occupy, leaving margin for clock, dock, and status chrome.
	// Zero means the full dimension.
	WidthFraction  float64
	HeightFraction float64

	// MinTileWidth is a floor applied to every candidate. Zero disables it.
	MinTileWidth float64

	// MaxTileWidthFraction caps tile width at a fraction of the container
	// width. Zero disables the cap.
	MaxTileWidthFraction float64
}

// Geometry is the solved grid shape.
type Geometry struct {
	Columns    int
	Rows       int
	TileWidth  float64
	TileHeight float64
}

func (p Params) aspect() float64 {
	if p.AspectRatio > 0 {
		return p.AspectRatio
	}
	return DefaultAspectRatio
}

func (p Params) fractions() (w, h float64) {
	w, h = p.WidthFraction, p.HeightFraction
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return w, h
}

// candidateWidth computes the tile width achievable with the given column
// count: the tightest of the per-column width bound, the per-row height
// bound converted through the aspect ratio, and the optional max-width cap,
// floored at MinTileWidth.
func candidateWidth(p Params, cols, rows int) float64 {
	wf, hf := p.fractions()

	widthBound := (p.ContainerWidth*wf - float64(cols-1)*p.Spacing) / float64(cols)
	heightBound := (p.ContainerHeight*hf - float64(rows-1)*p.Spacing) / float64(rows) * p.aspect()

	w := math.Min(widthBound, heightBound)
	if p.MaxTileWidthFraction > 0 {
		w = math.Min(w, p.ContainerWidth*p.MaxTileWidthFraction)
	}
	if p.MinTileWidth > 0 && w < p.MinTileWidth {
		w = p.MinTileWidth
	}
	return w
}

// Solve picks the column count in [1, ItemCount] yielding the largest tile
// width. Ties keep the smallest column count: a later candidate replaces the
// incumbent only on strict improvement. The second return is false when
// ItemCount is zero, in which case the caller renders an empty state.
func Solve(p Params) (Geometry, bool) {
	if p.ItemCount <= 0 {
		return Geometry{}, false
	}

	bestCols, bestWidth := 1, 0.0
	for cols := 1; cols <= p.ItemCount; cols++ {
		rows := rowsFor(p.ItemCount, cols)
		if w := candidateWidth(p, cols, rows); w > bestWidth {
			bestWidth, bestCols = w, cols
		}
	}

	return Geometry{
		Columns:    bestCols,
		Rows:       rowsFor(p.ItemCount, bestCols),
		TileWidth:  bestWidth,
		TileHeight: bestWidth / p.aspect(),
	}, true
}

func rowsFor(count, cols int) int {
	return (count + cols - 1) / cols
}
