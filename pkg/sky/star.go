// Package sky renders the home-screen backdrop: a starfield and a
// time-of-day gradient driven by the sun's altitude.
package sky

import "math/rand"

// Star is one point in the starfield, in the same units as the canvas it
// was generated for.
type Star struct {
	X, Y     float64
	Size     float64
	Shooting bool
}

// HeartMessage is the ASCII mask the home screen draws its starfield from.
var HeartMessage = []string{
	"   *******     *******   ",
	"  *       *   *       *  ",
	" *         * *         * ",
	"*           *           *",
	" *                     * ",
	"  *                   *  ",
	"   *                 *   ",
	"    *               *    ",
	"     *             *     ",
	"      *           *      ",
	"       *         *       ",
	"        *       *        ",
	"         *     *         ",
	"          *   *          ",
	"           * *           ",
	"            *            ",
}

// Generate scatters n stars of size 1-4 uniformly over a w by h canvas.
func Generate(n int, w, h float64, rng *rand.Rand) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:    rng.Float64() * w,
			Y:    rng.Float64() * h,
			Size: rng.Float64()*3 + 1,
		}
	}
	return stars
}

// FromMessage places a size 5-10 star in the center of every '*' cell of the
// mask, scaled to 70% of the canvas and centered.
func FromMessage(lines []string, w, h float64, rng *rand.Rand) []Star {
	rows := len(lines)
	cols := 0
	for _, line := range lines {
		if len(line) > cols {
			cols = len(line)
		}
	}
	if rows == 0 || cols == 0 {
		return nil
	}

	drawW := w * 0.7
	drawH := h * 0.7
	cellW := drawW / float64(cols)
	cellH := drawH / float64(rows)
	xOff := (w - drawW) / 2
	yOff := (h - drawH) / 2

	var stars []Star
	for row, line := range lines {
		for col, ch := range line {
			if ch != '*' {
				continue
			}
			stars = append(stars, Star{
				X:    xOff + float64(col)*cellW + cellW/2,
				Y:    yOff + float64(row)*cellH + cellH/2,
				Size: rng.Float64()*5 + 5,
			})
		}
	}
	return stars
}
