package sky

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Two-stop palettes the gradient blends between.
var (
	nightTop    = mustHex("#0B0C10")
	nightBottom = mustHex("#1F2833")
	dawnTop     = mustHex("#FF4500")
	dawnBottom  = mustHex("#FFA500")
	dayTop      = mustHex("#87CEEB")
	dayBottom   = mustHex("#ADD8E6")
)

// GradientColors returns the top and bottom background colors for the given
// instant and location. The sun's altitude maps to a blend factor: full
// night at or below -6 degrees, a dawn/dusk ramp up to the horizon, then a
// day ramp to the zenith.
func GradientColors(t time.Time, lat, lon float64) (string, string) {
	factor := blendFactor(SolarAltitude(t, lat, lon))

	var top, bottom colorful.Color
	if factor <= 0.5 {
		local := factor * 2
		top = nightTop.BlendRgb(dawnTop, local)
		bottom = nightBottom.BlendRgb(dawnBottom, local)
	} else {
		local := (factor - 0.5) * 2
		top = dawnTop.BlendRgb(dayTop, local)
		bottom = dawnBottom.BlendRgb(dayBottom, local)
	}
	return top.Hex(), bottom.Hex()
}

func blendFactor(altitudeDeg float64) float64 {
	switch {
	case altitudeDeg <= -6:
		return 0
	case altitudeDeg < 0:
		return ((altitudeDeg + 6) / 6) * 0.5
	case altitudeDeg <= 90:
		return 0.5 + (altitudeDeg/90)*0.5
	default:
		return 1
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
