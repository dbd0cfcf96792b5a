package mandelbrot

import (
	"image/color"
	"math"
)

// Scaling selects how an iteration count is mapped onto a base color channel.
type Scaling int

const (
	// Truncating divides the channel by the maximum in 8-bit integer
	// arithmetic before multiplying, so most channels collapse to zero once
	// the maximum exceeds the channel value. This is the legacy output.
	Truncating Scaling = iota
	// Rounded computes round(channel * iterations / maximum).
	Rounded
)

func (s Scaling) String() string {
	return []string{
		"Truncating", "Rounded",
	}[s]
}

func (s Scaling) scaleChannel(base uint8, iterations int, maxIterations int) uint8 {
	switch s {
	case Rounded:
		if maxIterations == 0 {
			return 0
		}
		v := math.Round(float64(base) * float64(iterations) / float64(maxIterations))
		return uint8(math.Min(v, math.MaxUint8))
	default:
		// Both operands wrap to 8 bits before the arithmetic.
		divisor := uint8(maxIterations)
		if divisor == 0 {
			return 0
		}
		return (base / divisor) * uint8(iterations)
	}
}

func (s Scaling) scaleColor(base color.RGBA, iterations int, maxIterations int) color.RGBA {
	return color.RGBA{
		R: s.scaleChannel(base.R, iterations, maxIterations),
		G: s.scaleChannel(base.G, iterations, maxIterations),
		B: s.scaleChannel(base.B, iterations, maxIterations),
		A: 255,
	}
}
