package mandelbrot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	// squared escape radius
	boundary = 4.0

	DefaultSize          = 2000.0
	DefaultMaxIterations = 100
)

var DefaultColor = color.RGBA{R: 0, G: 255, B: 255, A: 255}

type Settings struct {
	logger bslogger.Logger

	BaseColor     color.RGBA
	InnerColor    color.RGBA
	MaxIterations int
	Scaling       Scaling
	Size          float64
}

func (s *Settings) String() string {
	output := "{Settings "
	output += fmt.Sprintf("BaseColor: %v ", s.BaseColor)
	output += fmt.Sprintf("InnerColor: %v ", s.InnerColor)
	output += fmt.Sprintf("MaxIterations: %d ", s.MaxIterations)
	output += fmt.Sprintf("Scaling: %s ", s.Scaling)
	output += fmt.Sprintf("Size: %g}", s.Size)
	return output
}

// Verify replaces values the renderer cannot work with by their defaults.
func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	// The base color is taken as given; black is a legitimate base.
	s.BaseColor.A = 255
	// A zero inner color means none was chosen, so fall back to opaque black.
	if s.InnerColor == (color.RGBA{}) {
		s.InnerColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}
	if s.MaxIterations < 1 {
		s.logger.Warningf("Iteration cap %d is not positive, using %d", s.MaxIterations, DefaultMaxIterations)
		s.MaxIterations = DefaultMaxIterations
	}
	if s.Scaling < Truncating || s.Scaling > Rounded {
		s.Scaling = Truncating
	}
	// NaN fails every comparison, so test for the usable range instead.
	if !(s.Size >= 1) || math.IsInf(s.Size, 1) {
		s.logger.Warningf("Size %g cannot hold a single pixel, using %g", s.Size, DefaultSize)
		s.Size = DefaultSize
	}

	return nil
}
