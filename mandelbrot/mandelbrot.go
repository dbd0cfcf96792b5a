package mandelbrot

import (
	"image"
	"image/color"
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/misc"
)

// Fixed viewing window on the complex plane.
const (
	realMin      = -2.0
	realMax      = 1.0
	imaginaryMin = -1.5
	imaginaryMax = 1.5
)

type Mandelbrot struct {
	logger    bslogger.Logger
	rectangle image.Rectangle
	settings  Settings
}

func NewMandelbrot(settings Settings) Mandelbrot {
	mandelbrot := Mandelbrot{
		logger: bslogger.NewLogger("Mandelbrot", bslogger.Normal, nil),
	}
	misc.CheckError(settings.Verify(), mandelbrot.logger, misc.Fatal)

	side := int(settings.Size)
	mandelbrot.rectangle = image.Rect(0, 0, side, side)
	mandelbrot.settings = settings

	return mandelbrot
}

func (m *Mandelbrot) Settings() Settings {
	return m.settings
}

func (m *Mandelbrot) Bounds() image.Rectangle {
	return m.rectangle
}

// ConvertPixelCoordinateToComplexCoordinate maps a pixel onto the window
// real [-2, 1] x imaginary [-1.5, 1.5]. The configured size is the divisor,
// so a fractional size stretches the window past the last pixel.
func (m *Mandelbrot) ConvertPixelCoordinateToComplexCoordinate(column int, row int) (float64, float64) {
	x := misc.LerpFloat64(realMin, realMax, float64(column)/m.settings.Size)
	y := misc.LerpFloat64(imaginaryMin, imaginaryMax, float64(row)/m.settings.Size)
	return x, y
}

func (m *Mandelbrot) EscapeTime(column int, row int) Escape {
	x, y := m.ConvertPixelCoordinateToComplexCoordinate(column, row)
	return EscapeTime(x, y, m.settings.MaxIterations)
}

// MaxIterations sweeps every pixel and returns the highest escape count.
// Bounded pixels never raise it and the result is never below zero.
func (m *Mandelbrot) MaxIterations() int {
	maxIterations := 0
	for row := m.rectangle.Min.Y; row < m.rectangle.Max.Y; row++ {
		for column := m.rectangle.Min.X; column < m.rectangle.Max.X; column++ {
			if v := m.EscapeTime(column, row).Value(); v > maxIterations {
				maxIterations = v
			}
		}
	}
	return maxIterations
}

func (m *Mandelbrot) GetColor(escape Escape, maxIterations int) color.RGBA {
	if escape.Bounded {
		return m.settings.InnerColor
	}
	return m.settings.Scaling.scaleColor(m.settings.BaseColor, escape.Iterations, maxIterations)
}

// Colorize recomputes every pixel and scales its color against maxIterations.
func (m *Mandelbrot) Colorize(maxIterations int) *image.RGBA {
	img := image.NewRGBA(m.rectangle)
	for row := m.rectangle.Min.Y; row < m.rectangle.Max.Y; row++ {
		for column := m.rectangle.Min.X; column < m.rectangle.Max.X; column++ {
			img.SetRGBA(column, row, m.GetColor(m.EscapeTime(column, row), maxIterations))
		}
	}
	return img
}

// Render runs the max-scan pass followed by the colorize pass.
func (m *Mandelbrot) Render() *image.RGBA {
	var startTime = time.Now()

	m.logger.Infof("Scanning %dx%d pixels with an iteration cap of %d", m.rectangle.Dx(), m.rectangle.Dy(), m.settings.MaxIterations)
	maxIterations := m.MaxIterations()
	m.logger.Infof("Maximum iteration count is %d of %d", maxIterations, m.settings.MaxIterations)

	m.logger.Infof("Coloring with %s scaling", m.settings.Scaling)
	img := m.Colorize(maxIterations)

	m.logger.Debugf("Rendered %s in %s", m.settings.String(), time.Since(startTime))
	return img
}
