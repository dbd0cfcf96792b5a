package mandelbrot

import "fmt"

// Escape is the outcome of iterating a single point of the complex plane.
// A point either escapes after some number of iterations or stays bounded
// until the iteration cap is reached.
type Escape struct {
	Iterations int
	Bounded    bool
}

// Bounded is the result for points that never left the escape radius.
var Bounded = Escape{Bounded: true}

func Escaped(iterations int) Escape {
	return Escape{Iterations: iterations}
}

// Value returns the iteration count, or -1 for a bounded point.
func (e Escape) Value() int {
	if e.Bounded {
		return -1
	}
	return e.Iterations
}

func (e Escape) String() string {
	if e.Bounded {
		return "{Escape Bounded}"
	}
	return fmt.Sprintf("{Escape Iterations: %d}", e.Iterations)
}

// EscapeTime iterates z = z^2 + c starting from z = c = (x, y).
// The magnitude is checked before each update, so a point already outside
// the radius returns zero iterations and a point exactly on it is updated.
func EscapeTime(x float64, y float64, maxIterations int) Escape {
	re, im := x, y
	iteration := 0
	for re*re+im*im <= boundary {
		re, im = x+re*re-im*im, y+2*re*im
		iteration++

		if iteration >= maxIterations {
			return Bounded
		}
	}
	return Escaped(iteration)
}
