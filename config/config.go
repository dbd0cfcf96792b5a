package config

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"mandelbrot/mandelbrot"
)

// Config is the effective run configuration after argument parsing.
type Config struct {
	Color         color.RGBA
	MaxIterations int
	Scaling       mandelbrot.Scaling
	Size          float64
}

func Default() Config {
	return Config{
		Color:         mandelbrot.DefaultColor,
		MaxIterations: mandelbrot.DefaultMaxIterations,
		Scaling:       mandelbrot.Truncating,
		Size:          mandelbrot.DefaultSize,
	}
}

// String renders the summary line printed at startup.
func (c Config) String() string {
	size := strconv.FormatFloat(c.Size, 'f', -1, 64)
	return fmt.Sprintf("%s px x %s px, %d iterations, color(%d, %d, %d)",
		size, size, c.MaxIterations, c.Color.R, c.Color.G, c.Color.B)
}

// Settings converts the configuration into renderer settings.
func (c Config) Settings() mandelbrot.Settings {
	return mandelbrot.Settings{
		BaseColor:     c.Color,
		MaxIterations: c.MaxIterations,
		Scaling:       c.Scaling,
		Size:          c.Size,
	}
}

// Parse scans args (without the program name) for -s, -i, -r, -g and -b,
// plus the --rounded switch selecting rounded color scaling.
// Every argument equal to a flag name is treated as that flag and takes the
// argument after it as its value. Unknown arguments are ignored. A missing
// or malformed value keeps the current value and writes a warning to out.
// The summary line is written once at the end, and once more up front when
// there are no arguments at all.
func Parse(args []string, out io.Writer) Config {
	c := Default()

	if len(args) == 0 {
		fmt.Fprintln(out, c)
	}

	for i, arg := range args {
		value, ok := next(args, i)

		switch arg {
		case "-s":
			size, err := strconv.ParseFloat(value, 64)
			if !ok || err != nil {
				fmt.Fprintf(out, "Invalid Size: Using default value (%s px)!\n", strconv.FormatFloat(c.Size, 'f', -1, 64))
				continue
			}
			c.Size = size
		case "-i":
			iterations, err := strconv.ParseInt(value, 10, 32)
			if !ok || err != nil {
				fmt.Fprintln(out, "Invalid iteration size: Using default value (100)!")
				continue
			}
			c.MaxIterations = int(iterations)
		case "-r":
			red, err := parseChannel(value, ok)
			if err != nil {
				fmt.Fprintln(out, "Invalid red color value: Using default value (0)!")
				continue
			}
			c.Color.R = red
		case "-g":
			green, err := parseChannel(value, ok)
			if err != nil {
				fmt.Fprintln(out, "Invalid green color value: Using default value (255)!")
				continue
			}
			c.Color.G = green
		case "-b":
			blue, err := parseChannel(value, ok)
			if err != nil {
				fmt.Fprintln(out, "Invalid blue color value: Using default value (255)!")
				continue
			}
			c.Color.B = blue
		case "--rounded":
			c.Scaling = mandelbrot.Rounded
		}
	}

	fmt.Fprintln(out, c)
	return c
}

func next(args []string, i int) (string, bool) {
	if i+1 >= len(args) {
		return "", false
	}
	return args[i+1], true
}

func parseChannel(value string, ok bool) (uint8, error) {
	if !ok {
		return 0, fmt.Errorf("missing channel value")
	}
	// one leading plus sign is accepted, as for -i
	channel, err := strconv.ParseUint(strings.TrimPrefix(value, "+"), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("channel value %q: %w", value, err)
	}
	return uint8(channel), nil
}
