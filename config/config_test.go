package config

import (
	"bytes"
	"image/color"
	"testing"

	"mandelbrot/mandelbrot"
)

const defaultSummary = "2000 px x 2000 px, 100 iterations, color(0, 255, 255)\n"

func TestParseNoArguments(t *testing.T) {
	var out bytes.Buffer
	c := Parse(nil, &out)

	if c != Default() {
		t.Errorf("Parse(nil) = %+v, want %+v", c, Default())
	}
	if got, want := out.String(), defaultSummary+defaultSummary; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		want   Config
		output string
	}{
		{
			name: "all flags",
			args: []string{"-s", "300", "-i", "50", "-r", "10", "-g", "20", "-b", "30"},
			want: Config{
				Color:         color.RGBA{R: 10, G: 20, B: 30, A: 255},
				MaxIterations: 50,
				Size:          300,
			},
			output: "300 px x 300 px, 50 iterations, color(10, 20, 30)\n",
		},
		{
			name:   "order independent",
			args:   []string{"-b", "1", "-s", "12.5"},
			want:   Config{Color: color.RGBA{R: 0, G: 255, B: 1, A: 255}, MaxIterations: 100, Size: 12.5},
			output: "12.5 px x 12.5 px, 100 iterations, color(0, 255, 1)\n",
		},
		{
			name:   "unparsable iterations",
			args:   []string{"-i", "abc"},
			want:   Default(),
			output: "Invalid iteration size: Using default value (100)!\n" + defaultSummary,
		},
		{
			name:   "iterations overflow",
			args:   []string{"-i", "3000000000"},
			want:   Default(),
			output: "Invalid iteration size: Using default value (100)!\n" + defaultSummary,
		},
		{
			name:   "missing size",
			args:   []string{"-s"},
			want:   Default(),
			output: "Invalid Size: Using default value (2000 px)!\n" + defaultSummary,
		},
		{
			name:   "size warning reports current value",
			args:   []string{"-s", "300", "-s", "big"},
			want:   Config{Color: mandelbrot.DefaultColor, MaxIterations: 100, Size: 300},
			output: "Invalid Size: Using default value (300 px)!\n300 px x 300 px, 100 iterations, color(0, 255, 255)\n",
		},
		{
			name: "flag as value",
			args: []string{"-s", "-i", "5"},
			want: Config{Color: mandelbrot.DefaultColor, MaxIterations: 5, Size: 2000},
			output: "Invalid Size: Using default value (2000 px)!\n" +
				"2000 px x 2000 px, 5 iterations, color(0, 255, 255)\n",
		},
		{
			name: "channels out of range",
			args: []string{"-r", "256", "-g", "-1", "-b"},
			want: Default(),
			output: "Invalid red color value: Using default value (0)!\n" +
				"Invalid green color value: Using default value (255)!\n" +
				"Invalid blue color value: Using default value (255)!\n" +
				defaultSummary,
		},
		{
			name:   "leading plus sign",
			args:   []string{"-r", "+5", "-g", "++5", "-b", "+"},
			want:   Config{Color: color.RGBA{R: 5, G: 255, B: 255, A: 255}, MaxIterations: 100, Size: 2000},
			output: "Invalid green color value: Using default value (255)!\n" +
				"Invalid blue color value: Using default value (255)!\n" +
				"2000 px x 2000 px, 100 iterations, color(5, 255, 255)\n",
		},
		{
			name:   "unknown arguments",
			args:   []string{"-x", "5", "image", "--size", "10"},
			want:   Default(),
			output: defaultSummary,
		},
		{
			name: "rounded scaling",
			args: []string{"--rounded", "-i", "20"},
			want: Config{
				Color:         mandelbrot.DefaultColor,
				MaxIterations: 20,
				Scaling:       mandelbrot.Rounded,
				Size:          2000,
			},
			output: "2000 px x 2000 px, 20 iterations, color(0, 255, 255)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := Parse(tt.args, &out)

			if c != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.args, c, tt.want)
			}
			if got := out.String(); got != tt.output {
				t.Errorf("output = %q, want %q", got, tt.output)
			}
		})
	}
}

func TestSettings(t *testing.T) {
	c := Config{
		Color:         color.RGBA{R: 1, G: 2, B: 3, A: 255},
		MaxIterations: 42,
		Scaling:       mandelbrot.Rounded,
		Size:          64,
	}
	s := c.Settings()

	if s.BaseColor != c.Color || s.MaxIterations != 42 || s.Scaling != mandelbrot.Rounded || s.Size != 64 {
		t.Errorf("Settings() = %s, want values from %+v", s.String(), c)
	}
}
