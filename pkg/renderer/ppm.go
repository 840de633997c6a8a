package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// PPMWriter streams a plain-text (P3) portable pixmap
type PPMWriter struct {
	w             *bufio.Writer
	width, height int
	pixels        int
}

// NewPPMWriter creates a writer for a width x height image
func NewPPMWriter(w io.Writer, width, height int) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w), width: width, height: height}
}

// WriteHeader writes the P3 magic, dimensions, and maximum channel value
func (p *PPMWriter) WriteHeader() error {
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", p.width, p.height)
	return err
}

// WritePixel gamma-corrects and quantizes a linear color and writes it as one line
func (p *PPMWriter) WritePixel(color core.Vec3) error {
	r, g, b := QuantizeColor(color)
	if _, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b); err != nil {
		return err
	}
	p.pixels++
	return nil
}

// Flush writes any buffered output and reports a short image
func (p *PPMWriter) Flush() error {
	if err := p.w.Flush(); err != nil {
		return err
	}
	if expected := p.width * p.height; p.pixels != expected {
		return fmt.Errorf("ppm: wrote %d of %d pixels", p.pixels, expected)
	}
	return nil
}

// QuantizeColor applies gamma 2 and maps each channel to 0..255
func QuantizeColor(color core.Vec3) (r, g, b int) {
	c := color.Sqrt()
	return quantize(c.X), quantize(c.Y), quantize(c.Z)
}

func quantize(c float64) int {
	switch {
	case math.IsNaN(c) || c <= 0:
		return 0
	case c >= 1:
		return 255
	}
	return int(255.99 * c)
}
