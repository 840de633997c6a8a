package renderer

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

func TestQuantizeColor(t *testing.T) {
	tests := []struct {
		name    string
		color   core.Vec3
		r, g, b int
	}{
		{"black", core.NewVec3(0, 0, 0), 0, 0, 0},
		{"white", core.NewVec3(1, 1, 1), 255, 255, 255},
		{"quarter is half after gamma", core.NewVec3(0.25, 0.25, 0.25), 127, 127, 127},
		{"sky horizon", core.NewVec3(0.75, 0.85, 1.0), 221, 236, 255},
		{"overbright clamps", core.NewVec3(4, 1.5, 0.5), 255, 255, 181},
		{"negative clamps", core.NewVec3(-1, 0, 0), 0, 0, 0},
		{"NaN is black", core.NewVec3(math.NaN(), 0, 0), 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := QuantizeColor(tt.color)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected (%d, %d, %d), got (%d, %d, %d)", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}

func TestPPMWriter_Format(t *testing.T) {
	var buf bytes.Buffer
	w := NewPPMWriter(&buf, 2, 1)

	if err := w.WriteHeader(); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	if err := w.WritePixel(core.NewVec3(1, 0, 0.25)); err != nil {
		t.Fatalf("WritePixel failed: %v", err)
	}
	if err := w.WritePixel(core.NewVec3(0, 1, 0)); err != nil {
		t.Fatalf("WritePixel failed: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	expected := "P3\n2 1\n255\n255 0 127\n0 255 0\n"
	if buf.String() != expected {
		t.Errorf("Expected output %q, got %q", expected, buf.String())
	}
}

func TestPPMWriter_ShortImage(t *testing.T) {
	var buf bytes.Buffer
	w := NewPPMWriter(&buf, 2, 2)
	w.WriteHeader()
	w.WritePixel(core.NewVec3(0, 0, 0))

	err := w.Flush()
	if err == nil || !strings.Contains(err.Error(), "1 of 4") {
		t.Errorf("Expected short image error, got %v", err)
	}
}

// failingWriter rejects every write
type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errDiskFull
}

func TestPPMWriter_PropagatesWriteError(t *testing.T) {
	w := NewPPMWriter(failingWriter{}, 1, 1)
	w.WriteHeader()
	w.WritePixel(core.NewVec3(0, 0, 0))

	if err := w.Flush(); !errors.Is(err, errDiskFull) {
		t.Errorf("Expected disk full error, got %v", err)
	}
}
