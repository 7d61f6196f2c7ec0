package gabor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/RyanBlaney/sonido-grid/algorithms/common"
	"github.com/RyanBlaney/sonido-grid/logging"
)

func TestImageParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ls, x, y int
		want     Params
	}{
		{"short clip", 1000, 200, 64, Params{A: 8, M: 64, L: 1024, N: 128, NGood: 125}},
		{"one second at 44.1k", 44100, 800, 600, Params{A: 2, M: 600, L: 44400, N: 22200, NGood: 22050}},
		{"more rows than samples", 10, 3, 20, Params{A: 1, M: 10, L: 10, N: 10, NGood: 10}},
		{"padded", 7, 2, 3, Params{A: 3, M: 3, L: 9, N: 3, NGood: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ImageParams(tt.ls, tt.x, tt.y)
			if err != nil {
				t.Fatalf("ImageParams(%d, %d, %d) error: %v", tt.ls, tt.x, tt.y, err)
			}
			if got != tt.want {
				t.Errorf("ImageParams(%d, %d, %d) = %+v, want %+v", tt.ls, tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestImageParamsLattice(t *testing.T) {
	t.Parallel()

	for ls := 1; ls <= 120; ls++ {
		for x := 1; x <= 30; x += 3 {
			for y := 1; y <= 30; y += 4 {
				p, err := ImageParams(ls, x, y)
				if err != nil {
					t.Fatalf("ImageParams(%d, %d, %d) error: %v", ls, x, y, err)
				}
				if err := p.Validate(); err != nil {
					t.Fatalf("ImageParams(%d, %d, %d) = %+v: %v", ls, x, y, p, err)
				}
				if p.L < ls {
					t.Fatalf("ImageParams(%d, %d, %d): L=%d shorter than signal", ls, x, y, p.L)
				}

				step, err := common.LCM(p.A, p.M)
				if err != nil {
					t.Fatalf("LCM(%d, %d) error: %v", p.A, p.M, err)
				}
				if p.L-ls >= step {
					t.Fatalf("ImageParams(%d, %d, %d): L=%d is not the smallest valid length", ls, x, y, p.L)
				}
				if p.Padding(ls) != p.L-ls {
					t.Fatalf("Padding(%d) = %d, want %d", ls, p.Padding(ls), p.L-ls)
				}
			}
		}
	}
}

func TestImageParamsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ls, x, y int
	}{
		{"zero length", 0, 10, 10},
		{"zero width", 100, 0, 10},
		{"zero height", 100, 10, 0},
		{"negative length", -5, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := ImageParams(tt.ls, tt.x, tt.y); !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("ImageParams(%d, %d, %d) error = %v, want ErrInvalidDimension", tt.ls, tt.x, tt.y, err)
			}
		})
	}
}

func TestImageParamsLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.GetGlobalLogger()
	logging.SetGlobalLogger(logging.NewWriterLogger(&buf, logging.DebugLevel))
	defer logging.SetGlobalLogger(prev)

	if _, err := ImageParams(1000, 200, 64); err != nil {
		t.Fatalf("ImageParams error: %v", err)
	}

	line := buf.String()
	if !strings.Contains(line, "[DEBUG] derived gabor image parameters") {
		t.Fatalf("missing debug line, log was %q", line)
	}
	for _, kv := range []string{"a=8", "l=1024", "m=64", "n=128", "n_good=125"} {
		if !strings.Contains(line, kv) {
			t.Errorf("log line %q missing %s", line, kv)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	good := Params{A: 8, M: 64, L: 1024, N: 128, NGood: 125}
	if err := good.Validate(); err != nil {
		t.Fatalf("Validate(%+v) = %v", good, err)
	}
	if r := good.Redundancy(); r != 8 {
		t.Errorf("Redundancy() = %v, want 8", r)
	}

	bad := []Params{
		{A: 0, M: 64, L: 1024, N: 128},
		{A: 8, M: 60, L: 1024, N: 128},
		{A: 8, M: 64, L: 1024, N: 100},
		{A: 8, M: 64, L: 1024, N: 128, NGood: 129},
	}
	for _, p := range bad {
		if err := p.Validate(); !errors.Is(err, ErrInvalidLattice) {
			t.Errorf("Validate(%+v) = %v, want ErrInvalidLattice", p, err)
		}
	}
}
