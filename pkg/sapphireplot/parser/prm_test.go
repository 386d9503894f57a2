package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

func TestParsePRMRoundTrip(t *testing.T) {
	input := "subsection Output\n set Results folder = /tmp/x\nend\n"

	prm, err := ParsePRM(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParsePRM failed: %v", err)
	}

	folder, err := prm.GetString("Output", "Results folder")
	if err != nil {
		t.Fatalf("GetString failed: %v", err)
	}
	if folder != "/tmp/x" {
		t.Errorf("Expected '/tmp/x', got %q", folder)
	}
}

func TestParsePRMNested(t *testing.T) {
	input := `
# Sapphire++ run log
set Dimension = 2

subsection VFP
  set Expansion order = 3
  set Time step size = 7.8125e-3
  subsection TimeStepping
    set Final time = 200
    set Adaptive = true
  end
end
`
	prm, err := ParsePRM(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParsePRM failed: %v", err)
	}

	dim, err := prm.GetInt("", "Dimension")
	if err != nil || dim != 2 {
		t.Errorf("Dimension: got (%v, %v), expected (2, nil)", dim, err)
	}
	order, err := prm.GetInt("VFP", "Expansion order")
	if err != nil || order != 3 {
		t.Errorf("Expansion order: got (%v, %v), expected (3, nil)", order, err)
	}
	dt, err := prm.GetFloat("VFP", "Time step size")
	if err != nil || dt != 7.8125e-3 {
		t.Errorf("Time step size: got (%v, %v), expected (7.8125e-3, nil)", dt, err)
	}
	adaptive, err := prm.GetBool("VFP/TimeStepping", "Adaptive")
	if err != nil || !adaptive {
		t.Errorf("Adaptive: got (%v, %v), expected (true, nil)", adaptive, err)
	}
	// Integer-typed values still read back as floats.
	tFinal, err := prm.GetFloat("VFP/TimeStepping", "Final time")
	if err != nil || tFinal != 200 {
		t.Errorf("Final time: got (%v, %v), expected (200, nil)", tFinal, err)
	}
}

func TestParsePRMMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"end without subsection", "end\n"},
		{"set without equals", "set Results folder\n"},
		{"unterminated subsection", "subsection Output\n set a = 1\n"},
		{"unrecognized statement", "florp\n"},
		{"subsection without name", "subsection \nend\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePRM(strings.NewReader(tt.input))
			if !errors.Is(err, models.ErrParse) {
				t.Errorf("Expected ErrParse, got %v", err)
			}
		})
	}
}

func TestParsePRMMissingKey(t *testing.T) {
	prm, err := ParsePRM(strings.NewReader("subsection Output\nend\n"))
	if err != nil {
		t.Fatalf("ParsePRM failed: %v", err)
	}
	if _, err := prm.GetString("Output", "Results folder"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing key, got %v", err)
	}
	if _, err := prm.GetString("Input", "anything"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing section, got %v", err)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"1e-3", 1e-3},
		{"true", true},
		{"FALSE", false},
		{"/tmp/x", "/tmp/x"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
