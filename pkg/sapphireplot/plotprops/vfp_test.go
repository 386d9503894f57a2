package plotprops

import (
	"errors"
	"testing"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

func TestCreateLMSIndices(t *testing.T) {
	tests := []struct {
		lMax int
		want []LMSIndex
	}{
		{0, []LMSIndex{{0, 0, 0}}},
		{1, []LMSIndex{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}}},
	}
	for _, tt := range tests {
		got := CreateLMSIndices(tt.lMax)
		if len(got) != len(tt.want) {
			t.Fatalf("lMax=%d: %d indices, expected %d", tt.lMax, len(got), len(tt.want))
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("lMax=%d index %d = %v, expected %v", tt.lMax, i, got[i], tt.want[i])
			}
		}
	}

	// The system size is (lMax+1)^2.
	for lMax := 0; lMax <= 5; lMax++ {
		n := len(CreateLMSIndices(lMax))
		if n != (lMax+1)*(lMax+1) {
			t.Errorf("lMax=%d: %d indices, expected %d", lMax, n, (lMax+1)*(lMax+1))
		}
	}
}

func TestFLMSNames(t *testing.T) {
	if name := FLMSName("", LMSIndex{0, 0, 0}); name != "f_000" {
		t.Errorf("FLMSName = %q, expected f_000", name)
	}
	if name := FLMSName(PrefixNumeric, LMSIndex{2, 1, 1}); name != "numeric_f_211" {
		t.Errorf("FLMSName = %q, expected numeric_f_211", name)
	}
	if name := ScaledFLMSName("", LMSIndex{1, 1, 0}); name != "p^s f_110" {
		t.Errorf("ScaledFLMSName = %q, expected 'p^s f_110'", name)
	}
}

func TestFLMSLabel(t *testing.T) {
	if label := FLMSLabel("", LMSIndex{0, 0, 0}, 0); label != "$f_{000}$" {
		t.Errorf("FLMSLabel = %q, expected $f_{000}$", label)
	}
	if label := FLMSLabel("", LMSIndex{0, 0, 0}, 2); label != "$p^{2} f_{000}$" {
		t.Errorf("FLMSLabel = %q, expected $p^{2} f_{000}$", label)
	}
	if label := FLMSLabel(PrefixProjected, LMSIndex{1, 0, 0}, 0); label != `$f_{100}^{\mathrm{proj}}$` {
		t.Errorf("FLMSLabel = %q", label)
	}
}

func TestNewVFPDimension(t *testing.T) {
	for _, dim := range []int{0, 4} {
		if _, err := NewVFP(VFPOptions{Dimension: dim}); !errors.Is(err, models.ErrInvalidArgument) {
			t.Errorf("dimension %d: expected ErrInvalidArgument, got %v", dim, err)
		}
	}

	v, err := NewVFP(VFPOptions{Dimension: 2, Momentum: true, LogarithmicP: true, LMax: 1})
	if err != nil {
		t.Fatalf("NewVFP failed: %v", err)
	}
	if v.DimCS() != 1 {
		t.Errorf("DimCS = %d, expected 1", v.DimCS())
	}
	if v.MomentumAxis() != 1 {
		t.Errorf("MomentumAxis = %d, expected 1", v.MomentumAxis())
	}
	if v.MomentumLabel() != `$\ln p$` {
		t.Errorf("MomentumLabel = %q", v.MomentumLabel())
	}
	if len(v.SeriesNames) != 4 {
		t.Errorf("%d series, expected 4: %v", len(v.SeriesNames), v.SeriesNames)
	}
	if v.SeriesNames[0] != "numeric_f_000" {
		t.Errorf("First series = %q, expected numeric_f_000", v.SeriesNames[0])
	}
}

func TestNewVFPPrefixStyles(t *testing.T) {
	v, err := NewVFP(VFPOptions{
		Dimension: 1,
		LMax:      0,
		Prefixes:  []string{PrefixNumeric, PrefixProjected},
	})
	if err != nil {
		t.Fatalf("NewVFP failed: %v", err)
	}
	if v.LineStyleOf("numeric_f_000") != LineSolid {
		t.Error("Numeric solution should be solid")
	}
	if v.LineStyleOf("project_f_000") != LineDashed {
		t.Error("Projected solution should be dashed")
	}
}

func TestScaleBySpectralIndex(t *testing.T) {
	v, err := NewVFP(VFPOptions{Dimension: 1, Momentum: true, LMax: 0})
	if err != nil {
		t.Fatalf("NewVFP failed: %v", err)
	}
	v.ScaleBySpectralIndex(3)

	if v.SeriesNames[0] != "numeric_p^s f_000" {
		t.Errorf("Scaled series = %q, expected 'numeric_p^s f_000'", v.SeriesNames[0])
	}
	if v.Label("numeric_p^s f_000") != "$p^{3} f_{000}$" {
		t.Errorf("Scaled label = %q", v.Label("numeric_p^s f_000"))
	}
	// Colors and styles carry over from the plain series.
	if v.LineStyleOf("numeric_p^s f_000") != LineSolid {
		t.Error("Scaled series lost its line style")
	}
}
