package plotprops

import (
	"fmt"
	"strings"

	"github.com/tiendc/go-deepcopy"
)

// LMSIndex identifies one coefficient of the spherical-harmonic expansion
// of the distribution function.
type LMSIndex struct {
	L int
	M int
	S int
}

// Prefixes distinguishing coefficient variants written by the solver.
const (
	// PrefixNumeric marks the numeric solution.
	PrefixNumeric = "numeric_"
	// PrefixProjected marks the projected analytic solution.
	PrefixProjected = "project_"
	// PrefixInterpolated marks the interpolated analytic solution.
	PrefixInterpolated = "interpol_"
)

// VFPOptions configures NewVFP.
type VFPOptions struct {
	// Dimension is the phase-space dimensionality, 1 to 3.
	Dimension int
	// Momentum enables the momentum coordinate as the last dimension.
	Momentum bool
	// LogarithmicP marks the momentum coordinate as ln p instead of p.
	LogarithmicP bool
	// LMax is the maximum degree of the spherical-harmonic expansion.
	LMax int
	// Prefixes of the coefficient variants to show; nil shows only the
	// numeric solution.
	Prefixes []string
}

// VFP extends Properties for Vlasov-Fokker-Planck results: distribution
// function coefficients f_lms over configuration space and momentum.
type VFP struct {
	Properties

	// Dimension is the phase-space dimensionality.
	Dimension int
	// Momentum reports whether the last dimension is momentum.
	Momentum bool
	// LogarithmicP reports whether the momentum coordinate is ln p.
	LogarithmicP bool
	// LMax is the maximum expansion degree.
	LMax int
	// Indices enumerates the expansion coefficients.
	Indices []LMSIndex
	// Prefixes are the coefficient variants shown.
	Prefixes []string
}

// NewVFP derives plot properties for Vlasov-Fokker-Planck results.
func NewVFP(opts VFPOptions) (*VFP, error) {
	if err := validDimension(opts.Dimension); err != nil {
		return nil, err
	}
	prefixes := opts.Prefixes
	if prefixes == nil {
		prefixes = []string{PrefixNumeric}
	}

	v := &VFP{
		Properties:   Default(),
		Dimension:    opts.Dimension,
		Momentum:     opts.Momentum,
		LogarithmicP: opts.LogarithmicP,
		LMax:         opts.LMax,
		Indices:      CreateLMSIndices(opts.LMax),
		Prefixes:     prefixes,
	}

	for _, index := range v.Indices {
		for _, prefix := range prefixes {
			name := FLMSName(prefix, index)
			v.SetSeries(name, FLMSLabel(prefix, index, 0),
				v.LineColor(name, len(v.SeriesNames)), prefixStyle(prefix))
		}
	}
	return v, nil
}

// Clone returns a deep, independent copy.
func (v *VFP) Clone() *VFP {
	dst := &VFP{}
	if err := deepcopy.Copy(dst, v); err != nil {
		panic(fmt.Sprintf("plotprops: clone failed: %v", err))
	}
	return dst
}

// DimCS returns the configuration-space dimensionality.
func (v *VFP) DimCS() int {
	if v.Momentum {
		return v.Dimension - 1
	}
	return v.Dimension
}

// MomentumAxis returns the table axis of the momentum coordinate. The
// momentum coordinate is the last phase-space dimension.
func (v *VFP) MomentumAxis() int {
	return v.Dimension - 1
}

// MomentumLabel returns the axis title of the momentum coordinate.
func (v *VFP) MomentumLabel() string {
	if v.LogarithmicP {
		return `$\ln p$`
	}
	return "$p$"
}

// ScaleBySpectralIndex switches the configured series to coefficients
// rescaled by p^s, replacing names and labels in place.
func (v *VFP) ScaleBySpectralIndex(s float64) {
	names := make([]string, 0, len(v.SeriesNames))
	for _, index := range v.Indices {
		for _, prefix := range v.Prefixes {
			plain := FLMSName(prefix, index)
			scaled := ScaledFLMSName(prefix, index)
			names = append(names, scaled)
			v.Labels[scaled] = FLMSLabel(prefix, index, s)
			if c, ok := v.LineColors[plain]; ok {
				v.LineColors[scaled] = c
			}
			if st, ok := v.LineStyles[plain]; ok {
				v.LineStyles[scaled] = st
			}
		}
	}
	v.SeriesNames = names
}

// CreateLMSIndices enumerates the (l, m, s) coefficient indices for an
// expansion of degree lMax. The system has (lMax+1)^2 coefficients: for
// each l, m runs from 0 to l, and m > 0 appears with both s = 0 and s = 1.
func CreateLMSIndices(lMax int) []LMSIndex {
	indices := make([]LMSIndex, 0, (lMax+1)*(lMax+1))
	for l := 0; l <= lMax; l++ {
		for m := 0; m <= l; m++ {
			indices = append(indices, LMSIndex{L: l, M: m, S: 0})
			if m > 0 {
				indices = append(indices, LMSIndex{L: l, M: m, S: 1})
			}
		}
	}
	return indices
}

// FLMSName returns the field name of a coefficient, e.g. "f_000" or
// "numeric_f_110".
func FLMSName(prefix string, index LMSIndex) string {
	return fmt.Sprintf("%sf_%d%d%d", prefix, index.L, index.M, index.S)
}

// ScaledFLMSName returns the field name of a coefficient rescaled by the
// spectral index, e.g. "p^s f_000".
func ScaledFLMSName(prefix string, index LMSIndex) string {
	return fmt.Sprintf("%sp^s f_%d%d%d", prefix, index.L, index.M, index.S)
}

// FLMSLabel returns the chart label of a coefficient. A non-zero spectral
// index s prepends the rescaling factor.
func FLMSLabel(prefix string, index LMSIndex, s float64) string {
	label := fmt.Sprintf("f_{%d%d%d}", index.L, index.M, index.S)
	if s != 0 {
		label = fmt.Sprintf(`p^{%g} %s`, s, label)
	}
	switch strings.TrimSuffix(prefix, "_") {
	case "project":
		label += `^{\mathrm{proj}}`
	case "interpol":
		label += `^{\mathrm{int}}`
	}
	return "$" + label + "$"
}

// prefixStyle draws analytic reference variants dashed so they stay
// distinguishable when they overlap the numeric solution.
func prefixStyle(prefix string) LineStyle {
	if prefix == PrefixNumeric || prefix == "" {
		return LineSolid
	}
	return LineDashed
}
