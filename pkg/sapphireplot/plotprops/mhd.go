package plotprops

import "fmt"

// MHDOptions configures NewMHD.
type MHDOptions struct {
	// Dimension is the spatial dimensionality, 1 to 3.
	Dimension int
	// Divergence adds the divergence-cleaning field psi.
	Divergence bool
}

// MHD extends Properties for ideal-MHD results: conserved quantities
// density, momentum, total energy and magnetic field, plus the derived
// velocity and pressure.
type MHD struct {
	Properties

	// Dimension is the spatial dimensionality.
	Dimension int
}

var mhdComponents = [3]string{"x", "y", "z"}

// NewMHD derives plot properties for MHD results.
func NewMHD(opts MHDOptions) (*MHD, error) {
	if err := validDimension(opts.Dimension); err != nil {
		return nil, err
	}
	m := &MHD{Properties: Default(), Dimension: opts.Dimension}

	add := func(name, label string) {
		m.SetSeries(name, label, m.LineColor(name, len(m.SeriesNames)), LineSolid)
	}
	add("rho", `$\rho$`)
	for i := 0; i < opts.Dimension; i++ {
		add("p_"+mhdComponents[i], fmt.Sprintf(`$p_%s$`, mhdComponents[i]))
	}
	add("E", "$E$")
	// The magnetic field keeps all three components in any dimension.
	for _, c := range mhdComponents {
		add("b_"+c, fmt.Sprintf(`$B_%s$`, c))
	}
	for i := 0; i < opts.Dimension; i++ {
		add("u_"+mhdComponents[i], fmt.Sprintf(`$u_%s$`, mhdComponents[i]))
	}
	add("P", "$P$")
	if opts.Divergence {
		add("psi", `$\psi$`)
	}
	return m, nil
}
