package plotprops

import (
	"fmt"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

// athenaQuantities maps the common quantity names onto the field names
// Athena++ writes.
var athenaQuantities = map[string]string{
	"rho": "dens",
	"E":   "Etot",
	"p_x": "mom_X",
	"p_y": "mom_Y",
	"p_z": "mom_Z",
	"b_x": "Bcc_X",
	"b_y": "Bcc_Y",
	"b_z": "Bcc_Z",
}

// Athena extends Properties for Athena++ results. Athena++ writes cell
// data under its own field names; AthenaField translates from the common
// quantity names.
type Athena struct {
	Properties

	// Dimension is the spatial dimensionality.
	Dimension int
}

// NewAthena derives plot properties for Athena++ results.
func NewAthena(dimension int) (*Athena, error) {
	if err := validDimension(dimension); err != nil {
		return nil, err
	}
	a := &Athena{Properties: Default(), Dimension: dimension}
	a.DataType = CellData

	add := func(quantity, label string) {
		name := athenaQuantities[quantity]
		a.SetSeries(name, label, a.LineColor(name, len(a.SeriesNames)), LineSolid)
	}
	add("rho", `$\rho$`)
	for i := 0; i < dimension; i++ {
		c := mhdComponents[i]
		add("p_"+c, fmt.Sprintf(`$p_%s$`, c))
	}
	add("E", "$E$")
	for _, c := range mhdComponents {
		add("b_"+c, fmt.Sprintf(`$B_%s$`, c))
	}
	return a, nil
}

// AthenaField translates a common quantity name into the field name
// Athena++ writes.
func AthenaField(quantity string) (string, error) {
	name, ok := athenaQuantities[quantity]
	if !ok {
		return "", fmt.Errorf("quantity %q: %w", quantity, models.ErrNotFound)
	}
	return name, nil
}
