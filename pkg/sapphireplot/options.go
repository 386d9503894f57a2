package sapphireplot

// Format selects the solution file format to load.
type Format string

const (
	// FormatVTU loads a series of .vtu files.
	FormatVTU Format = "vtu"
	// FormatPVTU loads a series of partitioned .pvtu files.
	FormatPVTU Format = "pvtu"
	// FormatCSV loads a series of columnar .csv files.
	FormatCSV Format = "csv"
)

// LoadOptions configures LoadSolution.
type LoadOptions struct {
	// Format of the solution files.
	Format Format
	// BaseFileName is the base name of the solution files.
	BaseFileName string
	// ParameterFile is the name of the parameter log in the results folder.
	// Empty skips parameter parsing.
	ParameterFile string
	// LoadArrays names fields that must be present in the loaded data;
	// loading fails with a NotFound error if one is missing. Nil skips the
	// check. All fields are loaded either way.
	LoadArrays []string
	// TStart and TEnd rescale step indices onto [TStart, TEnd] when the
	// data files carry no time metadata.
	TStart float64
	TEnd   float64
	// TimeIndex selects the active time step after loading.
	// If nil, the handle is advanced to the last step.
	TimeIndex *int
}

// DefaultLoadOptions returns the default load options.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Format:        FormatVTU,
		BaseFileName:  "solution",
		ParameterFile: "log.prm",
		TStart:        0.0,
		TEnd:          1.0,
	}
}
