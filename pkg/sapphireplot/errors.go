package sapphireplot

import (
	"fmt"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

// Error kinds, re-exported from models for callers that only import the
// root package. Test with errors.Is.
var (
	// ErrNotFound indicates a missing folder, file, field or parameter.
	ErrNotFound = models.ErrNotFound
	// ErrParse indicates a malformed parameter log or data file.
	ErrParse = models.ErrParse
	// ErrInvalidArgument indicates an argument outside its valid range.
	ErrInvalidArgument = models.ErrInvalidArgument
	// ErrEmpty indicates an operation that cannot proceed on empty data.
	ErrEmpty = models.ErrEmpty
)

// LoadError represents an error while loading simulation results.
type LoadError struct {
	Folder string
	Stage  string // "folder", "parameters", "data"
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading results from %q (%s): %v", e.Folder, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(folder, stage string, err error) *LoadError {
	return &LoadError{
		Folder: folder,
		Stage:  stage,
		Err:    err,
	}
}
