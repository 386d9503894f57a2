package sapphireplot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/engine"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/parser"
)

// SetLogger configures logging for the whole library.
// By default no log output is produced.
func SetLogger(l *slog.Logger) {
	engine.SetLogger(l)
}

// SolutionHandle references loaded simulation output together with its
// parsed parameters and the active time-step index.
type SolutionHandle struct {
	dataset   engine.Dataset
	params    models.ParamDict
	times     []float64
	timeIndex int
}

// NewSolutionHandle wraps a dataset. times overrides the dataset's own time
// values when non-nil.
func NewSolutionHandle(dataset engine.Dataset, params models.ParamDict, times []float64) (*SolutionHandle, error) {
	if dataset.NumTimeSteps() == 0 {
		return nil, fmt.Errorf("dataset without time steps: %w", ErrEmpty)
	}
	if times == nil {
		times = make([]float64, dataset.NumTimeSteps())
		for i := range times {
			t, err := dataset.TimeValue(i)
			if err != nil {
				return nil, err
			}
			times[i] = t
		}
	}
	if len(times) != dataset.NumTimeSteps() {
		return nil, fmt.Errorf("%d time values for %d steps: %w",
			len(times), dataset.NumTimeSteps(), ErrInvalidArgument)
	}
	return &SolutionHandle{dataset: dataset, params: params, times: times}, nil
}

// Params returns the parsed parameter log.
func (h *SolutionHandle) Params() models.ParamDict {
	return h.params
}

// NumTimeSteps returns the number of loaded time steps.
func (h *SolutionHandle) NumTimeSteps() int {
	return len(h.times)
}

// TimeIndex returns the active time-step index.
func (h *SolutionHandle) TimeIndex() int {
	return h.timeIndex
}

// TimeValue returns the simulation time of the active step.
func (h *SolutionHandle) TimeValue() float64 {
	return h.times[h.timeIndex]
}

// SetTimeIndex selects the active time step. The index must lie within the
// loaded time range.
func (h *SolutionHandle) SetTimeIndex(i int) error {
	if i < 0 || i >= len(h.times) {
		return fmt.Errorf("time step %d outside [0,%d): %w", i, len(h.times), ErrInvalidArgument)
	}
	h.timeIndex = i
	return nil
}

// GoToLast advances the active time step to the last loaded step.
func (h *SolutionHandle) GoToLast() {
	h.timeIndex = len(h.times) - 1
}

// FieldNames returns the field names of the loaded data.
func (h *SolutionHandle) FieldNames() []string {
	return h.dataset.FieldNames()
}

// Table returns the point table of the active time step.
func (h *SolutionHandle) Table() (*models.PointTable, error) {
	return h.dataset.Table(h.timeIndex)
}

// TableAt returns the point table of step i.
func (h *SolutionHandle) TableAt(i int) (*models.PointTable, error) {
	return h.dataset.Table(i)
}

// Derive builds a new handle by transforming every time step's table, e.g.
// to add computed fields. The parameter dictionary, time values and active
// index carry over.
func (h *SolutionHandle) Derive(transform func(*models.PointTable) (*models.PointTable, error)) (*SolutionHandle, error) {
	tables := make([]*models.PointTable, len(h.times))
	for i := range h.times {
		table, err := h.dataset.Table(i)
		if err != nil {
			return nil, err
		}
		if tables[i], err = transform(table); err != nil {
			return nil, err
		}
	}
	times := make([]float64, len(h.times))
	copy(times, h.times)
	dataset, err := engine.NewDataset(tables, times)
	if err != nil {
		return nil, err
	}
	derived, err := NewSolutionHandle(dataset, h.params, times)
	if err != nil {
		return nil, err
	}
	derived.timeIndex = h.timeIndex
	return derived, nil
}

// TimeControl steers the active time step of a solution handle, the
// counterpart of an animation scene.
type TimeControl struct {
	handle *SolutionHandle
}

// NumSteps returns the number of time steps.
func (c *TimeControl) NumSteps() int { return c.handle.NumTimeSteps() }

// Index returns the active time-step index.
func (c *TimeControl) Index() int { return c.handle.TimeIndex() }

// Value returns the simulation time of the active step.
func (c *TimeControl) Value() float64 { return c.handle.TimeValue() }

// GoToLast advances to the last time step.
func (c *TimeControl) GoToLast() { c.handle.GoToLast() }

// GoToFirst rewinds to the first time step.
func (c *TimeControl) GoToFirst() { _ = c.handle.SetTimeIndex(0) }

// SetIndex selects the active time step.
func (c *TimeControl) SetIndex(i int) error { return c.handle.SetTimeIndex(i) }

// Solution bundles everything LoadSolution produces.
type Solution struct {
	// Folder is the resolved results folder.
	Folder string
	// Params holds the parsed parameter log.
	Params models.ParamDict
	// Handle references the loaded data and the active time step.
	Handle *SolutionHandle
	// Time steers the active time step.
	Time *TimeControl
}

// ResolveResultsFolder determines the results folder. The first entry of
// args wins; otherwise the user is prompted on in/out. Environment
// variables are expanded, relative answers are joined to pathPrefix.
func ResolveResultsFolder(pathPrefix string, args []string, in io.Reader, out io.Writer) (string, error) {
	pathPrefix = os.ExpandEnv(pathPrefix)

	folder := ""
	if len(args) > 0 {
		folder = args[0]
	}
	if folder == "" {
		fmt.Fprintf(out, "Path to results folder (%s): ", pathPrefix)
		scanner := bufio.NewScanner(in)
		if scanner.Scan() {
			folder = strings.TrimSpace(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
	}
	if folder == "" {
		return "", fmt.Errorf("no results folder given: %w", ErrInvalidArgument)
	}
	folder = os.ExpandEnv(folder)
	if pathPrefix != "" && !filepath.IsAbs(folder) {
		folder = filepath.Join(pathPrefix, folder)
	}
	engine.Logger().Info("using results folder", "folder", folder)
	return folder, nil
}

// ScaleTimeSteps maps raw step indices onto [tStart, tEnd].
func ScaleTimeSteps(numSteps int, tStart, tEnd float64) []float64 {
	times := make([]float64, numSteps)
	if numSteps == 1 {
		times[0] = tStart
		return times
	}
	scale := (tEnd - tStart) / float64(numSteps-1)
	for i := range times {
		times[i] = tStart + scale*float64(i)
	}
	return times
}

// LoadSolution locates and reads simulation output: it parses the
// parameter log, loads the data files through the engine session, and
// advances the handle to the last time step (or opts.TimeIndex). A missing
// parameter log yields an empty parameter dictionary; missing data files
// are an error. Single attempt, no retries.
func LoadSolution(session engine.Session, folder string, opts LoadOptions) (*Solution, error) {
	if info, err := os.Stat(folder); err != nil || !info.IsDir() {
		return nil, NewLoadError(folder, "folder",
			fmt.Errorf("results folder %q: %w", folder, ErrNotFound))
	}

	params := make(models.ParamDict)
	if opts.ParameterFile != "" {
		var err error
		params, err = parser.ParsePRMFile(filepath.Join(folder, opts.ParameterFile))
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				return nil, NewLoadError(folder, "parameters", err)
			}
			engine.Logger().Warn("parameter file not found, parameter dict is empty",
				"file", opts.ParameterFile)
			params = make(models.ParamDict)
		}
	}

	pattern := filepath.Join(folder, opts.BaseFileName+"*."+string(opts.Format))
	dataset, err := session.LoadPointData(pattern)
	if err != nil {
		return nil, NewLoadError(folder, "data", err)
	}

	// File formats without time metadata report step indices; rescale them
	// onto the configured time range.
	var times []float64
	if indexTimed(dataset) && opts.TEnd > opts.TStart {
		times = ScaleTimeSteps(dataset.NumTimeSteps(), opts.TStart, opts.TEnd)
	}

	handle, err := NewSolutionHandle(dataset, params, times)
	if err != nil {
		return nil, NewLoadError(folder, "data", err)
	}
	if opts.TimeIndex != nil {
		if err := handle.SetTimeIndex(*opts.TimeIndex); err != nil {
			return nil, err
		}
	} else {
		handle.GoToLast()
	}

	// Required fields are checked up front so a typo fails the load
	// instead of the first plot call.
	if opts.LoadArrays != nil {
		table, err := handle.Table()
		if err != nil {
			return nil, err
		}
		for _, name := range opts.LoadArrays {
			if !table.HasField(name) {
				return nil, NewLoadError(folder, "data",
					fmt.Errorf("field %q: %w", name, ErrNotFound))
			}
		}
	}

	return &Solution{
		Folder: folder,
		Params: params,
		Handle: handle,
		Time:   &TimeControl{handle: handle},
	}, nil
}

// indexTimed reports whether the dataset's time values are plain step
// indices (0, 1, 2, ...), i.e. no time metadata was present.
func indexTimed(dataset engine.Dataset) bool {
	for i := 0; i < dataset.NumTimeSteps(); i++ {
		t, err := dataset.TimeValue(i)
		if err != nil || t != float64(i) {
			return false
		}
	}
	return true
}
