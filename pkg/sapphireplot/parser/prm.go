// Package parser reads structured text parameter logs.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

// ParsePRM parses a parameter log in subsection/set syntax:
//
//	subsection Output
//	  set Results folder = /tmp/x
//	end
//
// Nested subsection names are joined with "/" in the section path.
// Parameters set outside any subsection live under the "" section.
// Lines starting with "#" and empty lines are ignored.
func ParsePRM(r io.Reader) (models.ParamDict, error) {
	prm := make(models.ParamDict)
	var sections []string

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "subsection "):
			name := strings.TrimSpace(strings.TrimPrefix(line, "subsection "))
			if name == "" {
				return nil, fmt.Errorf("line %d: subsection without a name: %w",
					lineNum, models.ErrParse)
			}
			sections = append(sections, name)
		case line == "end":
			if len(sections) == 0 {
				return nil, fmt.Errorf("line %d: 'end' without open subsection: %w",
					lineNum, models.ErrParse)
			}
			sections = sections[:len(sections)-1]
		case strings.HasPrefix(line, "set "):
			kv := strings.TrimPrefix(line, "set ")
			key, value, ok := strings.Cut(kv, "=")
			if !ok {
				return nil, fmt.Errorf("line %d: 'set' without '=' in %q: %w",
					lineNum, line, models.ErrParse)
			}
			section := strings.Join(sections, "/")
			if prm[section] == nil {
				prm[section] = make(models.ParamSection)
			}
			prm[section][strings.TrimSpace(key)] = parseValue(strings.TrimSpace(value))
		default:
			return nil, fmt.Errorf("line %d: unrecognized statement %q: %w",
				lineNum, line, models.ErrParse)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(sections) > 0 {
		return nil, fmt.Errorf("unterminated subsection %q: %w",
			strings.Join(sections, "/"), models.ErrParse)
	}
	return prm, nil
}

// ParsePRMFile parses the parameter log at the given path.
func ParsePRMFile(path string) (models.ParamDict, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("parameter file %q: %w", path, models.ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()

	prm, err := ParsePRM(f)
	if err != nil {
		return nil, fmt.Errorf("parameter file %q: %w", path, err)
	}
	return prm, nil
}
