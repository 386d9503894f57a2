package parser

import (
	"strconv"
	"strings"
)

// parseValue attempts to type a raw parameter value.
// It returns bool, int64, float64 or the original string.
func parseValue(s string) interface{} {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	if intVal, err := strconv.ParseInt(s, 10, 64); err == nil {
		return intVal
	}
	if floatVal, err := strconv.ParseFloat(s, 64); err == nil {
		return floatVal
	}
	return s
}
