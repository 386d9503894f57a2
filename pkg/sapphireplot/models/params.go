package models

import "fmt"

// ParamSection maps parameter keys to values typed as string, int64,
// float64 or bool by best-effort inference.
type ParamSection map[string]interface{}

// ParamDict maps section paths to parameter sections. Nested subsections
// use "/" separated paths; top-level parameters live under the "" section.
type ParamDict map[string]ParamSection

// lookup returns the raw value for section/key.
func (d ParamDict) lookup(section, key string) (interface{}, error) {
	s, ok := d[section]
	if !ok {
		return nil, fmt.Errorf("parameter section %q: %w", section, ErrNotFound)
	}
	v, ok := s[key]
	if !ok {
		return nil, fmt.Errorf("parameter %q in section %q: %w", key, section, ErrNotFound)
	}
	return v, nil
}

// GetString returns the parameter formatted as a string.
func (d ParamDict) GetString(section, key string) (string, error) {
	v, err := d.lookup(section, key)
	if err != nil {
		return "", err
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprint(v), nil
}

// GetFloat returns the parameter as a float64. Integer values are widened.
func (d ParamDict) GetFloat(section, key string) (float64, error) {
	v, err := d.lookup(section, key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("parameter %q in section %q is %T, not a number: %w",
		key, section, v, ErrInvalidArgument)
}

// GetInt returns the parameter as an int64.
func (d ParamDict) GetInt(section, key string) (int64, error) {
	v, err := d.lookup(section, key)
	if err != nil {
		return 0, err
	}
	if n, ok := v.(int64); ok {
		return n, nil
	}
	return 0, fmt.Errorf("parameter %q in section %q is %T, not an integer: %w",
		key, section, v, ErrInvalidArgument)
}

// GetBool returns the parameter as a bool.
func (d ParamDict) GetBool(section, key string) (bool, error) {
	v, err := d.lookup(section, key)
	if err != nil {
		return false, err
	}
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, fmt.Errorf("parameter %q in section %q is %T, not a bool: %w",
		key, section, v, ErrInvalidArgument)
}
