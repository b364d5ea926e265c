package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	errMappingEmptyValue = errors.New("value cannot be empty")
	errMappingNoTarget   = errors.New("value must be in the form /pathname=target")
	errMappingDuplicate  = errors.New("pathname is already mapped")
)

const mappingSeparator = "="

// MappingFlag implements the flag.Value interface and collects exact
// pathname substitutions. It can be specified multiple times.
//
// e.g.: -mapping /api/data=/real.json -mapping /about=/about/index.html
type MappingFlag struct {
	value map[string]string
}

// String returns the mappings sorted by pathname and joined with commas (",")
func (m *MappingFlag) String() string {
	pairs := make([]string, 0, len(m.value))
	for pathname, target := range m.value {
		pairs = append(pairs, pathname+mappingSeparator+target)
	}
	sort.Strings(pairs)

	return strings.Join(pairs, ",")
}

// Set adds a single pathname=target pair
func (m *MappingFlag) Set(value string) error {
	if value == "" {
		return errMappingEmptyValue
	}

	pathname, target, ok := strings.Cut(value, mappingSeparator)
	if !ok || pathname == "" || target == "" {
		return fmt.Errorf("%q: %w", value, errMappingNoTarget)
	}

	if _, exists := m.value[pathname]; exists {
		return fmt.Errorf("%q: %w", pathname, errMappingDuplicate)
	}

	if m.value == nil {
		m.value = make(map[string]string)
	}
	m.value[pathname] = target

	return nil
}

// Map returns a copy of the collected mappings
func (m *MappingFlag) Map() map[string]string {
	result := make(map[string]string, len(m.value))
	for pathname, target := range m.value {
		result[pathname] = target
	}

	return result
}

// Len returns the number of mappings
func (m *MappingFlag) Len() int {
	return len(m.value)
}
