// Package report contains the report pipeline strategies and the registry
// that pairs them. A report type is a (generator, formatter) pair: the
// generator aggregates the record sequence into structured report data, the
// formatter renders that data as text.
package report

import (
	"fmt"
	"sort"
	"strings"

	"salary-reporter/internal/domain"
)

// Generator produces structured report data from the record sequence.
type Generator interface {
	Generate(records []domain.EmployeeRecord) (any, error)
}

// Formatter renders a generator's report data as a single string.
type Formatter interface {
	Format(data any) (string, error)
}

// Config pairs the generator and formatter constructors of one report type.
type Config struct {
	NewGenerator func() Generator
	NewFormatter func() Formatter
}

// registry is the fixed report-type table. Adding a report type means adding
// one entry here.
var registry = map[string]Config{
	"payout": {
		NewGenerator: func() Generator { return NewPayoutGenerator() },
		NewFormatter: func() Formatter { return NewPayoutConsoleFormatter() },
	},
}

// UnknownReportTypeError is returned by Lookup for an unregistered report
// type identifier.
type UnknownReportTypeError struct {
	Name string
}

func (e *UnknownReportTypeError) Error() string {
	return fmt.Sprintf("report type %q is not supported (available: %s)",
		e.Name, strings.Join(Available(), ", "))
}

// Lookup returns the pipeline configuration for the given report type.
// Matching is exact; there is no normalization.
func Lookup(name string) (Config, error) {
	cfg, ok := registry[name]
	if !ok {
		return Config{}, &UnknownReportTypeError{Name: name}
	}
	return cfg, nil
}

// Available returns the registered report type identifiers, sorted.
func Available() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
