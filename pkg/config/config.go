// Package config holds the settings of the CLI commands and their
// validation rules. The operating system remains the authority on what a
// terminal accepts; validation here only rejects values that cannot be
// represented in the kernel's window-size record at all.
package config

import (
	"fmt"
	"time"
)

// maxDimension is the largest value a window-size field can hold.
const maxDimension = 65535

// Geometry describes the window size a command applies to a terminal.
type Geometry struct {
	Rows   int
	Cols   int
	XPixel int
	YPixel int
}

// Validate checks that all fields fit the kernel's window-size record and
// that the cell dimensions are usable.
func (g *Geometry) Validate() []error {
	var errors []error

	if err := validateCells("--rows", g.Rows); err != nil {
		errors = append(errors, err)
	}

	if err := validateCells("--cols", g.Cols); err != nil {
		errors = append(errors, err)
	}

	if err := validatePixels("--xpixel", g.XPixel); err != nil {
		errors = append(errors, err)
	}

	if err := validatePixels("--ypixel", g.YPixel); err != nil {
		errors = append(errors, err)
	}

	return errors
}

// Mirror describes a geometry transfer between two terminal devices.
type Mirror struct {
	From     string
	To       string
	Follow   bool
	Interval time.Duration
}

// Validate checks the mirror settings.
func (m *Mirror) Validate() []error {
	var errors []error

	if m.To == "" {
		errors = append(errors, fmt.Errorf("'--to' must name a terminal device"))
	}

	if m.Follow && m.Interval <= 0 {
		errors = append(errors, fmt.Errorf("'--interval' must be positive when using '--follow'"))
	}

	return errors
}

// ValidatableConfig is any config that can report validation errors.
type ValidatableConfig interface {
	Validate() []error
}

// Validate collects the validation errors of all given configs.
func Validate(cfgs ...ValidatableConfig) []error {
	var out []error

	for _, cfg := range cfgs {
		out = append(out, cfg.Validate()...)
	}

	return out
}

func validateCells(flag string, v int) error {
	if v < 1 || v > maxDimension {
		return fmt.Errorf("'%s' must be in [1, %d]", flag, maxDimension)
	}

	return nil
}

func validatePixels(flag string, v int) error {
	if v < 0 || v > maxDimension {
		return fmt.Errorf("'%s' must be in [0, %d]", flag, maxDimension)
	}

	return nil
}
