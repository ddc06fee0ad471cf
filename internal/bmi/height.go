package bmi

import (
	"errors"
	"strings"
)

// ErrHeightFormat is returned when an imperial height lacks the ' separator.
var ErrHeightFormat = errors.New("height must separate feet from inches with '")

// Height holds the raw feet and inches parts of an imperial height such as 5'10".
type Height struct {
	Feet   string
	Inches string
}

// ParseHeight splits text on the first ' into feet and inches. The inches end
// at the first " if there is one; anything after it is ignored. The parts are
// not checked for being numeric; that happens when they are converted.
func ParseHeight(text string) (Height, error) {
	feet, rest, ok := strings.Cut(text, "'")
	if !ok {
		return Height{}, ErrHeightFormat
	}
	inches, _, _ := strings.Cut(rest, `"`)
	return Height{Feet: feet, Inches: strings.TrimSpace(inches)}, nil
}

// Values converts both parts to numbers.
func (h Height) Values() (feet, inches float64, err error) {
	feet, err = ParseNumber("feet", h.Feet)
	if err != nil {
		return 0, 0, err
	}
	inches, err = ParseNumber("inches", h.Inches)
	if err != nil {
		return 0, 0, err
	}
	return feet, inches, nil
}
