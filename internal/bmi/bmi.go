package bmi

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// imperialFactor converts lb/in² to kg/m².
const imperialFactor = 703

// ErrZeroHeight is returned when a height term of zero would divide by zero.
var ErrZeroHeight = errors.New("height must not be zero")

// ErrNotFinite is returned for NaN or infinite measurements and results.
var ErrNotFinite = errors.New("value is not a finite number")

// ParseError reports a measurement whose text is not a real number.
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not convert %s %q to a number: %v", e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseNumber converts operator input into a float. Surrounding whitespace is ignored.
func ParseNumber(field, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Field: field, Input: text, Err: err}
	}
	if !finite(v) {
		return 0, &ParseError{Field: field, Input: text, Err: ErrNotFinite}
	}
	return v, nil
}

// Imperial returns the BMI for a weight in pounds and a height in feet and inches.
func Imperial(weightLb, feet, inches float64) (float64, error) {
	total := feet*12 + inches
	if total == 0 {
		return 0, ErrZeroHeight
	}
	return result(weightLb * imperialFactor / (total * total))
}

// Metric returns the BMI for a weight in kilograms and a height in meters.
// Callers holding centimeters divide by 100 first.
func Metric(weightKg, heightM float64) (float64, error) {
	if heightM == 0 {
		return 0, ErrZeroHeight
	}
	return result(weightKg / (heightM * heightM))
}

func result(v float64) (float64, error) {
	if !finite(v) {
		return 0, ErrNotFinite
	}
	return Round2(v), nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
