package bmi

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetric(t *testing.T) {
	testCases := []struct {
		name     string
		weightKg float64
		heightM  float64
		want     float64
	}{
		{name: "average adult", weightKg: 70, heightM: 1.75, want: 22.86},
		{name: "exact value", weightKg: 100, heightM: 2, want: 25},
		{name: "light patient", weightKg: 45, heightM: 1.7, want: 15.57},
		{name: "heavy patient", weightKg: 150, heightM: 1.6, want: 58.59},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Metric(tc.weightKg, tc.heightM)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestImperial(t *testing.T) {
	testCases := []struct {
		name     string
		weightLb float64
		feet     float64
		inches   float64
		want     float64
	}{
		{name: "five ten", weightLb: 180, feet: 5, inches: 10, want: 25.82},
		{name: "six foot", weightLb: 200, feet: 6, inches: 0, want: 27.12},
		{name: "inches only", weightLb: 120, feet: 0, inches: 60, want: 23.43},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Imperial(tc.weightLb, tc.feet, tc.inches)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)

			total := tc.feet*12 + tc.inches
			assert.InDelta(t, Round2(tc.weightLb*703/(total*total)), got, 1e-9)
		})
	}
}

func TestZeroHeight(t *testing.T) {
	_, err := Metric(70, 0)
	assert.ErrorIs(t, err, ErrZeroHeight)

	_, err = Imperial(180, 0, 0)
	assert.ErrorIs(t, err, ErrZeroHeight)
}

func TestParseNumber(t *testing.T) {
	v, err := ParseNumber("weight", " 72.5 ")
	require.NoError(t, err)
	assert.Equal(t, 72.5, v)

	_, err = ParseNumber("weight", "seventy")
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "weight", parseErr.Field)
	assert.Equal(t, "seventy", parseErr.Input)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), `"seventy"`)

	_, err = ParseNumber("height", "")
	assert.True(t, errors.As(err, &parseErr))

	for _, input := range []string{"nan", "NaN", "inf", "-Inf", "infinity", "1e400"} {
		_, err = ParseNumber("weight", input)
		require.ErrorAs(t, err, &parseErr, "input %q", input)
		assert.Equal(t, input, parseErr.Input)
	}
	_, err = ParseNumber("weight", "nan")
	assert.ErrorIs(t, err, ErrNotFinite)
}

func TestNonFiniteResult(t *testing.T) {
	_, err := Metric(1e308, 1e-10)
	assert.ErrorIs(t, err, ErrNotFinite)

	_, err = Imperial(1e308, 0, 1e-10)
	assert.ErrorIs(t, err, ErrNotFinite)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 22.86, Round2(22.857142))
	assert.Equal(t, 25.82, Round2(25.824489))
	assert.Equal(t, 18.5, Round2(18.5))
}
