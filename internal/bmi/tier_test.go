package bmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Boundaries(t *testing.T) {
	testCases := []struct {
		bmi  float64
		want Tier
	}{
		{0, Underweight},
		{18.49, Underweight},
		{18.5, Normal},
		{22.86, Normal},
		{24.9, Normal},
		{24.91, Overweight},
		{25.82, Overweight},
		{29.5, Overweight},
		{29.51, Obese},
		{39.9, Obese},
		{39.91, MorbidlyObese},
		{75, MorbidlyObese},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Classify(tc.bmi), "bmi %v", tc.bmi)
	}
}

func TestClassify_Monotonic(t *testing.T) {
	prev := Classify(0)
	for v := 0.0; v <= 80; v += 0.01 {
		got := Classify(Round2(v))
		assert.GreaterOrEqual(t, int(got), int(prev), "tier went backwards at %v", v)
		assert.LessOrEqual(t, int(got)-int(prev), 1, "tier skipped at %v", v)
		prev = got
	}
	assert.Equal(t, MorbidlyObese, prev)
}

func TestTierText(t *testing.T) {
	names := make([]string, 0, len(Tiers))
	for _, tier := range Tiers {
		names = append(names, tier.String())
		assert.NotEmpty(t, tier.Advice())
		assert.NotEmpty(t, tier.Range())
	}
	assert.Equal(t, []string{"underweight", "normal", "overweight", "obese", "morbidly obese"}, names)
	assert.Equal(t, "unknown", Tier(99).String())
	assert.Contains(t, Normal.Advice(), "Your current weight is healthy!")
}
