package bmi

// Tier is a health status classification derived from a BMI value.
type Tier int

const (
	Underweight Tier = iota
	Normal
	Overweight
	Obese
	MorbidlyObese
)

// Upper bounds of each tier. Underweight is exclusive, the rest inclusive.
const (
	UnderweightBelow = 18.5
	NormalMax        = 24.9
	OverweightMax    = 29.5
	ObeseMax         = 39.9
)

// Tiers lists every tier in increasing BMI order.
var Tiers = []Tier{Underweight, Normal, Overweight, Obese, MorbidlyObese}

var tierNames = map[Tier]string{
	Underweight:   "underweight",
	Normal:        "normal",
	Overweight:    "overweight",
	Obese:         "obese",
	MorbidlyObese: "morbidly obese",
}

var tierAdvice = map[Tier]string{
	Underweight: "We can set you up with a health professional to help you with planning\n" +
		"meals that would assist in health weight gain.",
	Normal: "Your current weight is healthy! Continue with your current eating and\n" +
		"exercise styles in the future if possible.",
	Overweight: "Your current weight is slightly more than is healthy. To solve this\n" +
		"problem, we recommend increasing your exercise routines and/or\n" +
		"consulting with a dietitian.",
	Obese: "Your weight is unhealthy. To reduce the likelihood of health problems\n" +
		"we would recommend immediately consulting a dietitian and\n" +
		"increasing your physical activity. If the problem does\n" +
		"not improve, we can also discuss surgical options.",
	MorbidlyObese: "Your weight is extremely unhealthy. If not resolved immediately, you\n" +
		"could be at extreme risk for severe health issues and a\n" +
		"potentially decreased lifespan. We recommend consulting a dietitian\n" +
		"right away, and also consulting a surgical professional.",
}

// Classify maps a BMI onto its tier. A value exactly on a boundary belongs to
// the lower tier except at 18.5, which is normal.
func Classify(v float64) Tier {
	switch {
	case v < UnderweightBelow:
		return Underweight
	case v <= NormalMax:
		return Normal
	case v <= OverweightMax:
		return Overweight
	case v <= ObeseMax:
		return Obese
	default:
		return MorbidlyObese
	}
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// Advice returns the paragraph a practitioner should pass on for this tier.
func (t Tier) Advice() string {
	return tierAdvice[t]
}

// Range describes the tier's interval for display, e.g. "18.5 - 24.9".
func (t Tier) Range() string {
	switch t {
	case Underweight:
		return "< 18.5"
	case Normal:
		return "18.5 - 24.9"
	case Overweight:
		return "24.9 - 29.5"
	case Obese:
		return "29.5 - 39.9"
	case MorbidlyObese:
		return "> 39.9"
	}
	return ""
}
