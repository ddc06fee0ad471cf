package types

// Prompter interface defines how the session asks the operator a question
type Prompter interface {
	Ask(label string) (string, error)
}

// UnitSystem represents the measurement system chosen for a session
type UnitSystem string

const (
	Metric   UnitSystem = "1"
	Imperial UnitSystem = "2"
)

// Valid reports whether u is one of the selectable systems
func (u UnitSystem) Valid() bool {
	return u == Metric || u == Imperial
}

func (u UnitSystem) String() string {
	switch u {
	case Metric:
		return "metric"
	case Imperial:
		return "imperial"
	}
	return "unset"
}
