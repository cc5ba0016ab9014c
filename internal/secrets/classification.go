package secrets

// Classification is the cached development-machine answer: either unknown or
// a known boolean.
type Classification struct {
	known bool
	value bool
}

// Unknown is the state before classification or after a reset.
func Unknown() Classification {
	return Classification{}
}

// Known wraps a computed or overridden answer.
func Known(development bool) Classification {
	return Classification{known: true, value: development}
}

// Get returns the answer and whether there is one.
func (c Classification) Get() (development bool, known bool) {
	return c.value, c.known
}

// IsKnown reports whether an answer has been cached.
func (c Classification) IsKnown() bool {
	return c.known
}

func (c Classification) String() string {
	switch {
	case !c.known:
		return "unknown"
	case c.value:
		return "development"
	default:
		return "non-development"
	}
}
