package crypto

import "errors"

// Strength is a coarse, advisory verdict on a password's composition.
type Strength uint8

const (
	Weak Strength = iota
	Strong
)

// strongLength is the length at which a password counts as strong
// regardless of class diversity.
const strongLength = 16

var ErrUnknownStrength = errors.New("unknown strength label")

func (s Strength) String() string {
	switch s {
	case Weak:
		return "weak"
	case Strong:
		return "strong"
	}
	return "unknown"
}

func (s Strength) MarshalText() ([]byte, error) {
	if s > Strong {
		return nil, ErrUnknownStrength
	}
	return []byte(s.String()), nil
}

func (s *Strength) UnmarshalText(b []byte) error {
	switch string(b) {
	case "weak":
		*s = Weak
	case "strong":
		*s = Strong
	default:
		return ErrUnknownStrength
	}
	return nil
}

// Classify returns the set of classes present in password.
func Classify(password string) ClassSet {
	var set ClassSet
	for _, r := range password {
		set = set.With(classOf(r))
	}
	return set
}

// Evaluate labels a password Strong when it mixes at least two character
// classes or is at least 16 characters long.
func Evaluate(password string) Strength {
	var set ClassSet
	n := 0
	for _, r := range password {
		set = set.With(classOf(r))
		n++
	}
	if set.Len() >= 2 || n >= strongLength {
		return Strong
	}
	return Weak
}
