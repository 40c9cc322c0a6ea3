package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// CharacterClass is a named category of symbols with a fixed alphabet.
type CharacterClass uint8

const (
	Uppercase CharacterClass = iota
	Lowercase
	Digit
	Special

	numClasses
)

var classAlphabets = [numClasses]string{
	Uppercase: uppercaseChars,
	Lowercase: lowercaseChars,
	Digit:     numberChars,
	Special:   symbolChars,
}

var classNames = [numClasses]string{
	Uppercase: "uppercase",
	Lowercase: "lowercase",
	Digit:     "numbers",
	Special:   "special",
}

var ErrUnknownClass = errors.New("unknown character class")

// Alphabet returns the fixed alphabet for the class.
func (c CharacterClass) Alphabet() string {
	if c >= numClasses {
		return ""
	}
	return classAlphabets[c]
}

func (c CharacterClass) String() string {
	if c >= numClasses {
		return fmt.Sprintf("CharacterClass(%d)", uint8(c))
	}
	return classNames[c]
}

// MarshalText encodes the class by name.
func (c CharacterClass) MarshalText() ([]byte, error) {
	if c >= numClasses {
		return nil, ErrUnknownClass
	}
	return []byte(c.String()), nil
}

// ParseClass accepts the class names used by the API's classes field.
func ParseClass(name string) (CharacterClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uppercase", "upper", "u":
		return Uppercase, nil
	case "lowercase", "lower", "l":
		return Lowercase, nil
	case "numbers", "digits", "digit", "n":
		return Digit, nil
	case "special", "symbols", "s":
		return Special, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
}

// ClassSet is a set of character classes. The zero value is empty.
type ClassSet uint8

// AllClasses enables every character class.
const AllClasses ClassSet = 1<<numClasses - 1

// NewClassSet builds a set from the given classes.
func NewClassSet(classes ...CharacterClass) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

// With returns a copy of s with c enabled.
func (s ClassSet) With(c CharacterClass) ClassSet {
	if c >= numClasses {
		return s
	}
	return s | 1<<c
}

func (s ClassSet) Has(c CharacterClass) bool {
	return c < numClasses && s&(1<<c) != 0
}

// Len returns the number of enabled classes.
func (s ClassSet) Len() int {
	n := 0
	for c := CharacterClass(0); c < numClasses; c++ {
		if s.Has(c) {
			n++
		}
	}
	return n
}

func (s ClassSet) IsEmpty() bool { return s&AllClasses == 0 }

// Classes lists the enabled classes in fixed order: uppercase, lowercase,
// digits, special.
func (s ClassSet) Classes() []CharacterClass {
	out := make([]CharacterClass, 0, numClasses)
	for c := CharacterClass(0); c < numClasses; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s ClassSet) String() string {
	names := make([]string, 0, numClasses)
	for _, c := range s.Classes() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}

// CombinedAlphabet concatenates the alphabets of every enabled class.
// Characters are drawn uniformly over the result, so larger classes are
// proportionally more likely per fill draw.
func CombinedAlphabet(set ClassSet) (string, error) {
	if set.IsEmpty() {
		return "", ErrInvalidConfiguration
	}

	var b strings.Builder
	for _, c := range set.Classes() {
		b.WriteString(c.Alphabet())
	}
	return b.String(), nil
}

// classOf reports which class a rune belongs to. Anything that is not an
// ASCII letter or digit counts as special.
func classOf(r rune) CharacterClass {
	switch {
	case r >= 'A' && r <= 'Z':
		return Uppercase
	case r >= 'a' && r <= 'z':
		return Lowercase
	case r >= '0' && r <= '9':
		return Digit
	default:
		return Special
	}
}
