package crypto

import (
	"errors"
	"fmt"
)

const (
	MinLength     = 8
	MaxLength     = 128
	DefaultLength = 16

	// maxPolicyLength caps configurable policies.
	maxPolicyLength = 4096
)

var (
	ErrInvalidLength        = errors.New("invalid password length")
	ErrInvalidConfiguration = errors.New("at least one character class must be selected")

	ErrLengthTooShort     = fmt.Errorf("%w: below minimum", ErrInvalidLength)
	ErrLengthTooLong      = fmt.Errorf("%w: above maximum", ErrInvalidLength)
	ErrLengthInsufficient = fmt.Errorf("%w: shorter than the number of selected character classes", ErrInvalidLength)

	ErrInvalidPolicy = errors.New("invalid length policy")
)

// LengthPolicy bounds the lengths a Generator accepts.
type LengthPolicy struct {
	Min int
	Max int
}

// DefaultPolicy accepts lengths from 8 to 128.
func DefaultPolicy() LengthPolicy {
	return LengthPolicy{Min: MinLength, Max: MaxLength}
}

// Validate checks that the bounds are usable.
func (p LengthPolicy) Validate() error {
	switch {
	case p.Min < 1:
		return fmt.Errorf("%w: minimum %d must be at least 1", ErrInvalidPolicy, p.Min)
	case p.Max > maxPolicyLength:
		return fmt.Errorf("%w: maximum %d exceeds %d", ErrInvalidPolicy, p.Max, maxPolicyLength)
	case p.Min > p.Max:
		return fmt.Errorf("%w: minimum %d exceeds maximum %d", ErrInvalidPolicy, p.Min, p.Max)
	}
	return nil
}

func (p LengthPolicy) check(length int) error {
	if length < p.Min {
		return fmt.Errorf("%w (length %d, minimum %d)", ErrLengthTooShort, length, p.Min)
	}
	if length > p.Max {
		return fmt.Errorf("%w (length %d, maximum %d)", ErrLengthTooLong, length, p.Max)
	}
	return nil
}

// GeneratorOptions configures a single generation.
type GeneratorOptions struct {
	Length  int
	Classes ClassSet
}

// DefaultOptions returns sensible defaults: 16 characters with all classes enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:  DefaultLength,
		Classes: AllClasses,
	}
}

// Generator produces passwords within a length policy. It is safe for
// concurrent use.
type Generator struct {
	policy LengthPolicy
	src    *source
}

// NewGenerator returns a Generator backed by the process-wide secure source.
func NewGenerator(policy LengthPolicy) (*Generator, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Generator{policy: policy, src: defaultSource()}, nil
}

// Policy returns the length bounds enforced by g.
func (g *Generator) Policy() LengthPolicy {
	return g.policy
}

var defaultGenerator = &Generator{policy: DefaultPolicy()}

// Generate creates a password with the default 8..128 length policy.
func Generate(opts GeneratorOptions) (string, error) {
	return defaultGenerator.Generate(opts)
}

// Generate creates a cryptographically secure random password. The result
// contains at least one character of every enabled class, placed at random
// positions; the rest is drawn from the combined alphabet.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	if err := g.policy.check(opts.Length); err != nil {
		return "", err
	}

	pool, err := CombinedAlphabet(opts.Classes)
	if err != nil {
		return "", err
	}

	required := opts.Classes.Classes()
	if opts.Length < len(required) {
		return "", fmt.Errorf("%w (length %d, %d classes)", ErrLengthInsufficient, opts.Length, len(required))
	}

	src := g.src
	if src == nil {
		src = defaultSource()
	}

	// One character from each class's own alphabet.
	guaranteed := make([]byte, len(required))
	for i, c := range required {
		ch, err := src.pick(c.Alphabet())
		if err != nil {
			return "", err
		}
		guaranteed[i] = ch
	}

	result := make([]byte, opts.Length-len(required), opts.Length)
	for i := range result {
		ch, err := src.pick(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Insert each guaranteed character into any gap, both ends included.
	for _, ch := range guaranteed {
		pos, err := src.intn(len(result) + 1)
		if err != nil {
			return "", err
		}
		result = append(result, 0)
		copy(result[pos+1:], result[pos:])
		result[pos] = ch
	}

	return string(result), nil
}
