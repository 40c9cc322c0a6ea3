package service

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/foxypassword/foxypassword-go/internal/crypto"
	"github.com/foxypassword/foxypassword-go/internal/model"
)

const (
	DefaultMaxCount = 100

	// MaxEvaluateLength bounds the input accepted by Evaluate.
	MaxEvaluateLength = 1024
)

var (
	ErrInvalidCount     = errors.New("invalid password count")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooLong  = fmt.Errorf("password must be at most %d bytes", MaxEvaluateLength)
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen           *crypto.Generator
	defaultLength int
	maxCount      int
}

// NewGeneratorService creates a new GeneratorService. A zero defaultLength or
// maxCount falls back to 16 and 100.
func NewGeneratorService(gen *crypto.Generator, defaultLength, maxCount int) *GeneratorService {
	if defaultLength == 0 {
		defaultLength = crypto.DefaultLength
	}
	if maxCount <= 0 {
		maxCount = DefaultMaxCount
	}
	return &GeneratorService{
		gen:           gen,
		defaultLength: defaultLength,
		maxCount:      maxCount,
	}
}

// Options converts a request into generator options. Missing class flags
// default to enabled and a zero length to the service default. A non-nil
// Classes list selects exactly the named classes.
func (s *GeneratorService) Options(req model.GenerateRequest) (crypto.GeneratorOptions, error) {
	opts := crypto.GeneratorOptions{Length: req.Length}
	if opts.Length == 0 {
		opts.Length = s.defaultLength
	}

	if req.Classes != nil {
		for _, name := range req.Classes {
			c, err := crypto.ParseClass(name)
			if err != nil {
				return crypto.GeneratorOptions{}, err
			}
			opts.Classes = opts.Classes.With(c)
		}
		return opts, nil
	}

	flags := []struct {
		p     *bool
		class crypto.CharacterClass
	}{
		{req.Uppercase, crypto.Uppercase},
		{req.Lowercase, crypto.Lowercase},
		{req.Numbers, crypto.Digit},
		{req.Symbols, crypto.Special},
	}
	for _, f := range flags {
		if boolOrDefault(f.p, true) {
			opts.Classes = opts.Classes.With(f.class)
		}
	}
	return opts, nil
}

// Generate produces one or more passwords based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > s.maxCount {
		return model.GenerateResponse{}, fmt.Errorf("%w: must be between 1 and %d", ErrInvalidCount, s.maxCount)
	}

	opts, err := s.Options(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	passwords := make([]model.GeneratedPassword, 0, count)
	for i := 0; i < count; i++ {
		password, err := s.gen.Generate(opts)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		passwords = append(passwords, model.GeneratedPassword{
			Password: password,
			Strength: crypto.Evaluate(password),
		})
	}

	return model.GenerateResponse{
		Password:  passwords[0].Password,
		Passwords: passwords,
		Length:    opts.Length,
	}, nil
}

// Evaluate rates an arbitrary password. It never rejects a password for
// being weak.
func (s *GeneratorService) Evaluate(req model.EvaluateRequest) (model.EvaluateResponse, error) {
	if req.Password == "" {
		return model.EvaluateResponse{}, ErrPasswordRequired
	}
	if len(req.Password) > MaxEvaluateLength {
		return model.EvaluateResponse{}, ErrPasswordTooLong
	}

	return model.EvaluateResponse{
		Strength: crypto.Evaluate(req.Password),
		Length:   utf8.RuneCountInString(req.Password),
		Classes:  crypto.Classify(req.Password).Classes(),
		Meter:    crypto.Measure(req.Password),
	}, nil
}

// IsValidationError reports whether err was caused by caller input.
func IsValidationError(err error) bool {
	return errors.Is(err, crypto.ErrInvalidLength) ||
		errors.Is(err, crypto.ErrInvalidConfiguration) ||
		errors.Is(err, crypto.ErrUnknownClass) ||
		errors.Is(err, ErrInvalidCount) ||
		errors.Is(err, ErrPasswordRequired) ||
		errors.Is(err, ErrPasswordTooLong)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
