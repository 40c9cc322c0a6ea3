package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinedAlphabet(t *testing.T) {
	tests := []struct {
		name string
		set  ClassSet
		want string
	}{
		{name: "uppercase", set: NewClassSet(Uppercase), want: uppercaseChars},
		{name: "digits", set: NewClassSet(Digit), want: numberChars},
		{name: "order is fixed", set: NewClassSet(Special, Digit, Lowercase), want: lowercaseChars + numberChars + symbolChars},
		{name: "all", set: AllClasses, want: uppercaseChars + lowercaseChars + numberChars + symbolChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CombinedAlphabet(tt.set)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCombinedAlphabetEmptySet(t *testing.T) {
	got, err := CombinedAlphabet(ClassSet(0))
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Empty(t, got)
}

func TestClassSet(t *testing.T) {
	set := NewClassSet(Digit, Uppercase, Digit)

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Has(Uppercase))
	assert.True(t, set.Has(Digit))
	assert.False(t, set.Has(Lowercase))
	assert.Equal(t, []CharacterClass{Uppercase, Digit}, set.Classes())
	assert.Equal(t, "uppercase,numbers", set.String())

	assert.Equal(t, 4, AllClasses.Len())
	assert.True(t, ClassSet(0).IsEmpty())
	assert.Equal(t, set, set.With(CharacterClass(9)), "unknown classes are ignored")
}

func TestParseClass(t *testing.T) {
	tests := map[string]CharacterClass{
		"uppercase": Uppercase,
		"Upper":     Uppercase,
		"lowercase": Lowercase,
		"numbers":   Digit,
		"digits":    Digit,
		"special":   Special,
		" symbols ": Special,
	}
	for in, want := range tests {
		got, err := ParseClass(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseClass("emoji")
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestCharacterClassAlphabets(t *testing.T) {
	assert.Len(t, Uppercase.Alphabet(), 26)
	assert.Len(t, Lowercase.Alphabet(), 26)
	assert.Len(t, Digit.Alphabet(), 10)
	assert.Equal(t, "!@#$%^&*()_+-=[]{}|;:,.<>?", Special.Alphabet())
	assert.Empty(t, CharacterClass(7).Alphabet())

	for _, c := range AllClasses.Classes() {
		for _, r := range c.Alphabet() {
			assert.Equal(t, c, classOf(r), "rune %q", r)
		}
	}
}
