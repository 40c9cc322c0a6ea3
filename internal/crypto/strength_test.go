package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     Strength
	}{
		{name: "empty", password: "", want: Weak},
		{name: "short single class", password: "abcdefgh", want: Weak},
		{name: "fifteen lowercase", password: strings.Repeat("a", 15), want: Weak},
		{name: "sixteen lowercase", password: strings.Repeat("a", 16), want: Strong},
		{name: "four classes short", password: "Ab3!", want: Strong},
		{name: "two classes", password: "a1", want: Strong},
		{name: "digits only", password: "12345678", want: Weak},
		{name: "space counts as special", password: "abc def", want: Strong},
		{name: "multibyte counted by character", password: strings.Repeat("é", 8), want: Weak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.password))
		})
	}
}

func TestEvaluateLongPasswordsAreStrong(t *testing.T) {
	for _, c := range AllClasses.Classes() {
		alphabet := c.Alphabet()
		for length := 16; length <= 64; length += 8 {
			pw := strings.Repeat(alphabet[:1], length)
			assert.Equal(t, Strong, Evaluate(pw), "%s x%d", c, length)
		}
	}
}

func TestEvaluateGeneratedPasswords(t *testing.T) {
	for i := 0; i < 20; i++ {
		pw, err := Generate(GeneratorOptions{Length: 8, Classes: NewClassSet(Digit)})
		require.NoError(t, err)
		assert.Equal(t, Weak, Evaluate(pw))

		pw, err = Generate(GeneratorOptions{Length: 8, Classes: NewClassSet(Lowercase, Digit)})
		require.NoError(t, err)
		assert.Equal(t, Strong, Evaluate(pw))
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, AllClasses, Classify("Ab3!"))
	assert.Equal(t, NewClassSet(Lowercase), Classify("abc"))
	assert.True(t, Classify("").IsEmpty())
}

func TestStrengthText(t *testing.T) {
	b, err := Strong.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "strong", string(b))

	var s Strength
	require.NoError(t, s.UnmarshalText([]byte("weak")))
	assert.Equal(t, Weak, s)
	assert.ErrorIs(t, s.UnmarshalText([]byte("medium")), ErrUnknownStrength)
}
