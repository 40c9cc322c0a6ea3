package crypto

import (
	"math"
	"strings"
	"unicode/utf8"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// Level is the five-step rating shown alongside the strength label.
type Level uint8

const (
	LevelVeryWeak Level = iota
	LevelWeak
	LevelFair
	LevelGood
	LevelExcellent
)

func (l Level) String() string {
	switch l {
	case LevelVeryWeak:
		return "very weak"
	case LevelWeak:
		return "weak"
	case LevelFair:
		return "fair"
	case LevelGood:
		return "good"
	case LevelExcellent:
		return "excellent"
	}
	return "unknown"
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Meter is a detailed, advisory strength reading.
type Meter struct {
	Score       int     `json:"score"`
	Level       Level   `json:"level"`
	EntropyBits float64 `json:"entropy_bits"`

	// Pattern-aware estimate: dictionary words, keyboard walks, repeats.
	// Only the first patternLimit runes are matched; PatternTruncated
	// reports when the rest was skipped.
	PatternScore     int    `json:"pattern_score"`
	CrackTime        string `json:"crack_time"`
	PatternTruncated bool   `json:"pattern_truncated,omitempty"`
}

// patternLimit caps the zxcvbn input. Its matching cost grows
// exponentially with length.
const patternLimit = 64

// pool sizes per class used for the entropy estimate.
var meterPool = [numClasses]int{
	Uppercase: 26,
	Lowercase: 26,
	Digit:     10,
	Special:   20,
}

// Measure scores a password on length, variety and estimated entropy, and
// adds a zxcvbn pattern score.
func Measure(password string) Meter {
	if password == "" {
		return Meter{Level: LevelVeryWeak}
	}

	var present ClassSet
	for _, r := range password {
		c := classOf(r)
		if c == Special && !strings.ContainsRune(symbolChars, r) {
			continue
		}
		present = present.With(c)
	}

	length := utf8.RuneCountInString(password)
	score := 0
	for _, n := range [...]int{8, 12, 16, 20} {
		if length >= n {
			score++
		}
	}

	classes := present.Len()
	for _, n := range [...]int{2, 3, 4} {
		if classes >= n {
			score++
		}
	}

	pool := 0
	for _, c := range present.Classes() {
		pool += meterPool[c]
	}
	var bits float64
	if pool > 0 {
		bits = float64(length) * math.Log2(float64(pool))
	}
	if bits > 50 {
		score++
	}
	if bits > 80 {
		score++
	}

	prefix, truncated := patternPrefix(password)
	match := zxcvbn.PasswordStrength(prefix, nil)

	return Meter{
		Score:            score,
		Level:            levelFor(score),
		EntropyBits:      math.Round(bits*100) / 100,
		PatternScore:     match.Score,
		CrackTime:        match.CrackTimeDisplay,
		PatternTruncated: truncated,
	}
}

// patternPrefix returns at most patternLimit runes of password.
func patternPrefix(password string) (string, bool) {
	n := 0
	for i := range password {
		if n == patternLimit {
			return password[:i], true
		}
		n++
	}
	return password, false
}

func levelFor(score int) Level {
	switch {
	case score >= 8:
		return LevelExcellent
	case score >= 6:
		return LevelGood
	case score >= 4:
		return LevelFair
	case score >= 2:
		return LevelWeak
	}
	return LevelVeryWeak
}
