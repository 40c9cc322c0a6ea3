package cli

import (
	"fmt"
	"io"

	"github.com/foxypassword/foxypassword-go/internal/crypto"
	"github.com/foxypassword/foxypassword-go/internal/model"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func strengthLabel(s crypto.Strength, color bool) string {
	label, code := "Weak", ansiYellow
	if s == crypto.Strong {
		label, code = "Strong", ansiGreen
	}
	if !color {
		return label
	}
	return code + label + ansiReset
}

// writeAdvisory prints one strength line per password, prefixed with its
// position when more than one was generated.
func writeAdvisory(w io.Writer, passwords []model.GeneratedPassword, verbose bool) {
	color := isTerminal(w)

	for i, p := range passwords {
		prefix := ""
		if len(passwords) > 1 {
			prefix = fmt.Sprintf("[%d] ", i+1)
		}
		fmt.Fprintf(w, "%sStrength: %s\n", prefix, strengthLabel(p.Strength, color))

		if verbose {
			m := crypto.Measure(p.Password)
			fmt.Fprintf(w, "%s  meter: %s (%d/9), entropy %.1f bits, pattern score %d/4, crack time %s\n",
				prefix, m.Level, m.Score, m.EntropyBits, m.PatternScore, m.CrackTime)
		}
	}
}
