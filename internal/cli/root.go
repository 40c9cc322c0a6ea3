// Package cli implements the foxypass command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/foxypassword/foxypassword-go/internal/crypto"
	"github.com/foxypassword/foxypassword-go/internal/model"
	"github.com/foxypassword/foxypassword-go/internal/service"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var ErrInvalidCount = errors.New("count must be at least 1")

const longHelp = `Generate a random password from the selected character classes.

With no class flags every class is enabled. Giving any of -u, -l, -n or -s
restricts the password to exactly the classes given. Each selected class
appears at least once, at a random position.

The password is written to stdout. An advisory strength rating is written
to stderr and never affects the exit status.`

const examples = `  foxypass 16
  foxypass 12 -uln
  foxypass 20 -n -s --count 5`

type options struct {
	uppercase bool
	lowercase bool
	numbers   bool
	special   bool
	count     int
	verbose   bool
}

// NewRootCommand builds the foxypass command. Passwords go to stdout and
// strength advisories to stderr.
func NewRootCommand(svc *service.GeneratorService, stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "foxypass [length]",
		Short:         "Generate secure random passwords",
		Long:          longHelp,
		Example:       examples,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.request(args)
			if err != nil {
				return err
			}

			resp, err := svc.Generate(req)
			if err != nil {
				return err
			}

			slog.Debug("passwords generated", "count", len(resp.Passwords), "length", resp.Length)

			for _, p := range resp.Passwords {
				fmt.Fprintln(stdout, p.Password)
			}
			writeAdvisory(stderr, resp.Passwords, opts.verbose)
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.BoolVarP(&opts.uppercase, "uppercase", "u", false, "include uppercase letters (A-Z)")
	f.BoolVarP(&opts.lowercase, "lowercase", "l", false, "include lowercase letters (a-z)")
	f.BoolVarP(&opts.numbers, "numbers", "n", false, "include digits (0-9)")
	f.BoolVarP(&opts.special, "special", "s", false, "include special characters ("+crypto.Special.Alphabet()+")")
	f.IntVarP(&opts.count, "count", "c", 1, "number of passwords to generate")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "show entropy and pattern analysis")

	return cmd
}

// request turns positional arguments and flags into a generation request.
func (o options) request(args []string) (model.GenerateRequest, error) {
	var req model.GenerateRequest

	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return req, fmt.Errorf("%w: %q is not a number", crypto.ErrInvalidLength, args[0])
		}
		if n == 0 {
			return req, fmt.Errorf("%w: must be positive", crypto.ErrInvalidLength)
		}
		req.Length = n
	}

	if o.count < 1 {
		return req, ErrInvalidCount
	}
	req.Count = o.count

	if o.uppercase || o.lowercase || o.numbers || o.special {
		req.Uppercase = &o.uppercase
		req.Lowercase = &o.lowercase
		req.Numbers = &o.numbers
		req.Symbols = &o.special
	}
	return req, nil
}

// Execute runs the command and returns the process exit code.
func Execute(args []string, svc *service.GeneratorService, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := NewRootCommand(svc, stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n\n", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return 1
	}
	return 0
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
