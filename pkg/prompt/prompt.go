// Package prompt provides the blocking yes/no confirmation used before
// destructive operations.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirmer asks a question and blocks for a boolean answer.
type Confirmer func(msg string) bool

// Always answers yes without asking; used by --yes flags and tests.
func Always() Confirmer {
	return func(string) bool { return true }
}

// Stdin returns a Confirmer that prompts on stdout and reads y/N from stdin.
func Stdin() Confirmer {
	return Reader(os.Stdin, os.Stdout)
}

// Reader returns a Confirmer bound to the given streams.
func Reader(in io.Reader, out io.Writer) Confirmer {
	scanner := bufio.NewScanner(in)
	return func(msg string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", msg)
		if !scanner.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		return answer == "y" || answer == "yes"
	}
}
