package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// errNoMatch is returned by match when the document does not satisfy the
// spec. The report has already been printed.
var errNoMatch = errors.New("document does not match")

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Cause(err) == errNoMatch:
		return 1
	default:
		return 2
	}
}

func main() {
	err := newRootCmd().Execute()
	if err != nil && errors.Cause(err) != errNoMatch {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
	}
	os.Exit(exitCode(err))
}
