package main

import (
	"fmt"
	"os"
	"regexp"
	"slices"
)

// negativeNumber matches seed curvatures that the flag parser would
// otherwise read as shorthand flags.
var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// normalizeArgs moves negative integers behind a "--" so "gasket render -1
// 2 2 3" works without quoting.  The seed is sorted during validation, so
// the order of the curvatures does not matter.  Arguments that already
// contain "--" are left alone.
func normalizeArgs(args []string) []string {
	if slices.Contains(args, "--") {
		return args
	}
	var rest, negatives []string
	for _, a := range args {
		if negativeNumber.MatchString(a) {
			negatives = append(negatives, a)
		} else {
			rest = append(rest, a)
		}
	}
	if len(negatives) == 0 {
		return args
	}
	return append(append(rest, "--"), negatives...)
}
