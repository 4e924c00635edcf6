// Package main provides the contrast CLI for checking WCAG contrast of colors
// and auditing design-token palettes.
package main

import (
	"errors"
	"fmt"
	"os"
)

// errGateFailed signals a failed quality gate. The reason has already been
// reported, so main exits without printing it again.
var errGateFailed = errors.New("contrast requirements not met")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errGateFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
