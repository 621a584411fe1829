package main

import (
	"fmt"
	"os"

	"github.com/ib-77/inlinetry/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd("inlinetry",
		"Typed failure capture for panicking calls",
		"inlinetry runs calls through a failure sequence and reports which kind, if any, each call raised.")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
