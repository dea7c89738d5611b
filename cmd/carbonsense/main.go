// Command carbonsense estimates the carbon footprint of smartphone charging
// habits, interactively or as a one-shot report.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/carbonsense/internal/cli"
	"github.com/rshade/carbonsense/pkg/version"
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
