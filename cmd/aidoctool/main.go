package main

import (
	"fmt"
	"os"

	"github.com/vilosource/aidoctool/cmd/aidoctool/commands"
)

// Version is the current version of aidoctool
// This must match the git tag when creating releases
const Version = "v0.3.0"

func main() {
	// Set version for commands
	commands.SetVersion(Version)

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
