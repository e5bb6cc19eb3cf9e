// Command calconv converts dates between calendars and manages the Hijri
// year cache.
package main

import (
	"fmt"
	"os"

	"github.com/zapponejosh/calendrics-api/cmd/calconv/commands"
)

func main() {
	if err := commands.NewRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "calconv:", err)
		os.Exit(1)
	}
}
