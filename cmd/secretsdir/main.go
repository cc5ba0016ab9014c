// Command secretsdir classifies the current machine and resolves its secrets
// directory.
package main

import (
	"fmt"
	"os"

	"secretsdir/cmd/secretsdir/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
