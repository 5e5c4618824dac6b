package main

import (
	"SpotiQ/cmd"
)

func main() {
	// Cobra handles errors and exit codes itself; the root command runs
	// the HTTP server unless a subcommand is given.
	cmd.Execute()
}
