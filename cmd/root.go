package cmd

import (
	"fmt"
	"os"

	"SpotiQ/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spotiq",
	Short: "SpotiQ is a playlist sharing service.",
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
