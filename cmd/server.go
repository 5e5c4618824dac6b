package cmd

import (
	"SpotiQ/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the SpotiQ HTTP server",
	Long:  `Start the SpotiQ HTTP server, serving the playlist sharing API.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
