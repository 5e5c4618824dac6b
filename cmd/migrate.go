package cmd

import (
	"fmt"
	"log"

	"SpotiQ/config"
	"SpotiQ/db"
	"SpotiQ/model"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long:  `Migrate the database schema to match the current models.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		if err := db.ConnectGormDB(cfg); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.CloseGormDB()

		if err := db.AutoMigrateModels(
			&model.User{},
			&model.Song{},
			&model.Playlist{},
			&model.PlaylistSong{},
			&model.PlaylistLike{},
		); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}

		fmt.Println("Migration complete.")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
