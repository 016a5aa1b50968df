package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foxzi/contentd/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample content into the database",
	Long:  `Load sample campaigns, news and FAQs. Does nothing when content already exists.`,
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		return err
	}

	seeded, err := database.Seed()
	if err != nil {
		return err
	}
	if !seeded {
		fmt.Println("Database already contains content, nothing to do")
		return nil
	}

	fmt.Println("Sample content loaded")
	return nil
}
