package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielhkuo/trivia-api/db"
)

// seedCmd loads the sample categories and questions
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample categories and questions",
	Long: `Create the schema if needed and insert the sample trivia data.

Does nothing when categories already exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		conn, err := db.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := db.CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
			return err
		}

		nCats, nQuestions, err := db.Seed(ctx, conn)
		if err != nil {
			return err
		}

		if nCats == 0 {
			zap.S().Info("database already has categories, nothing seeded")
			return nil
		}
		zap.S().Infow("seeded database", "categories", nCats, "questions", nQuestions)
		return nil
	},
}
