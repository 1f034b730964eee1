package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/trivia-api/cliparse"
	"github.com/danielhkuo/trivia-api/logger"
)

var (
	cfg      cliparse.Config
	syncLogs func()
)

var rootCmd = &cobra.Command{
	Use:   "trivia",
	Short: "Trivia API server",
	Long: `Trivia API serves questions, categories and quiz play over HTTP.

Run without a subcommand to start the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = cliparse.Load(cmd.Flags())
		if err != nil {
			return err
		}

		syncLogs, err = logger.Install(cfg.Env)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		return nil
	},
	RunE: runServe,
}

func init() {
	cliparse.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(serveCmd, seedCmd)
}

func main() {
	os.Exit(run())
}

func run() int {
	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Error loading .env:", err)
		return 1
	}

	defer func() {
		if syncLogs != nil {
			syncLogs()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
