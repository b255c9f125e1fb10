package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/luisfpatrocinio/patro/internal/settings"
)

var (
	appSettings settings.Settings
	ui          styles
)

var rootCmd = &cobra.Command{
	Use:   "patro",
	Short: "Patro - commit history reports and AI commit messages",
	Long: `Patro extracts commit history from the current Git repository and turns
it into daily reports and commit messages with the help of a
text-generation API.

Subcommands:
  report    build the daily report from recent commits
  messages  compile commit messages into a text file
  commit    generate a commit message from the staged diff`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		s, created, err := settings.Load(settings.DefaultFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		appSettings = s
		ui = newStyles(appSettings.Colors)
		if created {
			fmt.Println(ui.dim.Render("Created " + settings.DefaultFile + " with default settings."))
		}
	},
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
