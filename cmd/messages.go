package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luisfpatrocinio/patro/internal/gitrepo"
	"github.com/luisfpatrocinio/patro/internal/output"
	"github.com/luisfpatrocinio/patro/internal/report"
)

var messagesLast int

var messagesCmd = &cobra.Command{
	Use:   "messages [hash...]",
	Short: "Compile commit messages into a text file",
	Long: `Compile commit messages into commitsMessages.txt and copy them to the
clipboard.

Sources, in order of precedence:
  --last N           the N most recent commits
  positional hashes  explicit revision ids
  neither            hashes are read interactively, one per line

Whether revision hashes appear in the output is controlled by the
"show_hashes" option in settings.json.

Examples:
  patro messages --last 5
  patro messages 3f2a91c 81b4c0d`,
	RunE: runMessages,
}

func init() {
	rootCmd.AddCommand(messagesCmd)
	messagesCmd.Flags().IntVar(&messagesLast, "last", 0, "Compile the N most recent commits")
}

const messagesFile = "commitsMessages.txt"

func runMessages(cmd *cobra.Command, args []string) error {
	repo, err := gitrepo.Open(".")
	if err != nil {
		return err
	}

	collector := report.NewCollector(repo, appSettings.ShowHashes)

	var compiled string
	switch {
	case messagesLast > 0:
		compiled, err = collector.CollectLatest(messagesLast)
	case len(args) > 0:
		compiled, err = collector.CollectFromIDs(args)
	default:
		compiled, err = collector.CollectFromIDs(readHashes())
	}

	if errors.Is(err, report.ErrNoCommits) {
		fmt.Println(ui.warn.Render("No valid commit messages were found. Nothing to do."))
		return nil
	}
	if err != nil {
		return err
	}
	if n := collector.Skipped(); n > 0 {
		fmt.Println(ui.dim.Render(fmt.Sprintf("Skipped %d revision(s) with unreadable metadata.", n)))
	}

	if err := output.WriteReport(messagesFile, compiled); err != nil {
		return err
	}

	if err := output.CopyClipboard(compiled); err != nil {
		fmt.Println(ui.warn.Render("Warning: " + err.Error()))
		fmt.Println(ui.success.Render("Messages saved to " + messagesFile + "."))
		return nil
	}

	fmt.Println(ui.success.Render("Messages saved to " + messagesFile + " and copied to the clipboard."))
	return nil
}
