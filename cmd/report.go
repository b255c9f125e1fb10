package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/luisfpatrocinio/patro/internal/gitrepo"
	"github.com/luisfpatrocinio/patro/internal/llm"
	"github.com/luisfpatrocinio/patro/internal/output"
	"github.com/luisfpatrocinio/patro/internal/prompt"
	"github.com/luisfpatrocinio/patro/internal/report"
	"github.com/luisfpatrocinio/patro/internal/window"
)

var (
	reportFocus    []string
	reportBlockers string
	reportOut      string
	reportCeiling  int
	reportNoLLM    bool
)

var reportCmd = &cobra.Command{
	Use:   "report [extra context]",
	Short: "Build the daily report from recent commits",
	Long: `Build the daily development report from the commits of the last day.

On Mondays the window stretches back three days so the weekend and the
prior Friday are covered. The collected history is summarized by the
text-generation service into three sections (Advances, Focus, Blockers),
written to a report file and copied to the clipboard.

Required environment variables (unless --no-llm):
  GEMINI_API_KEY or OPENAI_API_KEY

Examples:
  patro report
  patro report "demo build shipped yesterday" --focus "polish dialog UI"
  patro report --blockers "waiting on new art assets" --no-llm`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringArrayVar(&reportFocus, "focus", nil, "Focus item for today (repeatable)")
	reportCmd.Flags().StringVar(&reportBlockers, "blockers", "", "Current blockers, if any")
	reportCmd.Flags().StringVar(&reportOut, "out", "dailyReport.txt", "Report output file")
	reportCmd.Flags().IntVar(&reportCeiling, "ceiling", prompt.DefaultCeiling, "Maximum body size in bytes sent to the generation service")
	reportCmd.Flags().BoolVar(&reportNoLLM, "no-llm", false, "Write the raw commit report without calling the generation service")
}

func runReport(cmd *cobra.Command, args []string) error {
	extraContext := ""
	if len(args) > 0 {
		extraContext = args[0]
	}

	repo, err := gitrepo.Open(".")
	if err != nil {
		return err
	}

	w := window.Compute(time.Now())
	fmt.Println(ui.dim.Render("Collecting commits from " + w.String()))

	collector := report.NewCollector(repo, appSettings.ShowHashes)
	collected, err := collector.Collect(w)
	if errors.Is(err, report.ErrNoCommits) {
		fmt.Println(ui.warn.Render("No commits found in the report window. Nothing to report."))
		return nil
	}
	if err != nil {
		return err
	}
	if n := collector.Skipped(); n > 0 {
		fmt.Println(ui.dim.Render(fmt.Sprintf("Skipped %d revision(s) with unreadable metadata.", n)))
	}

	final := collected
	if !reportNoLLM {
		asm := prompt.NewAssembler(reportCeiling)
		asm.Summary = func() (string, error) {
			fmt.Println(ui.warn.Render("The collected history is too large for the generation service."))
			return readLine("Type a short summary of the period instead: "), nil
		}

		assembled, err := asm.AssembleReport(collected, extraContext, reportFocus, reportBlockers)
		if err != nil {
			return err
		}

		client, err := llm.NewClient(llm.DefaultConfig())
		if err != nil {
			return err
		}
		gen := llm.NewGenerator(client)
		gen.DebugSink = output.WriteDebugPrompt

		fmt.Println(ui.accent.Render("Generating daily report..."))
		final, err = gen.Generate(context.Background(), assembled)
		if err != nil {
			return err
		}
	}

	if err := output.WriteReport(reportOut, final); err != nil {
		return err
	}
	if err := output.CopyClipboard(final); err != nil {
		fmt.Println(ui.warn.Render("Warning: " + err.Error()))
		fmt.Println(ui.success.Render("Report saved to " + reportOut + "."))
		return nil
	}

	fmt.Println(ui.success.Render("Report saved to " + reportOut + " and copied to the clipboard."))
	return nil
}
