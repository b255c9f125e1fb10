package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/luisfpatrocinio/patro/internal/gitrepo"
	"github.com/luisfpatrocinio/patro/internal/hub"
	"github.com/luisfpatrocinio/patro/internal/llm"
	"github.com/luisfpatrocinio/patro/internal/output"
	"github.com/luisfpatrocinio/patro/internal/prompt"
)

var (
	commitFilter  string
	commitCeiling int
	commitBase    string
)

var commitCmd = &cobra.Command{
	Use:   "commit [extra context]",
	Short: "Generate a commit message from the staged diff",
	Long: `Generate a commit message from the staged diff and walk through
committing it.

When the staged diff exceeds the size ceiling it is narrowed to the
primary source files (--filter); when even that is too large the diff is
dropped and you are asked for a short summary instead. The generated
message can be accepted, edited in $EDITOR, or discarded. After
committing you may push and open a pull request.

Required environment variables:
  GEMINI_API_KEY or OPENAI_API_KEY
  GITHUB_TOKEN (optional, enables creating the pull request directly)

Examples:
  patro commit
  patro commit "part of the inventory rework"
  patro commit --filter "*.gml" --ceiling 20000`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCommit,
}

func init() {
	rootCmd.AddCommand(commitCmd)
	commitCmd.Flags().StringVar(&commitFilter, "filter", "*.gml", "Pathspec used when narrowing an oversized diff")
	commitCmd.Flags().IntVar(&commitCeiling, "ceiling", prompt.DefaultCeiling, "Maximum diff size in bytes sent to the generation service")
	commitCmd.Flags().StringVar(&commitBase, "base", "develop", "Base branch for the pull request step")
}

func runCommit(cmd *cobra.Command, args []string) error {
	extraContext := ""
	if len(args) > 0 {
		extraContext = args[0]
	}

	repo, err := gitrepo.Open(".")
	if err != nil {
		return err
	}

	staged, err := stagedDiff(repo)
	if err != nil {
		return err
	}
	if staged == "" {
		fmt.Println(ui.warn.Render("No staged changes to commit. Use 'git add <files>' first."))
		return nil
	}

	message, err := generateMessage(repo, staged, extraContext)
	if err != nil {
		return err
	}

	fmt.Println("---")
	fmt.Println(ui.success.Render(message))
	fmt.Println("---")
	if err := output.CopyClipboard(message); err == nil {
		fmt.Println(ui.dim.Render("Message copied to the clipboard."))
	}

	committed, message, err := confirmAndCommit(repo, message)
	if err != nil || !committed {
		return err
	}

	if confirm("Push the changes?") {
		if err := repo.Push(); err != nil {
			return err
		}
		fmt.Println(ui.success.Render("Pushed successfully."))
	}

	if confirm("Open a pull request for this branch?") {
		if err := pullRequestStep(repo, message); err != nil {
			fmt.Println(ui.warn.Render("Warning: " + err.Error()))
		}
	}
	return nil
}

// stagedDiff reads the staged diff, offering to stage everything when
// nothing is staged yet.
func stagedDiff(repo *gitrepo.Repo) (string, error) {
	fmt.Println(ui.accent.Render("Checking for staged changes..."))
	staged, err := repo.StagedDiff()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(staged) != "" {
		return staged, nil
	}

	if !confirm("No files are staged. Stage everything with 'git add .'?") {
		return "", nil
	}
	if err := repo.AddAll(); err != nil {
		return "", err
	}
	fmt.Println(ui.success.Render("Changes staged."))

	staged, err = repo.StagedDiff()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(staged), nil
}

func generateMessage(repo *gitrepo.Repo, staged, extraContext string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	master, source := prompt.LoadMasterPrompt(cwd)
	switch source {
	case prompt.SourceCustom:
		fmt.Println(ui.warn.Render("Using custom prompt from '" + prompt.CustomPromptFile + "'..."))
	case prompt.SourceDefault:
		fmt.Println(ui.dim.Render("Using default prompt..."))
	default:
		fmt.Println(ui.dim.Render("No prompt file found. Using built-in prompt."))
	}

	asm := prompt.NewAssembler(commitCeiling)
	asm.Summary = func() (string, error) {
		fmt.Println(ui.fail.Render("Even the filtered diff is too large; it will be ignored."))
		return readLine("Describe the change briefly (in English): "), nil
	}
	filtered := func() (string, error) {
		fmt.Println(ui.warn.Render("The diff is too large. Trying only '" + commitFilter + "' files..."))
		return repo.StagedDiffPattern(commitFilter)
	}

	assembled, err := asm.AssembleCommit(staged, filtered, master, extraContext)
	if err != nil {
		return "", err
	}

	client, err := llm.NewClient(llm.DefaultConfig())
	if err != nil {
		return "", err
	}
	gen := llm.NewGenerator(client)
	gen.DebugSink = output.WriteDebugPrompt

	fmt.Println(ui.accent.Render("Generating commit message..."))
	return gen.Generate(context.Background(), assembled)
}

// confirmAndCommit runs the accept/edit/abort loop. Returns whether a
// commit was created and the message that was finally used.
func confirmAndCommit(repo *gitrepo.Repo, message string) (bool, string, error) {
	for {
		switch strings.ToLower(readLine("Commit with this message? (y/n/e to edit) ")) {
		case "y", "s":
			hash, err := repo.Commit(message)
			if err != nil {
				return false, message, err
			}
			fmt.Println(ui.success.Render("Commit " + shorten(hash) + " created successfully."))
			return true, message, nil
		case "e":
			edited, err := editInEditor(message)
			if err != nil {
				fmt.Println(ui.fail.Render("Edit failed: " + err.Error()))
				continue
			}
			if strings.TrimSpace(edited) == "" {
				fmt.Println(ui.warn.Render("Empty message, keeping the previous one."))
				continue
			}
			message = strings.TrimSpace(edited)
			fmt.Println("---")
			fmt.Println(ui.success.Render(message))
			fmt.Println("---")
		case "n":
			fmt.Println(ui.fail.Render("Commit aborted."))
			return false, message, nil
		default:
			fmt.Println(ui.warn.Render("Please answer 'y', 'n' or 'e'."))
		}
	}
}

// editInEditor opens the message in $EDITOR through a temp file.
func editInEditor(message string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	tmp, err := os.CreateTemp("", "patro-commit-*.txt")
	if err != nil {
		return "", err
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(message); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	edit := exec.Command(editor, path)
	edit.Stdin = os.Stdin
	edit.Stdout = os.Stdout
	edit.Stderr = os.Stderr
	if err := edit.Run(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func pullRequestStep(repo *gitrepo.Repo, message string) error {
	branch, err := repo.CurrentBranch()
	if err != nil {
		return err
	}

	owner, name, ok := hub.ParseRemote(repo.RemoteURL("origin"))
	if !ok {
		return fmt.Errorf("could not determine the GitHub repository from the origin remote")
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		title := message
		if i := strings.IndexByte(title, '\n'); i >= 0 {
			title = title[:i]
		}
		url, err := hub.OpenPullRequest(context.Background(), token, owner, name, commitBase, branch, title, message)
		if err != nil {
			return err
		}
		fmt.Println(ui.success.Render("Pull request created: " + url))
		return nil
	}

	url := hub.CompareURL(owner, name, commitBase, branch)
	fmt.Println(ui.accent.Render("Opening pull request page: " + url))
	return browser.OpenURL(url)
}

func shorten(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
