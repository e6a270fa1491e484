package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stdguard/stdguard/internal/gitpush"
)

var flagMessage string

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Commit and push the rule store to the git remote",
	Run: func(cmd *cobra.Command, args []string) {
		exitCode = runPush()
	},
}

func init() {
	pushCmd.Flags().StringVarP(&flagMessage, "message", "m", "", "commit message")
}

func runPush() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitRuntimeError
	}

	branch := cfg.GitBranch
	if branch == "" {
		branch, err = gitpush.CurrentBranch(cfg.RepoPath)
		if err != nil {
			branch = "main"
		}
	}

	message := flagMessage
	if message == "" {
		message = fmt.Sprintf("Add new rules from %s [%s]",
			cfg.GuideDir, time.Now().Format("2006-01-02 15:04"))
	}

	steps := gitpush.Push(gitpush.Options{
		RepoPath:  cfg.RepoPath,
		StorePath: cfg.RulesFile,
		Remote:    cfg.GitRemote,
		Branch:    branch,
		Message:   message,
		Author:    "stdguard",
		Email:     "stdguard@localhost",
	})

	for _, s := range steps {
		mark := "ok"
		if !s.OK {
			mark = "FAILED"
		}
		fmt.Printf("  %-20s %-6s %s\n", s.Name, mark, s.Output)
	}

	if !gitpush.Succeeded(steps) {
		return ExitRuntimeError
	}
	fmt.Printf("\nRules pushed to %s/%s\n", cfg.GitRemote, branch)
	return ExitSuccess
}
