package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stdguard/stdguard/internal/extractor"
	"github.com/stdguard/stdguard/internal/providers"
	"github.com/stdguard/stdguard/internal/rules"
)

var (
	flagDryRun    bool
	flagKeepDupes bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [documents...]",
	Short: "Extract coding rules from guideline documents",
	Long: "Extract reads PDF, DOCX, PPTX, and text documents, asks the configured\n" +
		"LLM to pull out concrete coding rules, and merges them into the rule\n" +
		"store. Without arguments it scans the configured guide directory.",
	Run: func(cmd *cobra.Command, args []string) {
		exitCode = runExtract(args)
	},
}

func init() {
	extractCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show extracted rules without saving")
	extractCmd.Flags().BoolVar(&flagKeepDupes, "keep-dupes", false, "keep rules that duplicate existing statements")
}

func runExtract(args []string) int {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitRuntimeError
	}

	provider, err := providers.New(cfg.Provider, cfg.Model())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitRuntimeError
	}
	if !provider.Configured() {
		fmt.Fprintf(os.Stderr, "Error: provider %s has no API key set\n", provider.Name())
		return ExitRuntimeError
	}

	store := rules.NewStore(cfg.RulesFile)
	pipe := extractor.NewPipeline(cfg.GuideDir, store, provider, logger)

	docs := args
	if len(docs) == 0 {
		docs, err = pipe.Scan()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitRuntimeError
		}
	}
	if len(docs) == 0 {
		fmt.Printf("No documents found in %s\n", cfg.GuideDir)
		return ExitSuccess
	}

	results := pipe.Run(context.Background(), docs)

	var candidates []rules.Rule
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Printf("  %-40s FAILED: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Printf("  %-40s %d rules\n", r.Name, len(r.Rules))
		candidates = append(candidates, r.Rules...)
	}

	if flagDryRun {
		fmt.Printf("\nDry run: %d candidate rules from %d documents (%d failed), nothing saved\n",
			len(candidates), len(docs), failed)
		for _, r := range candidates {
			fmt.Printf("  [%s/%s] %s\n", r.Category, r.Severity, r.Statement)
		}
		return ExitSuccess
	}

	added, total, err := pipe.Merge(candidates, flagKeepDupes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitRuntimeError
	}

	fmt.Printf("\nAdded %d rules (%d duplicates skipped), store now holds %d\n",
		added, len(candidates)-added, total)
	fmt.Printf("Saved to %s\n", filepath.Clean(store.Path()))
	if failed > 0 {
		return ExitRuntimeError
	}
	return ExitSuccess
}
