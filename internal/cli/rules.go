package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stdguard/stdguard/internal/rules"
)

var flagCategory string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List stored coding rules",
	Run: func(cmd *cobra.Command, args []string) {
		exitCode = runRules()
	},
}

func init() {
	rulesCmd.Flags().StringVar(&flagCategory, "category", "all", "filter by prompt bucket (naming, structure, security, energy, general)")
}

func runRules() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitRuntimeError
	}

	store := rules.NewStore(cfg.RulesFile)
	all := store.Load()
	if len(all) == 0 {
		fmt.Printf("No rules stored in %s\n", store.Path())
		return ExitSuccess
	}

	buckets := rules.Buckets(all)

	if flagCategory != "all" {
		cat, ok := rules.ValidCategory(flagCategory)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", flagCategory)
			return ExitUsageError
		}
		printBucket(cat, buckets[cat])
		return ExitSuccess
	}

	for _, cat := range rules.BucketNames() {
		printBucket(cat, buckets[cat])
	}
	fmt.Printf("\n%d rules total\n", len(all))
	return ExitSuccess
}

func printBucket(cat rules.Category, rs []rules.Rule) {
	if len(rs) == 0 {
		return
	}
	fmt.Printf("\n%s (%d)\n", cat, len(rs))
	for _, r := range rs {
		fmt.Printf("  [%s] %-8s %s\n", r.ID, r.Severity, r.Statement)
		if r.SuggestedFix != "" {
			fmt.Printf("           fix: %s\n", r.SuggestedFix)
		}
	}
}
