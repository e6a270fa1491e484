package rules

import (
	"fmt"
	"strings"
)

// PromptPriority orders buckets by how early their rules enter the prompt.
// Security rules always come first; general rules fill whatever room is left.
var PromptPriority = []Category{
	CategorySecurity,
	CategoryNaming,
	CategoryStructure,
	CategoryEnergy,
	CategoryGeneral,
}

const (
	maxPromptRules    = 40
	maxRulesPerBucket = 10
)

// FormatForPrompt renders stored rules for the review prompt. Each bucket
// contributes up to 10 rules in priority order until the overall cap of 40
// is reached. total is the full store size, shown in the trailer.
func FormatForPrompt(buckets map[Category][]Rule, total int) string {
	if total == 0 {
		return "No specific rules loaded."
	}

	var b strings.Builder
	b.WriteString("MANDATORY ORGANIZATION CODING STANDARDS:\n\n")

	added := 0
	for _, cat := range PromptPriority {
		catRules := buckets[cat]
		if len(catRules) == 0 {
			continue
		}

		fmt.Fprintf(&b, "--- %s RULES ---\n", strings.ToUpper(string(cat)))

		for i, r := range catRules {
			if i >= maxRulesPerBucket || added >= maxPromptRules {
				break
			}
			added++
			id := r.ID
			if id == "" {
				id = "N/A"
			}
			fix := r.SuggestedFix
			if fix == "" {
				fix = "N/A"
			}
			fmt.Fprintf(&b, "[%s] %s\n", id, r.Statement)
			fmt.Fprintf(&b, "  Fix: %s\n\n", fix)
		}

		if added >= maxPromptRules {
			break
		}
	}

	fmt.Fprintf(&b, "\n(Showing %d of %d total rules)\n", added, total)
	return b.String()
}
