package rules

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatForPromptEmpty(t *testing.T) {
	got := FormatForPrompt(Buckets(nil), 0)
	assert.Equal(t, "No specific rules loaded.", got)
}

func TestFormatForPromptRendersRuleAndFix(t *testing.T) {
	all := []Rule{{
		ID:           "R001",
		Statement:    "No hardcoded security keys",
		SuggestedFix: "Read keys from the environment",
	}}
	got := FormatForPrompt(Buckets(all), len(all))

	assert.Contains(t, got, "--- SECURITY RULES ---")
	assert.Contains(t, got, "[R001] No hardcoded security keys")
	assert.Contains(t, got, "Fix: Read keys from the environment")
	assert.Contains(t, got, "(Showing 1 of 1 total rules)")
}

func TestFormatForPromptBucketLimit(t *testing.T) {
	var all []Rule
	for i := 0; i < 25; i++ {
		all = append(all, Rule{
			ID:        fmt.Sprintf("R%03d", i+1),
			Statement: fmt.Sprintf("Security rule %d about access control", i+1),
		})
	}
	got := FormatForPrompt(Buckets(all), len(all))

	// Only the first 10 of one bucket make it in.
	assert.Contains(t, got, "[R010]")
	assert.NotContains(t, got, "[R011]")
	assert.Contains(t, got, "(Showing 10 of 25 total rules)")
}

func TestFormatForPromptOverallCap(t *testing.T) {
	var all []Rule
	for _, topic := range []string{
		"name for rule", "indent rule", "security rule", "energy rule", "plain rule",
	} {
		for i := 0; i < 12; i++ {
			all = append(all, Rule{
				ID:        fmt.Sprintf("R%03d", len(all)+1),
				Statement: fmt.Sprintf("%s variant %d", topic, i+1),
			})
		}
	}
	got := FormatForPrompt(Buckets(all), len(all))

	assert.Contains(t, got, "(Showing 40 of 60 total rules)")
	// Security is the highest-priority section and must come first.
	secIdx := strings.Index(got, "--- SECURITY RULES ---")
	nameIdx := strings.Index(got, "--- NAMING RULES ---")
	assert.Greater(t, nameIdx, secIdx)
	assert.GreaterOrEqual(t, secIdx, 0)
}
