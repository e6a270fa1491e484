package review

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"

	"github.com/stdguard/stdguard/internal/rules"
)

// StripFence removes a wrapping markdown code fence and an optional leading
// language tag from a model response.
func StripFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	parts := strings.SplitN(raw, "```", 3)
	if len(parts) < 2 {
		return raw
	}
	inner := strings.TrimPrefix(parts[1], "json")
	return strings.TrimSpace(inner)
}

// ExtractArray recovers a JSON array of objects from free-form model output.
// The text may wrap the array in prose or code fences, or append a trailing
// explanation. Returns nil when no parseable array is present; it never
// fails. Non-object array items are dropped.
func ExtractArray(text string) []map[string]any {
	text = strings.TrimSpace(StripFence(text))

	candidate := text
	if !strings.HasPrefix(text, "[") {
		start := strings.Index(text, "[")
		end := strings.LastIndex(text, "]")
		if start < 0 || end <= start {
			return nil
		}
		candidate = text[start : end+1]
	}

	var items []any
	if err := json.Unmarshal([]byte(candidate), &items); err != nil {
		return nil
	}

	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// ParseIssues parses an analyze response into normalized issues. Missing
// fields get documented defaults; items without a message are dropped.
// Numeric fields tolerate string values.
func ParseIssues(text string) []Issue {
	items := ExtractArray(text)
	issues := make([]Issue, 0, len(items))
	for _, m := range items {
		msg := strings.TrimSpace(cast.ToString(m["message"]))
		if msg == "" {
			continue
		}

		issue := Issue{
			Rule:     "QUALITY",
			Message:  msg,
			Line:     1,
			Severity: rules.SeverityWarning,
			Category: rules.CategoryGeneral,
		}
		if s := cast.ToString(m["rule"]); s != "" {
			issue.Rule = s
		}
		if v, ok := m["line"]; ok {
			if n := cast.ToInt(v); n > 0 {
				issue.Line = n
			}
		}
		if sv, ok := rules.ValidSeverity(cast.ToString(m["severity"])); ok {
			issue.Severity = sv
		}
		if cat, ok := rules.ValidCategory(cast.ToString(m["category"])); ok {
			issue.Category = cat
		}
		issue.Fix = cast.ToString(m["fix"])

		issues = append(issues, issue)
	}
	return issues
}

// ParseRules parses an extraction response into normalized rule candidates.
// The source document name overrides whatever the model put in the source
// field; identifiers are placeholders until merge time.
func ParseRules(text, source string) []rules.Rule {
	items := ExtractArray(text)
	out := make([]rules.Rule, 0, len(items))
	for _, m := range items {
		statement := strings.TrimSpace(cast.ToString(m["rule"]))
		if statement == "" {
			continue
		}
		out = append(out, rules.Rule{
			ID:           cast.ToString(m["rule_id"]),
			Statement:    statement,
			SuggestedFix: cast.ToString(m["suggested_fix"]),
			Source:       source,
			Category:     rules.ParseCategory(cast.ToString(m["category"])),
			Severity:     rules.ParseSeverity(cast.ToString(m["severity"])),
		})
	}
	return out
}
