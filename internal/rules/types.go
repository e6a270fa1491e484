package rules

import "strings"

// Category classifies what a rule is about.
type Category string

const (
	CategoryNaming        Category = "naming"
	CategoryStructure     Category = "structure"
	CategorySecurity      Category = "security"
	CategoryEnergy        Category = "energy"
	CategoryDocumentation Category = "documentation"
	CategorySafety        Category = "safety"
	CategoryPerformance   Category = "performance"
	CategoryGeneral       Category = "general"
)

// Severity is the ordered enum driving the scoring weight of a violation.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityError    Severity = "error"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// ValidCategory maps s onto the category enum.
func ValidCategory(s string) (Category, bool) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryNaming, CategoryStructure, CategorySecurity, CategoryEnergy,
		CategoryDocumentation, CategorySafety, CategoryPerformance, CategoryGeneral:
		return c, true
	default:
		return "", false
	}
}

// ParseCategory maps s onto the category enum, defaulting to general.
func ParseCategory(s string) Category {
	if c, ok := ValidCategory(s); ok {
		return c
	}
	return CategoryGeneral
}

// ValidSeverity maps s onto the severity enum.
func ValidSeverity(s string) (Severity, bool) {
	switch v := Severity(strings.ToLower(strings.TrimSpace(s))); v {
	case SeverityCritical, SeverityError, SeverityWarning, SeverityInfo:
		return v, true
	default:
		return "", false
	}
}

// ParseSeverity maps s onto the severity enum, defaulting to info.
func ParseSeverity(s string) Severity {
	if v, ok := ValidSeverity(s); ok {
		return v
	}
	return SeverityInfo
}

// Rule is one coding standard extracted from a source document. JSON field
// names match the on-disk store format.
type Rule struct {
	ID           string   `json:"rule_id"`
	Statement    string   `json:"rule"`
	SuggestedFix string   `json:"suggested_fix"`
	Source       string   `json:"source"`
	Category     Category `json:"category"`
	Severity     Severity `json:"severity"`
}
