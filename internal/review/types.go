package review

import "github.com/stdguard/stdguard/internal/rules"

// Issue is one detected violation in a reviewed submission. Issues are
// request-scoped and never persisted; the rule reference is free text and
// does not have to match a stored rule identifier.
type Issue struct {
	Rule     string         `json:"rule"`
	Message  string         `json:"message"`
	Line     int            `json:"line"`
	Severity rules.Severity `json:"severity"`
	Fix      string         `json:"fix"`
	Category rules.Category `json:"category"`
}

// Statistics counts issues per severity level.
type Statistics struct {
	Critical int `json:"critical"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Analysis is the result of one review pass.
type Analysis struct {
	Issues       []Issue
	Score        int
	Grade        string
	FileType     string
	RulesChecked int
	Stats        Statistics
}
