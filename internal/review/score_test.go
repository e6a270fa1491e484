package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stdguard/stdguard/internal/rules"
)

func issuesOf(sev rules.Severity, n int) []Issue {
	out := make([]Issue, n)
	for i := range out {
		out[i] = Issue{Rule: "QUALITY", Message: "m", Line: 1, Severity: sev}
	}
	return out
}

func TestScoreEmpty(t *testing.T) {
	score, grade := Score(nil)
	assert.Equal(t, 100, score)
	assert.Equal(t, "A+", grade)
}

func TestScoreDeductions(t *testing.T) {
	tests := []struct {
		name      string
		issues    []Issue
		wantScore int
		wantGrade string
	}{
		{"one info", issuesOf(rules.SeverityInfo, 1), 99, "A+"},
		{"one warning", issuesOf(rules.SeverityWarning, 1), 97, "A+"},
		{"one error", issuesOf(rules.SeverityError, 1), 94, "A"},
		{"one critical", issuesOf(rules.SeverityCritical, 1), 88, "A-"},
		{"grade boundary 95", issuesOf(rules.SeverityInfo, 5), 95, "A+"},
		{"grade boundary 50", issuesOf(rules.SeverityInfo, 50), 50, "D"},
		{"grade boundary 49", issuesOf(rules.SeverityInfo, 51), 49, "F"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, grade := Score(tt.issues)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantGrade, grade)
		})
	}
}

func TestScoreFloorWithoutCriticals(t *testing.T) {
	// 31 warnings would deduct 93 points. No criticals, so the score is
	// floored at 10.
	score, grade := Score(issuesOf(rules.SeverityWarning, 31))
	assert.Equal(t, 10, score)
	assert.Equal(t, "F", grade)
}

func TestScoreNoFloorWithCriticals(t *testing.T) {
	score, grade := Score(issuesOf(rules.SeverityCritical, 9))
	assert.Equal(t, 0, score)
	assert.Equal(t, "F", grade)
}

func TestCountBySeverity(t *testing.T) {
	issues := append(issuesOf(rules.SeverityCritical, 1), issuesOf(rules.SeverityError, 2)...)
	issues = append(issues, issuesOf(rules.SeverityWarning, 3)...)
	issues = append(issues, issuesOf(rules.SeverityInfo, 4)...)

	st := CountBySeverity(issues)
	assert.Equal(t, Statistics{Critical: 1, Errors: 2, Warnings: 3, Info: 4}, st)
}
