package review

import "github.com/stdguard/stdguard/internal/rules"

// Severity weights for score deductions.
const (
	weightCritical = 12
	weightError    = 6
	weightWarning  = 3
	weightInfo     = 1
)

// minNonCriticalScore floors the score for submissions that are noisy but
// carry no critical issue.
const minNonCriticalScore = 10

// CountBySeverity tallies issues per severity level.
func CountBySeverity(issues []Issue) Statistics {
	var st Statistics
	for _, i := range issues {
		switch i.Severity {
		case rules.SeverityCritical:
			st.Critical++
		case rules.SeverityError:
			st.Errors++
		case rules.SeverityWarning:
			st.Warnings++
		case rules.SeverityInfo:
			st.Info++
		}
	}
	return st
}

// Score computes the 0-100 quality score and letter grade for a set of
// issues. It is pure and deterministic; an empty list scores a perfect
// (100, "A+").
func Score(issues []Issue) (int, string) {
	if len(issues) == 0 {
		return 100, "A+"
	}

	st := CountBySeverity(issues)
	deductions := st.Critical*weightCritical +
		st.Errors*weightError +
		st.Warnings*weightWarning +
		st.Info*weightInfo

	score := 100 - deductions
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if score < minNonCriticalScore && st.Critical == 0 {
		score = minNonCriticalScore
	}

	return score, gradeFor(score)
}

// gradeFor maps a score onto a letter grade. Boundaries are closed on the
// lower end: 95 is an A+, 94 an A.
func gradeFor(score int) string {
	switch {
	case score >= 95:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 85:
		return "A-"
	case score >= 80:
		return "B+"
	case score >= 75:
		return "B"
	case score >= 70:
		return "B-"
	case score >= 65:
		return "C+"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}
