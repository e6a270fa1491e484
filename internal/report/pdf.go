package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/stdguard/stdguard/internal/review"
)

// Input carries everything a report needs about one completed review.
type Input struct {
	Filename     string
	Code         string
	Issues       []review.Issue
	Score        int
	Grade        string
	RulesChecked int
	Provider     string
	Model        string
}

// Generate writes a PDF audit report into dir and returns the generated
// file name. Names embed a timestamp and a short random suffix so
// concurrent reviews of the same file never collide.
func Generate(dir string, in Input) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(in.Filename), filepath.Ext(in.Filename))
	if base == "" {
		base = "code"
	}
	name := fmt.Sprintf("audit_%s_%s_%s.pdf",
		base,
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8])

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Code Quality Audit Report", false)
	pdf.AddPage()

	writeHeader(pdf, in)
	writeSummary(pdf, in)
	writeSeverityBreakdown(pdf, in.Issues)
	writeIssueTable(pdf, in.Issues)
	writeRecommendations(pdf, in.Score)
	writeFooter(pdf)

	if err := pdf.OutputFileAndClose(filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return name, nil
}

func writeHeader(pdf *fpdf.Fpdf, in Input) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Code Quality Audit Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04:05"), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
}

func writeSummary(pdf *fpdf.Fpdf, in Input) {
	r, g, b := scoreColor(in.Score)
	pdf.SetFillColor(r, g, b)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Score: %d/100   Grade: %s", in.Score, in.Grade), "", 1, "C", true, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	rows := [][2]string{
		{"File", in.Filename},
		{"Issues found", fmt.Sprintf("%d", len(in.Issues))},
		{"Rules checked", fmt.Sprintf("%d", in.RulesChecked)},
		{"Reviewed by", fmt.Sprintf("%s (%s)", in.Provider, in.Model)},
		{"Code size", fmt.Sprintf("%d lines", strings.Count(in.Code, "\n")+1)},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, sanitize(row[1]), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func writeSeverityBreakdown(pdf *fpdf.Fpdf, issues []review.Issue) {
	st := review.CountBySeverity(issues)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Severity Breakdown", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	rows := []struct {
		label  string
		count  int
		impact string
	}{
		{"Critical", st.Critical, "blocks release"},
		{"Error", st.Errors, "must fix"},
		{"Warning", st.Warnings, "should fix"},
		{"Info", st.Info, "consider"},
	}
	for _, row := range rows {
		pdf.CellFormat(30, 7, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", row.count), "1", 0, "C", false, 0, "")
		pdf.CellFormat(0, 7, row.impact, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func writeIssueTable(pdf *fpdf.Fpdf, issues []review.Issue) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Issues", "", 1, "L", false, 0, "")

	if len(issues) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 7, "No issues found.", "", 1, "L", false, 0, "")
		pdf.Ln(4)
		return
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(14, 7, "Line", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, "Severity", "1", 0, "C", true, 0, "")
	pdf.CellFormat(26, 7, "Category", "1", 0, "C", true, 0, "")
	pdf.CellFormat(0, 7, "Message", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, issue := range issues {
		pdf.CellFormat(14, 7, fmt.Sprintf("%d", issue.Line), "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 7, string(issue.Severity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(26, 7, string(issue.Category), "1", 0, "C", false, 0, "")
		pdf.CellFormat(0, 7, sanitize(truncate(issue.Message, 90)), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func writeRecommendations(pdf *fpdf.Fpdf, score int) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Recommendation", "", 1, "L", false, 0, "")

	var text string
	switch {
	case score >= 90:
		text = "Code meets the organization's quality bar. Approve and merge."
	case score >= 80:
		text = "Minor issues remain. Address warnings before the next release."
	case score >= 60:
		text = "Several standards violations. Fix errors before approval."
	default:
		text = "Substantial rework required. Resolve all critical and error findings before resubmitting."
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, text, "", "L", false)
}

func writeFooter(pdf *fpdf.Fpdf) {
	pdf.SetY(-20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, "Generated by stdguard", "", 1, "C", false, 0, "")
}

func scoreColor(score int) (int, int, int) {
	switch {
	case score >= 90:
		return 200, 235, 200
	case score >= 80:
		return 235, 235, 190
	case score >= 60:
		return 245, 220, 180
	default:
		return 245, 200, 200
	}
}

// sanitize keeps the report within the core font's character set.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 32 && r < 127 {
			b.WriteRune(r)
		} else {
			b.WriteRune('?')
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
