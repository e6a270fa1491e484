package review

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/stdguard/stdguard/internal/providers"
	"github.com/stdguard/stdguard/internal/rules"
)

const (
	generateMaxTokens   = 4000
	generateTemperature = 0.1

	// Rewrites shorter than this are treated as a failed extraction and the
	// original code is returned unchanged.
	minFixLength = 5

	// How many stored rules are scanned when matching issue rule IDs for a
	// fix request.
	fixRuleScanLimit = 50
)

// ErrEmptyCode is returned when a review is requested for blank input.
var ErrEmptyCode = errors.New("no code provided")

// Engine runs reviews against a fixed rule set and a single model provider.
// The rule set is categorized once at construction and never mutated, so an
// Engine is safe for concurrent use.
type Engine struct {
	rules    []rules.Rule
	buckets  map[rules.Category][]rules.Rule
	provider providers.Generator
	logger   *zap.Logger
}

// NewEngine builds an engine over the given rules and provider.
func NewEngine(ruleSet []rules.Rule, provider providers.Generator, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		rules:    ruleSet,
		buckets:  rules.Buckets(ruleSet),
		provider: provider,
		logger:   logger,
	}
}

// Rules returns the full rule set the engine was loaded with.
func (e *Engine) Rules() []rules.Rule { return e.rules }

// RulesInBucket returns the rules assigned to one prompt bucket.
func (e *Engine) RulesInBucket(c rules.Category) []rules.Rule { return e.buckets[c] }

// BucketSizes reports how many rules each prompt bucket holds.
func (e *Engine) BucketSizes() map[rules.Category]int {
	sizes := make(map[rules.Category]int, len(e.buckets))
	for c, rs := range e.buckets {
		sizes[c] = len(rs)
	}
	return sizes
}

// Provider exposes the engine's model provider.
func (e *Engine) Provider() providers.Generator { return e.provider }

// Analyze reviews one submission and returns the scored result. A provider
// failure is returned as an error, never as an empty clean review.
func (e *Engine) Analyze(ctx context.Context, code, filename string) (*Analysis, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyCode
	}

	ext := fileExtension(filename)
	rulesSection := rules.FormatForPrompt(e.buckets, len(e.rules))

	resp, err := e.provider.Generate(ctx, providers.Request{
		System:      AnalyzeSystemPrompt(rulesSection, ext),
		Prompt:      AnalyzeUserPrompt(code, ext),
		MaxTokens:   generateMaxTokens,
		Temperature: generateTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	issues := ParseIssues(resp.Content)
	score, grade := Score(issues)
	e.logger.Info("analysis complete",
		zap.String("file", filename),
		zap.String("file_type", ext),
		zap.Int("issues", len(issues)),
		zap.Int("score", score),
		zap.String("grade", grade))

	return &Analysis{
		Issues:       issues,
		Score:        score,
		Grade:        grade,
		FileType:     ext,
		RulesChecked: len(e.rules),
		Stats:        CountBySeverity(issues),
	}, nil
}

// Fix asks the provider to rewrite code so it passes review. If the response
// does not contain a plausible code block the original code comes back
// unchanged.
func (e *Engine) Fix(ctx context.Context, code, errText string, issues []Issue) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyCode
	}

	ext := "py"
	if strings.Contains(strings.ToUpper(code), "VAR") {
		ext = "st"
	}

	resp, err := e.provider.Generate(ctx, providers.Request{
		System:      FixSystemPrompt(ext),
		Prompt:      FixUserPrompt(code, errText, issues, e.relevantRules(issues), ext),
		MaxTokens:   generateMaxTokens,
		Temperature: generateTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("fix: %w", err)
	}

	fixed := ExtractCode(resp.Content, ext)
	if len(strings.TrimSpace(fixed)) < minFixLength {
		e.logger.Warn("fix response too short, keeping original",
			zap.Int("extracted_len", len(fixed)))
		return code, nil
	}
	return fixed, nil
}

// Chat answers a free-form question about a prior review.
func (e *Engine) Chat(ctx context.Context, chatContext, message string) (string, error) {
	resp, err := e.provider.Generate(ctx, providers.Request{
		System:      ChatSystemPrompt(),
		Prompt:      ChatUserPrompt(chatContext, message),
		MaxTokens:   generateMaxTokens,
		Temperature: generateTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return resp.Content, nil
}

// relevantRules renders stored rules whose IDs appear in the issue list, so
// the fix prompt can quote the organization's own wording.
func (e *Engine) relevantRules(issues []Issue) string {
	if len(issues) == 0 || len(e.rules) == 0 {
		return ""
	}

	wanted := make(map[string]bool, len(issues))
	for _, i := range issues {
		if i.Rule != "" {
			wanted[i.Rule] = true
		}
	}

	scan := e.rules
	if len(scan) > fixRuleScanLimit {
		scan = scan[:fixRuleScanLimit]
	}

	var b strings.Builder
	for _, r := range scan {
		if !wanted[r.ID] {
			continue
		}
		fmt.Fprintf(&b, "[%s] %s\n", r.ID, r.Statement)
		if r.SuggestedFix != "" {
			fmt.Fprintf(&b, "  Fix: %s\n", r.SuggestedFix)
		}
	}
	return b.String()
}

// fileExtension derives the language extension from a filename, defaulting
// to Python when the name carries none.
func fileExtension(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return "py"
	}
	return strings.ToLower(ext)
}
