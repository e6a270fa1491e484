package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/stdguard/stdguard/internal/extract"
	"github.com/stdguard/stdguard/internal/providers"
	"github.com/stdguard/stdguard/internal/review"
	"github.com/stdguard/stdguard/internal/rules"
)

// maxDocChars caps how much document text goes into one extraction prompt.
const maxDocChars = 8000

const extractionPrompt = `You are an expert at extracting coding standards and rules from documents.

Analyze the document text below and extract every concrete coding rule, standard, or guideline it states.

For each rule return a JSON object with these fields:
- "rule_id": a short identifier (leave empty if the document does not number its rules)
- "rule": the rule statement, one sentence
- "suggested_fix": how to comply with the rule
- "category": one of naming, structure, security, energy, documentation, safety, performance, general
- "severity": one of critical, error, warning, info

Return ONLY a valid JSON array of these objects. No markdown, no explanations.
If the document contains no rules, return []

DOCUMENT TEXT:
%s`

// FileResult is the outcome of extracting one document.
type FileResult struct {
	Name  string
	Rules []rules.Rule
	Err   error
}

// Pipeline extracts rules from every document in a guide directory and
// merges them into the store.
type Pipeline struct {
	GuideDir string
	Store    *rules.Store
	Provider providers.Generator
	Logger   *zap.Logger
}

// NewPipeline builds a pipeline over one guide directory and store.
func NewPipeline(guideDir string, store *rules.Store, provider providers.Generator, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{GuideDir: guideDir, Store: store, Provider: provider, Logger: logger}
}

// Scan lists the supported documents in the guide directory, sorted by name.
func (p *Pipeline) Scan() ([]string, error) {
	entries, err := os.ReadDir(p.GuideDir)
	if err != nil {
		return nil, fmt.Errorf("reading guide directory %s: %w", p.GuideDir, err)
	}
	var docs []string
	for _, e := range entries {
		if e.IsDir() || !extract.Supported(e.Name()) {
			continue
		}
		docs = append(docs, filepath.Join(p.GuideDir, e.Name()))
	}
	sort.Strings(docs)
	return docs, nil
}

// ExtractFile runs the model over one document and returns the parsed rule
// candidates. Document text beyond the prompt cap is dropped.
func (p *Pipeline) ExtractFile(ctx context.Context, path string) ([]rules.Rule, error) {
	text, err := extract.Text(path)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("no text content in %s", filepath.Base(path))
	}
	if len(text) > maxDocChars {
		cut := maxDocChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	resp, err := p.Provider.Generate(ctx, providers.Request{
		Prompt:      fmt.Sprintf(extractionPrompt, text),
		MaxTokens:   4000,
		Temperature: 0.1,
	})
	if err != nil {
		return nil, fmt.Errorf("extracting rules from %s: %w", filepath.Base(path), err)
	}

	extracted := review.ParseRules(resp.Content, filepath.Base(path))
	p.Logger.Info("document extracted",
		zap.String("file", filepath.Base(path)),
		zap.Int("chars", len(text)),
		zap.Int("rules", len(extracted)))
	return extracted, nil
}

// Run extracts every given document. A failing document is recorded in its
// result and does not abort the rest of the run.
func (p *Pipeline) Run(ctx context.Context, paths []string) []FileResult {
	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		extracted, err := p.ExtractFile(ctx, path)
		if err != nil {
			p.Logger.Warn("document failed", zap.String("file", filepath.Base(path)), zap.Error(err))
		}
		results = append(results, FileResult{Name: filepath.Base(path), Rules: extracted, Err: err})
	}
	return results
}

// Merge folds candidate rules into the store. Duplicates of existing
// statements are dropped unless keepDupes is set; survivors get dense
// sequential identifiers continuing from the highest stored number. Returns
// how many rules were added and the new store size.
func (p *Pipeline) Merge(candidates []rules.Rule, keepDupes bool) (added, total int, err error) {
	existing := p.Store.Load()

	fresh := candidates
	if !keepDupes {
		fresh = rules.Deduplicate(candidates, existing)
	}
	rules.Renumber(fresh, rules.NextRuleNumber(existing))

	merged := append(existing, fresh...)
	if err := p.Store.Save(merged); err != nil {
		return 0, 0, err
	}
	p.Logger.Info("rules merged",
		zap.Int("added", len(fresh)),
		zap.Int("skipped", len(candidates)-len(fresh)),
		zap.Int("total", len(merged)))
	return len(fresh), len(merged), nil
}
