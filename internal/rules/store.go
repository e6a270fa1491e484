package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// storeFile is the persisted shape of the rule store.
type storeFile struct {
	Rules []Rule `json:"rules"`
}

// Store reads and writes the rule store file. The review backend only ever
// reads it; the extraction tool is the single writer.
type Store struct {
	path string
}

// NewStore returns a store bound to path. The file does not need to exist.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the store file location.
func (s *Store) Path() string { return s.path }

// Load returns the persisted rules. A missing or malformed store reads as
// empty; extraction always rewrites the full file.
func (s *Store) Load() []Rule {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var f storeFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	return f.Rules
}

// Save overwrites the store with the full collection, pretty-printed with
// non-ASCII text left unescaped. The write goes through a temp file and a
// rename so readers never observe a partial store.
func (s *Store) Save(rules []Rule) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".rules-*.json")
	if err != nil {
		return fmt.Errorf("creating temp store: %w", err)
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(storeFile{Rules: rules}); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encoding store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}

// NextRuleNumber scans existing identifiers for digit runs and returns
// max + 1, or 1 when no rule carries a numeric suffix.
func NextRuleNumber(existing []Rule) int {
	highest := 0
	for _, r := range existing {
		var digits strings.Builder
		for _, c := range r.ID {
			if c >= '0' && c <= '9' {
				digits.WriteRune(c)
			}
		}
		if digits.Len() == 0 {
			continue
		}
		if n, err := strconv.Atoi(digits.String()); err == nil && n > highest {
			highest = n
		}
	}
	return highest + 1
}

// Renumber assigns sequential identifiers in input order, starting at start.
func Renumber(rules []Rule, start int) []Rule {
	for i := range rules {
		rules[i].ID = fmt.Sprintf("R%03d", start+i)
	}
	return rules
}

// Deduplicate drops new rules whose statement matches an existing rule's
// statement case-insensitively. Paraphrases of the same idea are not
// detected; only exact case-folded matches count.
func Deduplicate(newRules, existing []Rule) []Rule {
	seen := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		seen[strings.ToLower(r.Statement)] = struct{}{}
	}
	kept := make([]Rule, 0, len(newRules))
	for _, r := range newRules {
		if _, dup := seen[strings.ToLower(r.Statement)]; dup {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
