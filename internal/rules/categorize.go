package rules

import "strings"

// The review prompt groups rules into a fixed set of buckets by scanning the
// statement text for keywords. Buckets are checked in priority order and the
// first match wins; anything unmatched lands in general.
var bucketOrder = []Category{
	CategoryNaming,
	CategoryStructure,
	CategorySecurity,
	CategoryEnergy,
}

var bucketKeywords = map[Category][]string{
	CategoryNaming:    {"name", "identifier", "prefix", "hungarian"},
	CategoryStructure: {"structure", "format", "indent", "declaration"},
	CategorySecurity:  {"security", "at ", "address", "access"},
	CategoryEnergy:    {"energy", "optimiz", "performance", "efficiency"},
}

// Bucket assigns a rule statement to one prompt bucket.
func Bucket(statement string) Category {
	text := strings.ToLower(statement)
	for _, cat := range bucketOrder {
		for _, kw := range bucketKeywords[cat] {
			if strings.Contains(text, kw) {
				return cat
			}
		}
	}
	return CategoryGeneral
}

// BucketNames lists the runtime buckets in reporting order.
func BucketNames() []Category {
	return []Category{
		CategoryNaming,
		CategoryStructure,
		CategorySecurity,
		CategoryEnergy,
		CategoryGeneral,
	}
}

// Buckets groups rules by bucket, preserving store order within each bucket.
// Every bucket is present in the result even when empty.
func Buckets(all []Rule) map[Category][]Rule {
	m := make(map[Category][]Rule, 5)
	for _, cat := range BucketNames() {
		m[cat] = nil
	}
	for _, r := range all {
		b := Bucket(r.Statement)
		m[b] = append(m[b], r)
	}
	return m
}
