// Package extractor turns guideline documents into stored coding rules.
//
// The pipeline reads each document, sends its text to the configured model
// with an extraction prompt, parses the returned rule candidates, and merges
// them into the rule store with case-insensitive deduplication and dense
// renumbering.
package extractor
