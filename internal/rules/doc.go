// Package rules defines the coding-rule data model, the persisted JSON rule
// store, and the keyword bucketing used to prioritize rules in review
// prompts.
//
// The store file is shared between the extraction tool (its only writer) and
// the review backend (a read-only consumer that loads it once at startup).
package rules
