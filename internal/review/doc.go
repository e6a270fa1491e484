// Package review implements the code-review pipeline: prompt construction,
// best-effort parsing of model output, weighted scoring, and the per-request
// Engine that ties them to a provider.
package review
