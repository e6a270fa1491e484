// Package report renders review results as downloadable PDF audit reports.
package report
