// Package extract pulls plain text out of guideline documents.
//
// Supported formats: PDF, DOCX, PPTX, and plain text (.txt, .md). OOXML
// containers are read directly as zip archives; only the visible text runs
// are kept, one paragraph per line.
package extract
