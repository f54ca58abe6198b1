// Package docsource resolves the plain text of a submitted document from
// either an inline value or a file on disk. PDF-to-text conversion happens
// upstream; this package only hands the already-extracted text to the
// analysis pipeline, failing early when a document is unreadable so the
// pipeline is never run on a partial set.
package docsource

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a document's text comes from.
type Source struct {
	// Name is used in error messages to identify the document.
	Name string
	// Text is the inline document text provided via configuration.
	Text string
	// File points to a text file with the document content. When set it
	// takes precedence over Text.
	File string
}

// Load returns the resolved, trimmed document text. An error is returned
// when neither File nor Text yield non-empty content.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "document"
	}

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		src.Text = string(data)
	}

	text := strings.TrimSpace(src.Text)
	if text == "" {
		if file != "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return "", fmt.Errorf("%s text is not provided", name)
	}

	return text, nil
}
