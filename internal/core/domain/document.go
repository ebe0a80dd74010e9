// Package domain contains the core types of rehost: documents, directives and update tasks.
package domain

import (
	"slices"
	"strings"
)

// Document is an SSH client configuration held as an ordered sequence of lines.
// A line is identified by its index.
type Document struct {
	Lines []string
}

// NewDocument splits text into a Document.
func NewDocument(text string) *Document {
	return &Document{Lines: SplitLines(text)}
}

// SplitLines splits text on "\n", "\r\n" and "\r" only. Other control or
// Unicode separators stay inside the line.
// A final line break does not produce a trailing empty line.
func SplitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i])
		if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			i++
		}
		text = text[i+1:]
	}
	return lines
}

// JoinLines joins lines with "\n" and terminates the result with exactly one "\n".
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Text serialises the document.
func (d *Document) Text() string {
	return JoinLines(d.Lines)
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{Lines: slices.Clone(d.Lines)}
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.Lines)
}
