package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// messager is implemented by zerr errors and reports the message of one link
// without its causes.
type messager interface {
	Message() string
}

// metadataer is implemented by zerr errors carrying key/value context.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain prepared for display.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks err from the outermost link inward. A link that is
// not a zerr error ends the walk with its full Error() text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if md, ok := current.(metadataer); ok {
			entry.Metadata = md.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as
//
//	Error: outer
//	       key: value
//
//	  Caused by:
//	    → inner
func formatErrorEntries(entries []ErrorEntry) string {
	lines := make([]string, 0, len(entries)*2)

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		indent := "       "
		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			indent = "      "
			lines = append(lines, "    → "+msgLines[0])
		}

		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}

// errorAttrs flattens err into slog key/value pairs: the full message under
// "error" followed by the metadata of every link in key order. An outer link
// wins when two links use the same key.
func errorAttrs(err error) []any {
	entries := collectErrorEntries(err)

	meta := make(map[string]any)
	for i := len(entries) - 1; i >= 0; i-- {
		maps.Copy(meta, entries[i].Metadata)
	}
	for _, reserved := range []string{"error", slog.TimeKey, slog.LevelKey, slog.MessageKey} {
		delete(meta, reserved)
	}

	args := make([]any, 0, 2+2*len(meta))
	args = append(args, "error", err.Error())
	for _, key := range slices.Sorted(maps.Keys(meta)) {
		args = append(args, key, meta[key])
	}
	return args
}
