// export_test.go exports private functions for white-box testing.
package logger

import "io"

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
	ErrorAttrs          = errorAttrs
)

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	return newLogger(w)
}
