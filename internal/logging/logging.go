package logging

import (
	"fmt"
	"io"
	"strings"
)

// Logger is a tiny opt-in logger used across internal packages.
// When Writer is nil, logging is disabled.
//
// The output format is:
//
//	<ColoredPrefix> process=<processID> <formattedMessage>\n
//
// where <processID> is trimmed and defaults to "(unknown)".
type Logger struct {
	Writer io.Writer

	PrefixText  string
	PrefixColor string

	// OmitProcess controls whether the process ID field is written.
	// When false (default), output includes: "process=<id>".
	OmitProcess bool
}

func (l *Logger) SetWriter(w io.Writer) { l.Writer = w }

func (l *Logger) Enabled() bool { return l != nil && l.Writer != nil }

func (l *Logger) Logf(processID string, format string, args ...any) {
	if l == nil || l.Writer == nil {
		return
	}
	prefix := l.PrefixText
	if prefix == "" {
		prefix = "Log:"
	}
	if l.PrefixColor != "" {
		prefix = color(prefix, l.PrefixColor)
	}
	msg := fmt.Sprintf(format, args...)
	if l.OmitProcess {
		fmt.Fprintf(l.Writer, "%s %s\n", prefix, msg)
		return
	}

	p := strings.TrimSpace(processID)
	if p == "" {
		p = "(unknown)"
	}
	fmt.Fprintf(l.Writer, "%s process=%s %s\n", prefix, p, msg)
}
