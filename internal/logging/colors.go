package logging

// Basic ANSI color codes for log prefixes. Report rendering uses lipgloss
// styles from internal/ui instead.
const (
	Reset     = "\033[0m"
	FgCyan    = "\033[36m"
	FgGreen   = "\033[32m"
	FgMagenta = "\033[35m"
	FgYellow  = "\033[33m"
	FgRed     = "\033[31m"
)

// color wraps a string with the given ANSI code.
func color(s string, code string) string {
	return code + s + Reset
}
