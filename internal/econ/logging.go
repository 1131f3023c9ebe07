package econ

import (
	"io"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/logging"
)

var logger = &logging.Logger{PrefixText: "Economic Analysis:", PrefixColor: logging.FgCyan, OmitProcess: true}

// SetLogger sets an optional destination for economic analysis logs.
// When set to nil, logs are disabled.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(format string, args ...any) {
	logger.Logf("", format, args...)
}
