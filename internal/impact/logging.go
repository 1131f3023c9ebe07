package impact

import (
	"io"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/logging"
)

var logger = &logging.Logger{PrefixText: "Environmental Analysis:", PrefixColor: logging.FgGreen, OmitProcess: true}

// SetLogger sets an optional destination for environmental analysis logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(format string, args ...any) {
	logger.Logf("", format, args...)
}
