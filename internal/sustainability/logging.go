package sustainability

import (
	"io"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/logging"
)

var logger = &logging.Logger{PrefixText: "Sustainability Score:", PrefixColor: logging.FgYellow, OmitProcess: true}

// SetLogger sets an optional destination for scorer logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(format string, args ...any) {
	logger.Logf("", format, args...)
}
