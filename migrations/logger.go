package migrations

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-feed/internal/logger"
)

// gooseLogger routes goose progress output into zerolog instead of the
// standard library log package.
type gooseLogger struct {
	log *logger.Logger
}

func newGooseLogger(log *logger.Logger) *gooseLogger {
	if log == nil {
		log = logger.Nop()
	}
	return &gooseLogger{log: log}
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
