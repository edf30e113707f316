// +build !logless

// Package logger exposes the process-wide structured logger used at the
// boundaries of the integrator (Integrate, the per-step Alpha advance).
// Kernels in vec/mat/rotation/heavytop never import it directly.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger adds a Warning alias over zerolog.Logger so call sites can use
// the Debug/Info/Warning vocabulary spec.md §6 asks for.
type Logger struct {
	zerolog.Logger
}

func (l Logger) Warning() *zerolog.Event {
	return l.Warn()
}

var Log = Logger{zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Caller().Logger()}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}
