package stato

import (
	"log"
	"os"
)

// Diagnostics is the sink for the engine's warning and error messages.
// It is a side channel for humans; programs should branch on returned
// Status values, not on diagnostic text.
type Diagnostics interface {
	// Warnf reports a non-fatal configuration oddity
	Warnf(format string, args ...any)
	// Errorf reports a defect or a rejected operation
	Errorf(format string, args ...any)
}

// NewLogDiagnostics returns a Diagnostics that writes level-prefixed
// lines through the given logger. Prefix identifies the machine in
// shared logs and may be empty.
func NewLogDiagnostics(logger *log.Logger, prefix string) Diagnostics {
	if prefix != "" {
		prefix = "[" + prefix + "] "
	}
	return &logDiagnostics{logger: logger, prefix: prefix}
}

type logDiagnostics struct {
	logger *log.Logger
	prefix string
}

func (d *logDiagnostics) Warnf(format string, args ...any) {
	d.logger.Printf(d.prefix+"[WARN] "+format, args...)
}

func (d *logDiagnostics) Errorf(format string, args ...any) {
	d.logger.Printf(d.prefix+"[ERROR] "+format, args...)
}

// NopDiagnostics discards all diagnostics
var NopDiagnostics Diagnostics = nopDiagnostics{}

type nopDiagnostics struct{}

func (nopDiagnostics) Warnf(string, ...any)  {}
func (nopDiagnostics) Errorf(string, ...any) {}

func defaultDiagnostics(machineID string) Diagnostics {
	return NewLogDiagnostics(log.New(os.Stderr, "", log.LstdFlags), "stato "+machineID)
}
