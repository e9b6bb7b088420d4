// Package diagnostics collects positioned compiler diagnostics.
//
// The engine is fire-and-continue: reporting never stops the caller, so a
// single front-end pass can surface every error in one run. Later phases
// read the ordered diagnostic list through All.
package diagnostics

import (
	"fmt"
	"os"
)

// Severity levels for diagnostics
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	default:
		return "INFO"
	}
}

// Diagnostic is one reported message with its source position.
// Line and Column are 1-based; zero values mean "no position".
type Diagnostic struct {
	Severity Severity
	Message  string
	Line     int
	Column   int
	File     string
}

func (d Diagnostic) String() string {
	if d.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Line, d.Column, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// DiagnosticEngine collects diagnostics in report order.
type DiagnosticEngine struct {
	diagnostics []Diagnostic
	errorCount  int
	warnCount   int
}

// NewDiagnosticEngine creates a new diagnostic engine
func NewDiagnosticEngine() *DiagnosticEngine {
	return &DiagnosticEngine{}
}

func (e *DiagnosticEngine) report(d Diagnostic) {
	e.diagnostics = append(e.diagnostics, d)
	switch d.Severity {
	case SeverityError:
		e.errorCount++
	case SeverityWarning:
		e.warnCount++
	}
}

// Error reports an error with no source position.
func (e *DiagnosticEngine) Error(message string) {
	e.report(Diagnostic{Severity: SeverityError, Message: message})
}

// ErrorAt reports an error at a specific source location.
func (e *DiagnosticEngine) ErrorAt(file string, line, column int, message string) {
	e.report(Diagnostic{
		Severity: SeverityError,
		Message:  message,
		File:     file,
		Line:     line,
		Column:   column,
	})
}

// Warning reports a warning with no source position.
func (e *DiagnosticEngine) Warning(message string) {
	e.report(Diagnostic{Severity: SeverityWarning, Message: message})
}

// WarningAt reports a warning at a specific source location.
func (e *DiagnosticEngine) WarningAt(file string, line, column int, message string) {
	e.report(Diagnostic{
		Severity: SeverityWarning,
		Message:  message,
		File:     file,
		Line:     line,
		Column:   column,
	})
}

// HasErrors returns true if any errors were reported.
func (e *DiagnosticEngine) HasErrors() bool {
	return e.errorCount > 0
}

// ErrorCount returns the number of errors reported.
func (e *DiagnosticEngine) ErrorCount() int {
	return e.errorCount
}

// WarningCount returns the number of warnings reported.
func (e *DiagnosticEngine) WarningCount() int {
	return e.warnCount
}

// All returns the diagnostics in the order they were reported.
func (e *DiagnosticEngine) All() []Diagnostic {
	return e.diagnostics
}

// Print writes all diagnostics to stderr.
func (e *DiagnosticEngine) Print() {
	for _, d := range e.diagnostics {
		fmt.Fprintln(os.Stderr, d)
	}
}
