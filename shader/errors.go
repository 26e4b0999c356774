package shader

import (
	"errors"
	"fmt"
)

var (
	ErrSourceNotFound = errors.New("shader: source not found")
	ErrEmptySource    = errors.New("shader: source is empty")
)

// The maximum number of diagnostic bytes kept from a compile or link log.
const MaxDiagnosticLen = 512

// The pipeline construction phase where a build failed.
type Phase uint8

const (
	PhaseLoad Phase = iota
	PhaseCompile
	PhaseLink
)

func (p Phase) String() string {
	switch p {
	case PhaseLoad:
		return "load"
	case PhaseCompile:
		return "compile"
	case PhaseLink:
		return "link"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// BuildError describes the first failure encountered while building a pipeline.
type BuildError struct {
	Program string

	// Only meaningful for load and compile failures.
	Stage Stage

	Phase Phase

	// Source location; empty for link errors.
	Path string

	// Diagnostic text reported by the driver, at most MaxDiagnosticLen bytes.
	Log string

	// Underlying error for load failures.
	Err error
}

func (e *BuildError) Error() string {
	switch e.Phase {
	case PhaseLoad:
		return fmt.Sprintf("shader: could not load %s source %q for program %s: %v", e.Stage, e.Path, e.Program, e.Err)
	case PhaseLink:
		return fmt.Sprintf("shader: could not link program %s: %s", e.Program, e.Log)
	default:
		return fmt.Sprintf("shader: could not compile %s source %q for program %s: %s", e.Stage, e.Path, e.Program, e.Log)
	}
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Trim a driver log to MaxDiagnosticLen bytes without trailing NULs or whitespace.
func truncateDiagnostic(log string) string {
	if len(log) > MaxDiagnosticLen {
		log = log[:MaxDiagnosticLen]
	}
	for len(log) > 0 {
		switch log[len(log)-1] {
		case 0, ' ', '\n', '\r', '\t':
			log = log[:len(log)-1]
			continue
		}
		break
	}
	return log
}
