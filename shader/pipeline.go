package shader

import (
	"fmt"

	"github.com/achilleasa/gl-pathtrace/log"
)

// A programmable pipeline stage.
type Stage uint8

const (
	Compute Stage = iota
	Vertex
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Compute:
		return "compute"
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// The Backend interface exposes the driver calls needed to turn source text
// into linked programs. Handles are opaque to the builder.
type Backend interface {
	// Compile a unit for the given stage. The returned handle is valid
	// (and must be deleted) even when compilation fails.
	CompileUnit(stage Stage, source string) (unit uint32, ok bool)

	// Fetch up to maxLen bytes of the unit compile log.
	UnitLog(unit uint32, maxLen int) string

	// Release a compiled unit.
	DeleteUnit(unit uint32)

	// Link units into a program. The returned handle is valid (and must be
	// deleted) even when linking fails.
	LinkProgram(units []uint32) (program uint32, ok bool)

	// Fetch up to maxLen bytes of the program link log.
	ProgramLog(program uint32, maxLen int) string

	// Release a linked program.
	DeleteProgram(program uint32)
}

// Locations of the sources for each pipeline stage.
type Sources struct {
	Compute  string
	Vertex   string
	Fragment string
}

// The source file names used when no overrides are given.
var DefaultSources = Sources{
	Compute:  "compute.glsl",
	Vertex:   "vertex.glsl",
	Fragment: "frag.glsl",
}

// A linked, immutable program.
type Program struct {
	Name   string
	Handle uint32
}

// The compute program that writes the accumulation image and the display
// program that presents it.
type Pipeline struct {
	Compute Program
	Display Program

	backend Backend
}

// Delete both programs. Release is safe to call more than once.
func (p *Pipeline) Release() {
	if p == nil || p.backend == nil {
		return
	}
	p.backend.DeleteProgram(p.Compute.Handle)
	p.backend.DeleteProgram(p.Display.Handle)
	p.backend = nil
}

// Builder compiles and links pipelines. Any failure aborts the build and
// releases every handle created so far.
type Builder struct {
	backend Backend
	loader  Loader
	logger  log.Logger
}

// Create a pipeline builder.
func NewBuilder(backend Backend, loader Loader) *Builder {
	return &Builder{
		backend: backend,
		loader:  loader,
		logger:  log.New("shader"),
	}
}

// Tracks handles created during a build so they can be released on any exit path.
type buildScope struct {
	backend  Backend
	units    []uint32
	programs []uint32
}

func (s *buildScope) releaseUnits() {
	for _, unit := range s.units {
		s.backend.DeleteUnit(unit)
	}
	s.units = nil
}

func (s *buildScope) releaseAll() {
	s.releaseUnits()
	for _, program := range s.programs {
		s.backend.DeleteProgram(program)
	}
	s.programs = nil
}

// Build the compute and display programs from the given sources.
func (b *Builder) Build(sources Sources) (pipeline *Pipeline, err error) {
	scope := &buildScope{backend: b.backend}
	defer func() {
		if err != nil {
			scope.releaseAll()
		}
	}()

	vs, err := b.compile(scope, "display", Vertex, sources.Vertex)
	if err != nil {
		return nil, err
	}
	fs, err := b.compile(scope, "display", Fragment, sources.Fragment)
	if err != nil {
		return nil, err
	}
	cs, err := b.compile(scope, "compute", Compute, sources.Compute)
	if err != nil {
		return nil, err
	}

	computeProg, err := b.link(scope, "compute", cs)
	if err != nil {
		return nil, err
	}
	displayProg, err := b.link(scope, "display", vs, fs)
	if err != nil {
		return nil, err
	}

	// Units are not needed once both programs are linked
	scope.releaseUnits()

	b.logger.Infof("built compute program %d and display program %d", computeProg, displayProg)
	return &Pipeline{
		Compute: Program{Name: "compute", Handle: computeProg},
		Display: Program{Name: "display", Handle: displayProg},
		backend: b.backend,
	}, nil
}

func (b *Builder) compile(scope *buildScope, program string, stage Stage, path string) (uint32, error) {
	source, err := b.loader.Load(path)
	if err == nil && len(source) == 0 {
		err = ErrEmptySource
	}
	if err != nil {
		return 0, &BuildError{Program: program, Stage: stage, Phase: PhaseLoad, Path: path, Err: err}
	}
	b.logger.Debugf("compiling %s source %q (%d bytes)", stage, path, len(source))

	unit, ok := b.backend.CompileUnit(stage, source)
	scope.units = append(scope.units, unit)
	if !ok {
		return 0, &BuildError{
			Program: program,
			Stage:   stage,
			Phase:   PhaseCompile,
			Path:    path,
			Log:     truncateDiagnostic(b.backend.UnitLog(unit, MaxDiagnosticLen)),
		}
	}
	return unit, nil
}

func (b *Builder) link(scope *buildScope, program string, units ...uint32) (uint32, error) {
	handle, ok := b.backend.LinkProgram(units)
	scope.programs = append(scope.programs, handle)
	if !ok {
		return 0, &BuildError{
			Program: program,
			Phase:   PhaseLink,
			Log:     truncateDiagnostic(b.backend.ProgramLog(handle, MaxDiagnosticLen)),
		}
	}
	return handle, nil
}
