package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"jscc/compiler"
	"jscc/lexer"
	"jscc/parser"
	"tinygo.org/x/go-llvm"
)

// Sentinel errors marking which pipeline stage failed. Callers match with
// errors.Is; the wrapped cause carries the backend or process diagnostic.
var (
	ErrParse            = errors.New("parse failed")
	ErrVerify           = errors.New("module verification failed")
	ErrTargetResolution = errors.New("target resolution failed")
	ErrObjectEmission   = errors.New("object emission failed")
	ErrLink             = errors.New("link failed")
)

// Options configures one compilation.
type Options struct {
	InputFile  string
	OutputFile string // defaults to InputFile with a .o extension
	Target     string // target triple; defaults to the host triple
	Linker     string // optional; when set, invoked on the emitted object
	Verbose    bool   // dump the lowered IR to stdout
}

// objectPath resolves where the object file goes: the explicit output path
// if given, otherwise the input path with its extension replaced by .o.
func (o *Options) objectPath() string {
	if o.OutputFile != "" {
		return o.OutputFile
	}
	ext := filepath.Ext(o.InputFile)
	return strings.TrimSuffix(o.InputFile, ext) + ".o"
}

// Compile runs the whole pipeline for one script: read, parse, lower,
// terminate, verify, select target, emit object, optionally link.
// Verification failure aborts before any object bytes are written.
func Compile(opts Options) error {
	source, err := os.ReadFile(opts.InputFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.InputFile, err)
	}

	l := lexer.New(opts.InputFile, string(source))
	p := parser.New(l)
	program := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, cerr := range errs {
			msgs[i] = cerr.Error()
		}
		return fmt.Errorf("%w:\n%s", ErrParse, strings.Join(msgs, "\n"))
	}

	moduleName := strings.TrimSuffix(filepath.Base(opts.InputFile), filepath.Ext(opts.InputFile))
	c := compiler.NewCompiler(moduleName)
	defer c.Dispose()

	if cerr := c.CompileModule(program); cerr != nil {
		return cerr
	}
	c.Finish()

	if opts.Verbose {
		fmt.Print(c.GenerateIR())
	}

	if err := c.Verify(); err != nil {
		return fmt.Errorf("%w: %v", ErrVerify, err)
	}

	return emitAndLink(c, opts)
}

// emitAndLink selects the target, writes the object file, and runs the
// optional linker. The emit-and-link window is guarded by a file lock so
// concurrent invocations against the same output do not interleave: the
// linker rewrites the object path in place, and a half-linked file must
// never be visible to another process.
func emitAndLink(c *compiler.Compiler, opts Options) error {
	llvm.InitializeAllTargetInfos()
	llvm.InitializeAllTargets()
	llvm.InitializeAllTargetMCs()
	llvm.InitializeAllAsmPrinters()
	llvm.InitializeAllAsmParsers()

	triple := opts.Target
	if triple == "" {
		triple = llvm.DefaultTargetTriple()
	}
	target, err := llvm.GetTargetFromTriple(triple)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrTargetResolution, triple, err)
	}
	tm := target.CreateTargetMachine(triple, "generic", "",
		llvm.CodeGenLevelDefault, llvm.RelocDefault, llvm.CodeModelDefault)
	defer tm.Dispose()

	c.Ctx.Module.SetTarget(triple)

	objPath := opts.objectPath()

	lock := flock.New(objPath + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire output lock: %w", err)
	}
	defer lock.Unlock()

	buf, err := tm.EmitToMemoryBuffer(c.Ctx.Module, llvm.ObjectFile)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrObjectEmission, err)
	}
	defer buf.Dispose()
	if err := os.WriteFile(objPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrObjectEmission, objPath, err)
	}

	if opts.Linker == "" {
		return nil
	}
	// The linker output overwrites the object file in place.
	cmd := exec.Command(opts.Linker, objPath, "-o", objPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrLink, opts.Linker, err)
	}
	return nil
}
