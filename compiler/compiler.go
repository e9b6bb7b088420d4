package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/minic-lang/core-compiler/ast"
	"github.com/minic-lang/core-compiler/config"
	"github.com/minic-lang/core-compiler/lexer"
	"github.com/minic-lang/core-compiler/parser"
	"github.com/minic-lang/core-compiler/sema"
)

// Compiler runs the MiniC front end over one compilation unit at a time.
type Compiler struct {
	cfg    *config.Config
	logger *Logger
}

// NewCompiler creates a compiler configured by cfg. A nil cfg uses the
// defaults.
func NewCompiler(cfg *config.Config) *Compiler {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := NewLogger("[minic]")
	if level, err := ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return &Compiler{cfg: cfg, logger: logger}
}

// ParseFile scans and parses a source file without resolving names.
func (c *Compiler) ParseFile(filename string) (*ast.Program, *Context, error) {
	source, err := c.readSource(filename)
	if err != nil {
		return nil, nil, err
	}
	return c.ParseString(filename, source)
}

// ParseString scans and parses source held in memory. The name is used in
// diagnostics only.
func (c *Compiler) ParseString(name, source string) (*ast.Program, *Context, error) {
	ctx := NewContext()

	c.logger.Debug("Lexing and parsing: %s", name)
	p := parser.New(lexer.New(source), name, ctx.Diagnostics)
	prog := p.ParseProgram()

	if ctx.Diagnostics.HasErrors() {
		return prog, ctx, fmt.Errorf("parsing failed with %d error(s) in %s",
			ctx.Diagnostics.ErrorCount(), name)
	}
	return prog, ctx, nil
}

// CheckFile scans, parses, and name-resolves a source file. The returned
// program is annotated with resolved symbols; the context carries the
// diagnostics and the populated global symbol table. The error summarizes
// failure, with the individual messages in the context's diagnostics.
func (c *Compiler) CheckFile(filename string) (*ast.Program, *Context, error) {
	source, err := c.readSource(filename)
	if err != nil {
		return nil, nil, err
	}
	return c.CheckString(filename, source)
}

// CheckString runs the full front end over source held in memory.
func (c *Compiler) CheckString(name, source string) (*ast.Program, *Context, error) {
	prog, ctx, err := c.ParseString(name, source)
	if err != nil {
		// Name resolution on a broken tree would only pile confusing
		// errors on top of the syntax ones.
		return prog, ctx, err
	}

	c.logger.Debug("Resolving names: %s", name)
	r := sema.NewResolver(name, ctx.Diagnostics)
	if err := r.Resolve(prog); err != nil {
		c.logger.Error("Internal resolver error in '%s': %v", name, err)
		return prog, ctx, fmt.Errorf("internal error: %w", err)
	}
	ctx.Table = r.Table()

	if ctx.Diagnostics.HasErrors() {
		return prog, ctx, fmt.Errorf("checking failed with %d error(s) in %s",
			ctx.Diagnostics.ErrorCount(), name)
	}

	c.logger.Info("Successfully checked: %s", name)
	return prog, ctx, nil
}

// Config returns the active configuration.
func (c *Compiler) Config() *config.Config {
	return c.cfg
}

func (c *Compiler) readSource(filename string) (string, error) {
	absPath, err := filepath.Abs(filename)
	if err != nil {
		c.logger.Error("Failed to resolve path '%s': %v", filename, err)
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	source, err := os.ReadFile(absPath)
	if err != nil {
		c.logger.Error("Failed to read file '%s': %v", filename, err)
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(source), nil
}
