// Package driver runs the front end over files and directories: load,
// parse, analyze, with optional result caching for batch runs.
package driver

import (
	"terbium/internal/ast"
	"terbium/internal/diag"
	"terbium/internal/parser"
	"terbium/internal/sema"
	"terbium/internal/source"
)

// Result is the outcome of analyzing one file. Err carries lexer and
// parser failures plus analysis faults; when it is set the bag is nil
// and the file never reached (or never finished) analysis. Cached is
// true when the diagnostics came from the disk cache.
type Result struct {
	Path   string
	FileID source.FileID
	Module ast.ModuleID
	Bag    *diag.Bag
	Err    error
	Cached bool
}

// Ok reports whether the file was fully analyzed.
func (r Result) Ok() bool { return r.Err == nil }

// AnalyzeFile loads one file from disk and analyzes it. I/O errors are
// returned directly; syntax and analysis failures land in Result.Err.
func AnalyzeFile(fs *source.FileSet, path string, opts sema.Options) (Result, error) {
	fileID, err := fs.Load(path)
	if err != nil {
		return Result{}, err
	}
	return analyze(fs, fileID, path, opts), nil
}

// AnalyzeSource analyzes in-memory content under the given name.
func AnalyzeSource(fs *source.FileSet, name, content string, opts sema.Options) Result {
	fileID := fs.AddVirtual(name, []byte(content))
	return analyze(fs, fileID, name, opts)
}

func analyze(fs *source.FileSet, fileID source.FileID, path string, opts sema.Options) Result {
	res := Result{Path: path, FileID: fileID}

	builder := ast.NewBuilder(ast.Hints{}, nil)
	module, err := parser.ParseFile(fs.Get(fileID), builder)
	if err != nil {
		res.Err = err
		return res
	}
	res.Module = module

	bag, err := sema.Run(sema.NewContext(builder, module), opts)
	if err != nil {
		res.Err = err
		return res
	}
	res.Bag = bag
	return res
}
