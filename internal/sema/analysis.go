package sema

import (
	"terbium/internal/diag"
)

// Run analyzes one parsed module. Diagnostics accumulate in the returned
// bag in traversal order; module-scope lints come last. A fault aborts
// the run through the error channel with whatever the bag held discarded.
func Run(ctx *Context, opts Options) (*diag.Bag, error) {
	if opts.MaxDiagnostics == 0 {
		opts.MaxDiagnostics = DefaultMaxDiagnostics
	}
	w := &walker{
		ctx:  ctx,
		opts: opts,
		bag:  diag.NewBag(opts.MaxDiagnostics),
	}

	module := ctx.Arenas.Modules.Get(ctx.Module)
	for _, stmt := range module.Stmts {
		if err := w.walkStmt(stmt); err != nil {
			return nil, err
		}
	}
	w.exitScope()
	return w.bag, nil
}
