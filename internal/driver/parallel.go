package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"terbium/internal/sema"
	"terbium/internal/source"
)

// SourceExt is the file extension of analyzable sources.
const SourceExt = ".trb"

// DirOptions configures a batch run over a directory tree.
type DirOptions struct {
	Sema sema.Options
	// Jobs caps concurrent analyses. Zero or negative means GOMAXPROCS.
	Jobs int
	// Cache, when non-nil, short-circuits files whose content hash has a
	// stored result and records fresh results back.
	Cache *DiskCache
	// OnResult, when non-nil, is called after each file completes, in
	// completion order. Calls are serialized.
	OnResult func(r Result, done, total int)
}

// ListSourceFiles returns every *.trb file under dir, sorted for a
// deterministic result order.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// AnalyzeDir analyzes every source file under dir in parallel. Files are
// loaded into the set up front on one goroutine; workers then share the
// set read-only, each with its own arenas. Results come back indexed in
// the sorted file order. Files that fail to load carry the I/O error in
// Result.Err.
func AnalyzeDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []Result, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	results := make([]Result, len(files))
	loaded := make([]bool, len(files))
	for i, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			results[i] = Result{Path: path, Err: err}
			continue
		}
		results[i] = Result{Path: path, FileID: fileID}
		loaded[i] = true
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	maxDiagnostics := opts.Sema.MaxDiagnostics
	if maxDiagnostics == 0 {
		maxDiagnostics = sema.DefaultMaxDiagnostics
	}

	var progressMu sync.Mutex
	var done int
	tick := func(r Result) {
		if opts.OnResult == nil {
			return
		}
		progressMu.Lock()
		done++
		opts.OnResult(r, done, len(files))
		progressMu.Unlock()
	}

	for i := range files {
		if !loaded[i] {
			tick(results[i])
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i := range files {
		if !loaded[i] {
			continue
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			file := fileSet.Get(results[i].FileID)

			if opts.Cache != nil {
				bag, hit, err := opts.Cache.Get(file.Hash, file.ID, maxDiagnostics)
				if err == nil && hit {
					results[i].Bag = bag
					results[i].Cached = true
					tick(results[i])
					return nil
				}
			}

			res := analyze(fileSet, file.ID, results[i].Path, opts.Sema)
			results[i] = res

			if opts.Cache != nil && res.Ok() {
				// Best effort; a write failure never fails the run.
				_ = opts.Cache.Put(file.Hash, res.Bag)
			}
			tick(res)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
