// Package driver runs the formatter over batches of parsed files: it pairs
// AST dumps with their source text, prints module declarations, splices the
// result back into the file and writes, checks or streams the output.
package driver

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"esfmt/internal/format"
)

// FormatOptions configures a batch run.
type FormatOptions struct {
	// Check leaves files untouched and only reports whether formatting
	// would change them.
	Check bool
	// Stdout returns formatted content in the results instead of writing.
	Stdout bool
	// Jobs bounds parallelism; <=0 means GOMAXPROCS.
	Jobs int
	// Options are the print options applied to every file.
	Options format.Options
	// Cache, when non-nil, short-circuits unchanged inputs.
	Cache *DiskCache
	// Events receives per-file progress when non-nil.
	Events chan<- Event
}

// FormatResult captures the outcome for a single AST dump.
type FormatResult struct {
	Path      string
	Changed   bool
	FromCache bool
	Err       error
	Formatted []byte
}

// FormatPaths formats the given files or directories (recursively collecting
// *.ast.json dumps). Results come back in deterministic path order even
// though files are processed in parallel.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := CollectInputs(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("driver: no AST inputs found")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, path := range files {
		emit(opts.Events, path, StatusQueued)
	}

	// Slots are per-goroutine, so no mutex is needed around results.
	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			emit(opts.Events, path, StatusWorking)
			results[i] = formatOne(path, opts)
			switch {
			case results[i].Err != nil:
				emit(opts.Events, path, StatusError)
			case results[i].FromCache:
				emit(opts.Events, path, StatusCached)
			default:
				emit(opts.Events, path, StatusDone)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOne(path string, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}

	in, err := loadInput(path)
	if err != nil {
		result.Err = err
		return result
	}

	var formatted []byte
	key := InputDigest(in.astData, in.src, opts.Options)
	if cached, ok, err := opts.Cache.Get(key); err == nil && ok {
		formatted = cached
		result.FromCache = true
	} else {
		formatted = FormatSource(in.src, in.file, opts.Options)
		// Cache failures are not format failures.
		_ = opts.Cache.Put(key, formatted)
	}

	result.Changed = !bytes.Equal(formatted, in.src)
	if opts.Check {
		return result
	}
	if opts.Stdout {
		result.Formatted = formatted
		return result
	}
	if result.Changed {
		if in.srcPath == "" {
			result.Err = errors.New("cannot rewrite embedded source, use --stdout or --check")
			return result
		}
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(in.srcPath); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(in.srcPath, formatted, mode.Perm()); err != nil {
			result.Err = err
		}
	}
	return result
}

// CollectInputs expands directories into sorted *.ast.json lists and passes
// explicit files through.
func CollectInputs(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(p, astSuffix) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}
