package rewrite

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

type FilesOpts struct {
	// Write rewrites files in place; otherwise results stream to Out.
	Write bool
	// Out receives rewritten sources when Write is false.
	Out io.Writer
	// Jobs bounds the number of files processed concurrently.
	// Defaults to GOMAXPROCS.
	Jobs int
}

// Files rewrites the given files and directories. Directories are walked
// recursively, skipping hidden, underscore-prefixed, testdata and vendor
// entries. Files are processed concurrently but results are reported in input
// order; the first failure cancels the remaining work. Returns the total
// number of marker calls rewritten.
func (r *Rewriter) Files(ctx context.Context, paths []string, opts FilesOpts) (int, error) {
	files, err := expand(paths)
	if err != nil {
		return 0, err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	outs := make([][]byte, len(files))
	counts := make([]int, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			src, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}
			out, n, err := r.File(ctx, name, src)
			if err != nil {
				return err
			}
			counts[i] = n

			if !opts.Write {
				outs[i] = out
				return nil
			}
			if n == 0 || bytes.Equal(out, src) {
				return nil
			}
			info, err := os.Stat(name)
			if err != nil {
				return fmt.Errorf("stat %s: %w", name, err)
			}
			if err := os.WriteFile(name, out, info.Mode().Perm()); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	if !opts.Write && opts.Out != nil {
		for _, out := range outs {
			if _, err := opts.Out.Write(out); err != nil {
				return total, fmt.Errorf("write output: %w", err)
			}
		}
	}
	return total, nil
}

func expand(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(name string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			base := filepath.Base(name)
			if entry.IsDir() {
				if name != path && skipDir(base) {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(base, ".go") {
				files = append(files, name)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}
	return files, nil
}

func skipDir(base string) bool {
	return strings.HasPrefix(base, ".") ||
		strings.HasPrefix(base, "_") ||
		base == "testdata" ||
		base == "vendor"
}
