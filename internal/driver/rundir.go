package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// listSheets возвращает отсортированный список всех *.rc файлов в директории.
func listSheets(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".rc") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка.
	sort.Strings(files)
	return files, nil
}

// RunDir evaluates every *.rc sheet under dir in parallel. Sheets are
// independent documents: each gets its own unit system and symbol table,
// so definitions never leak across files. Results come back in sorted
// path order regardless of completion order.
func RunDir(ctx context.Context, dir string, opts Options) ([]*SheetResult, error) {
	files, err := listSheets(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]*SheetResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			sys, err := opts.newSystem()
			if err != nil {
				return err
			}
			results[i] = RunSheet(gctx, path, content, sys, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
