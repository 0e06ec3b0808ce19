package ilda

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sync/errgroup"
)

func DecodeFile(path string, opts ...Option) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(err)
	}
	return Decode(data, opts...)
}

func DecodeFS(fsys fs.FS, name string, opts ...Option) ([]Record, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, ioError(err)
	}
	return Decode(data, opts...)
}

// DecodeFiles decodes each path independently with at most limit files in
// flight (no limit when limit <= 0). Results follow the order of paths. The
// first failure cancels files not yet started and is returned alone.
func DecodeFiles(ctx context.Context, paths []string, limit int, opts ...Option) ([][]Record, error) {
	results := make([][]Record, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records, err := DecodeFile(path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
