package snesprite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	spriteExt  = ".bin"
	numWorkers = 10
)

func isSprite(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".bmp", ".png":
		return true
	default:
		return false
	}
}

func findSprites(ctx context.Context, base string, out chan<- string) error {
	return filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Ignore any hidden files or directories
		if info.Name()[0] == '.' && file != base {
			if info.Mode().IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Ignore anything that isn't a normal file
		if !info.Mode().IsRegular() || !isSprite(file) {
			return nil
		}

		select {
		case out <- file:
		case <-ctx.Done():
			return errors.New("walk cancelled")
		}

		return nil
	})
}

func (c *Converter) spriteWorker(ctx context.Context, in <-chan string) error {
	for {
		select {
		case file, ok := <-in:
			if !ok {
				return nil
			}
			base := strings.TrimSuffix(file, filepath.Ext(file))
			// Always truncate, otherwise every scan would add another copy
			if err := c.convert(file, base+spriteExt, base+paletteExt, true); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Scan walks the directory tree at path and converts every BMP and PNG
// image found into a sprite and palette file alongside it
func (c *Converter) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(context.Background())

	files := make(chan string)
	g.Go(func() error {
		defer close(files)
		return findSprites(ctx, dir, files)
	})

	for i := 0; i < numWorkers; i++ {
		g.Go(func() error {
			return c.spriteWorker(ctx, files)
		})
	}

	return g.Wait()
}
