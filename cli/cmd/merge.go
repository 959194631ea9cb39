package cmd

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/wkalt/grouper/grouping"
	"github.com/wkalt/grouper/util/log"
	"golang.org/x/sync/errgroup"
)

// groupInputs groups every reader concurrently with build and merges each
// per-reader grouping into dst. Merges happen in reader order, so the result
// matches grouping the inputs one after another.
func groupInputs[T any, K, V comparable](
	ctx context.Context,
	readers []io.Reader,
	build func(io.Reader) (*grouping.Grouping[T, K, V], error),
	dst *grouping.Synchronized[T, K, V],
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	// turns[i] is closed once inputs before i are merged.
	turns := make([]chan struct{}, len(readers)+1)
	for i := range turns {
		turns[i] = make(chan struct{})
	}
	close(turns[0])
	for i, r := range readers {
		g.Go(func() error {
			local, err := build(r)
			if err != nil {
				return fmt.Errorf("failed to group input %d: %w", i, err)
			}
			select {
			case <-turns[i]:
			case <-ctx.Done():
				return ctx.Err()
			}
			dst.UpdateGroups(local)
			close(turns[i+1])
			log.Debugw(ctx, "merged input", "input", i, "groups", local.Len())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to group inputs: %w", err)
	}
	return nil
}
