package railfile

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// LoadFile parses the file at path into a single Dataset by planning
// line-aligned chunks and parsing them concurrently, one goroutine per
// chunk. workers <= 0 selects the detected hardware parallelism (minimum 1).
//
// Partial datasets are merged sequentially in chunk-index order after all
// chunk tasks complete, so the merge is deterministic: chunks never share a
// key when planning is correct, and if one ever did, the later chunk would
// win. Any chunk failure fails the whole load; no partial dataset is
// returned. An empty file yields an empty Dataset and no error.
func LoadFile(ctx context.Context, path string, cols Columns, workers int) (Dataset, error) {
	if err := cols.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	ranges, err := PlanChunks(path, workers)
	if err != nil {
		return nil, err
	}
	if len(ranges) == 0 {
		return Dataset{}, nil
	}

	parts := make([]Dataset, len(ranges))
	g, ctx := errgroup.WithContext(ctx)
	for i, rng := range ranges {
		i, rng := i, rng
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := ParseChunk(path, rng, cols)
			if err != nil {
				return err
			}
			parts[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(Dataset)
	for _, part := range parts {
		for k, v := range part {
			merged[k] = v
		}
	}
	return merged, nil
}
