// SPDX-License-Identifier: MIT

package ops

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const opSqrtBatch = "SqrtBatch"

// SqrtBatch computes MatrixSqrt for every dim×dim row-major input concurrently,
// at most WithWorkers(n) at a time. out[i] corresponds to inputs[i].
//
// Behavior highlights:
//   - The first failure cancels the remaining work and is returned wrapped with
//     its input index; partial results are discarded.
//   - ctx is checked before each task starts; a single square root is not interrupted.
//
// Errors:
//   - ctx.Err(), or any MatrixSqrt error.
func SqrtBatch(ctx context.Context, inputs [][]float64, dim int, opts ...Option) ([][]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, opsErrorf(opSqrtBatch, err)
	}
	o := gatherOptions(opts...)
	out := make([][]float64, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, a := range inputs {
		i, a := i, a
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			x, _, err := newtonSqrt(opSqrtBatch, a, dim, o)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			out[i] = x
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		o.logger.Warn("batch aborted", zap.Int("inputs", len(inputs)), zap.Error(err))
		return nil, opsErrorf(opSqrtBatch, err)
	}

	return out, nil
}
