package lite

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/inlinetry/pkg/rop"
	"github.com/ib-77/inlinetry/pkg/rop/core"
)

// Run starts lines locomotives sharing engine over inputCh. A non-positive
// lines falls back to core.Workers. The output is closed once every input
// has been processed or ctx is done; results arrive in completion order.
//
// The engine must not panic: build it from a sequence for which Total()
// holds, since a panic that escapes a worker goroutine ends the program.
func Run[In, Out any](ctx context.Context, inputCh <-chan In,
	engine func(in In) rop.Result[Out],
	lines int) <-chan rop.Result[Out] {
	return RunObserved(ctx, inputCh, engine, nil, lines)
}

// RunObserved is Run with a callback invoked after each result is
// delivered, for example a metrics.Recorder.
func RunObserved[In, Out any](ctx context.Context, inputCh <-chan In,
	engine func(in In) rop.Result[Out],
	onResult func(ctx context.Context, res rop.Result[Out]),
	lines int) <-chan rop.Result[Out] {

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}
	handlers := core.CancellationHandlers[In, Out]{OnCancel: core.Drain[In]}

	for range core.Workers(ctx, lines) {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, onResult, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Map runs engine over inputs with at most workers concurrent calls and
// returns the results in input order. It returns ctx's error if ctx is done
// before every input was processed.
func Map[In, Out any](ctx context.Context, inputs []In,
	engine func(in In) rop.Result[Out],
	workers int) ([]rop.Result[Out], error) {

	out := make([]rop.Result[Out], len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(core.Workers(ctx, workers))

	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = engine(in)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
