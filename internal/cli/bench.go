package cli

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/inlinetry/pkg/rop"
	"github.com/ib-77/inlinetry/pkg/rop/solo"
)

var benchSeq = rop.MustSequence(rop.Type[kindA](), rop.Type[kindB](), rop.CatchAll())

// cycle returns 0..9 in turn and raises kindA, kindB and kindC on 1, 2 and 3.
func cycle() func() int {
	i := 9
	return func() int {
		i = (i + 1) % 10
		switch i {
		case 1:
			panic(kindA{})
		case 2:
			panic(kindB{})
		case 3:
			panic(kindC{})
		}
		return i
	}
}

// flat tags op with a single hand-written recover.
func flat(op func() int) (tag int) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case kindA:
				tag = 1
			case kindB:
				tag = 2
			default:
				tag = 3
			}
		}
	}()
	op()
	return 0
}

// nested tags op with one hand-written recover per kind.
func nested(op func() int) (tag int) {
	defer func() {
		if r := recover(); r != nil {
			tag = 3
		}
	}()
	return nestedB(op)
}

func nestedB(op func() int) (tag int) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(kindB); !ok {
				panic(r)
			}
			tag = 2
		}
	}()
	return nestedA(op)
}

func nestedA(op func() int) (tag int) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(kindA); !ok {
				panic(r)
			}
			tag = 1
		}
	}()
	op()
	return 0
}

type benchCase struct {
	name string
	run  func(op func() int) int
}

var benchCases = []benchCase{
	{name: "adapter", run: func(op func() int) int { return solo.Call(benchSeq, op).Index() }},
	{name: "flat", run: flat},
	{name: "nested", run: nested},
}

func (a *app) newBenchCmd() *cobra.Command {
	var (
		iterations int
		parallel   int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the adapter against hand-written recovers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if iterations <= 0 || parallel <= 0 {
				return fmt.Errorf("invalid argument: iterations and parallel must be positive")
			}
			return a.runBench(cmd.Context(), cmd.OutOrStdout(), iterations, parallel)
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", 1_000_000, "Calls per worker")
	cmd.Flags().IntVar(&parallel, "parallel", 1, "Number of concurrent workers")

	return cmd
}

func (a *app) runBench(ctx context.Context, w io.Writer, iterations, parallel int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	for _, bc := range benchCases {
		var values atomic.Int64

		start := time.Now()
		g, gctx := errgroup.WithContext(ctx)
		for range parallel {
			g.Go(func() error {
				op := cycle()
				n := int64(0)
				for i := 0; i < iterations; i++ {
					if i%4096 == 0 && gctx.Err() != nil {
						return gctx.Err()
					}
					if bc.run(op) == 0 {
						n++
					}
				}
				values.Add(n)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("bench %s: %w", bc.name, err)
		}
		elapsed := time.Since(start)

		a.logger.WithField("case", bc.name).Debugf("finished in %s", elapsed)
		if _, err := fmt.Fprintf(w, "%-8s count: %d time: %s\n", bc.name, values.Load(), elapsed); err != nil {
			return err
		}
	}
	return nil
}
