package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ib-77/inlinetry/pkg/rop"
	"github.com/ib-77/inlinetry/pkg/rop/metrics"
	"github.com/ib-77/inlinetry/pkg/rop/solo"
)

type kindA struct{}
type kindB struct{}
type kindC struct{}

type outOfRangeError struct{ msg string }

func (e *outOfRangeError) Error() string { return e.msg }

// counter raises kindA on call 1, kindB on call 2, an *outOfRangeError on call 5
// and kindC on call 7, and returns the call number otherwise.
func counter() func() int {
	i := 0
	return func() int {
		i++
		switch i {
		case 1:
			panic(kindA{})
		case 2:
			panic(kindB{})
		case 5:
			panic(&outOfRangeError{msg: "Just some text"})
		case 7:
			panic(kindC{})
		}
		return i
	}
}

var counterSeq = rop.MustSequence(rop.Type[kindA](), rop.Type[kindB](), rop.Generic(), rop.CatchAll())

func (a *app) newCounterCmd() *cobra.Command {
	var calls int

	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Run the counter scenario through [A, B, error, ...]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if calls < 0 {
				return fmt.Errorf("invalid argument: calls must not be negative, got %d", calls)
			}
			return a.runCounter(cmd.OutOrStdout(), calls)
		},
	}

	cmd.Flags().IntVar(&calls, "calls", 9, "Number of calls to make")

	return cmd
}

func (a *app) runCounter(w io.Writer, calls int) error {
	rec := metrics.NewRecorder("counter", counterSeq)
	reg := prometheus.NewRegistry()
	if err := reg.Register(rec); err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	a.logger.WithField("sequence", counterSeq.ID()).Debugf("running %d calls through %s", calls, counterSeq)

	wrapped := solo.Wrap(counterSeq, counter())
	for i := 1; i <= calls; i++ {
		res := wrapped()
		rec.Record(res)

		if res.HasValue() {
			fmt.Fprintf(w, "call %d: value %d\n", i, res.Value())
			continue
		}

		fmt.Fprintf(w, "call %d: kind %d (%s)\n", i, res.Index(), res.Kind().Name())
		if c, ok := res.Payload(res.Index()).(rop.Capsule); ok {
			fmt.Fprintf(w, "    type: %s what: %s\n", c.TypeName(), c.Message())
		}
	}

	return writeTotals(w, reg)
}

func writeTotals(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			lines = append(lines, fmt.Sprintf("total %s %s: %.0f",
				labels["index"], labels["kind"], m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
