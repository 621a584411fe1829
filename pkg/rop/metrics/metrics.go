// Package metrics counts intercepted results per kind with Prometheus.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ib-77/inlinetry/pkg/rop"
)

const valueLabel = "value"

// Recorder counts results of one sequence, one series per tag.
type Recorder struct {
	seq      *rop.Sequence
	vec      *prometheus.CounterVec
	counters []prometheus.Counter
}

// NewRecorder creates the counter vector inlinetry_results_total with a
// series for the success value and each kind of seq. name tells the
// sequences of a program apart.
func NewRecorder(name string, seq *rop.Sequence) *Recorder {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   "inlinetry",
		Name:        "results_total",
		Help:        "The number of intercepted calls by the tag of their result.",
		ConstLabels: prometheus.Labels{"sequence": name},
	}, []string{"index", "kind"})

	r := &Recorder{seq: seq, vec: vec, counters: make([]prometheus.Counter, seq.Len()+1)}
	r.counters[0] = vec.WithLabelValues("0", valueLabel)
	for i := 1; i <= seq.Len(); i++ {
		r.counters[i] = vec.WithLabelValues(fmt.Sprint(i), seq.Kind(i).Name())
	}
	return r
}

// Record counts res. Results of another sequence and unmatched results are
// ignored.
func (r *Recorder) Record(res rop.Tagged) {
	c := r.Counter(res.Index())
	if res.Sequence() != r.seq || c == nil {
		return
	}
	c.Inc()
}

// Observer adapts Record to the callback taken by lite.RunObserved.
func Observer[T any](r *Recorder) func(context.Context, rop.Result[T]) {
	return func(_ context.Context, res rop.Result[T]) { r.Record(res) }
}

func (r *Recorder) Describe(ch chan<- *prometheus.Desc) { r.vec.Describe(ch) }

func (r *Recorder) Collect(ch chan<- prometheus.Metric) { r.vec.Collect(ch) }

// Counter returns the series for tag index, or nil when out of range.
func (r *Recorder) Counter(index int) prometheus.Counter {
	if index < 0 || index >= len(r.counters) {
		return nil
	}
	return r.counters[index]
}
