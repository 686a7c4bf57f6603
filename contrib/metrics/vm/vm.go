// Package vm implements turboquery.MetricsCollector with VictoriaMetrics.
package vm

import (
	"fmt"
	"io"
	"sync"

	"github.com/VictoriaMetrics/metrics"

	"github.com/sclgo/turboquery"
)

// Option configures a Collector.
type Option func(*Collector)

// WithPrefix sets the metric name prefix.
//
// Default: "turboquery"
func WithPrefix(prefix string) Option {
	return func(c *Collector) {
		c.prefix = prefix
	}
}

// WithMetricsSet registers metrics with set instead of a new globally
// registered one. The caller is responsible for exposing it.
func WithMetricsSet(set *metrics.Set) Option {
	return func(c *Collector) {
		c.set = set
	}
}

type opMetrics struct {
	total    *metrics.Counter
	errors   *metrics.Counter
	rows     *metrics.Counter
	duration *metrics.Histogram
}

// Collector keeps command counters, row counters and duration histograms per
// turboquery.Operation. All series are created up front; it is safe for
// concurrent use.
type Collector struct {
	set    *metrics.Set
	prefix string
	ops    map[turboquery.Operation]*opMetrics
}

var _ turboquery.MetricsCollector = (*Collector)(nil)

var (
	globalMu   sync.Mutex
	globalSets = map[string]*metrics.Set{}
)

// globalSet returns the globally registered set for prefix, creating it once.
func globalSet(prefix string) *metrics.Set {
	globalMu.Lock()
	defer globalMu.Unlock()
	if set, ok := globalSets[prefix]; ok {
		return set
	}
	set := metrics.NewSet()
	metrics.RegisterSet(set)
	globalSets[prefix] = set
	return set
}

// New collector. Without WithMetricsSet it uses a globally registered set,
// one per prefix, so metrics.WritePrometheus includes it. Collectors sharing
// a set and prefix share their series.
func New(opts ...Option) *Collector {
	c := &Collector{
		prefix: "turboquery",
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.set == nil {
		c.set = globalSet(c.prefix)
	}

	c.ops = make(map[turboquery.Operation]*opMetrics, len(turboquery.Operations))
	for _, op := range turboquery.Operations {
		c.ops[op] = &opMetrics{
			total:    c.set.GetOrCreateCounter(c.name("commands_total", op)),
			errors:   c.set.GetOrCreateCounter(c.name("command_errors_total", op)),
			rows:     c.set.GetOrCreateCounter(c.name("rows_total", op)),
			duration: c.set.GetOrCreateHistogram(c.name("command_duration_seconds", op)),
		}
	}
	return c
}

func (c *Collector) name(metric string, op turboquery.Operation) string {
	return fmt.Sprintf(`%s_%s{operation=%q}`, c.prefix, metric, string(op))
}

// Set returns the underlying metrics set.
func (c *Collector) Set() *metrics.Set {
	return c.set
}

// WritePrometheus writes the collector's metrics in Prometheus text format.
func (c *Collector) WritePrometheus(w io.Writer) {
	c.set.WritePrometheus(w)
}

// IncCommandTotal increments the executed command counter.
func (c *Collector) IncCommandTotal(op turboquery.Operation) {
	if m, ok := c.ops[op]; ok {
		m.total.Inc()
	}
}

// IncCommandError increments the failed command counter.
func (c *Collector) IncCommandError(op turboquery.Operation) {
	if m, ok := c.ops[op]; ok {
		m.errors.Inc()
	}
}

// ObserveCommandDuration records a command duration in seconds.
func (c *Collector) ObserveCommandDuration(op turboquery.Operation, seconds float64) {
	if m, ok := c.ops[op]; ok {
		m.duration.Update(seconds)
	}
}

// AddRows adds affected or mapped rows.
func (c *Collector) AddRows(op turboquery.Operation, n int64) {
	if m, ok := c.ops[op]; ok && n > 0 {
		m.rows.Add(int(n))
	}
}
