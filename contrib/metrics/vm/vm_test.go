package vm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/VictoriaMetrics/metrics"
	"github.com/stretchr/testify/require"

	"github.com/sclgo/turboquery"
)

func TestCollector(t *testing.T) {
	c := New(WithMetricsSet(metrics.NewSet()), WithPrefix("tq"))

	c.IncCommandTotal(turboquery.OpExec)
	c.IncCommandTotal(turboquery.OpExec)
	c.IncCommandError(turboquery.OpExec)
	c.AddRows(turboquery.OpExec, 3)
	c.AddRows(turboquery.OpExec, 0)
	c.AddRows(turboquery.OpExec, -1)
	c.ObserveCommandDuration(turboquery.OpPage, 0.25)
	c.IncCommandTotal(turboquery.Operation("unknown"))

	var buf bytes.Buffer
	c.WritePrometheus(&buf)
	out := buf.String()

	require.Contains(t, out, `tq_commands_total{operation="exec"} 2`)
	require.Contains(t, out, `tq_command_errors_total{operation="exec"} 1`)
	require.Contains(t, out, `tq_rows_total{operation="exec"} 3`)
	require.Contains(t, out, `tq_command_duration_seconds_count{operation="page"} 1`)
	require.NotContains(t, out, "unknown")
}

func TestCollectorDefaultPrefix(t *testing.T) {
	set := metrics.NewSet()
	c := New(WithMetricsSet(set))
	require.Same(t, set, c.Set())

	c.IncCommandTotal(turboquery.OpBootstrap)

	var buf bytes.Buffer
	set.WritePrometheus(&buf)
	require.Contains(t, buf.String(), `turboquery_commands_total{operation="bootstrap"} 1`)
}

func TestCollectorGlobalSetPerPrefix(t *testing.T) {
	const series = `tq_global_commands_total{operation="exec"}`

	a := New(WithPrefix("tq_global"))
	b := New(WithPrefix("tq_global"))
	require.Same(t, a.Set(), b.Set())

	a.IncCommandTotal(turboquery.OpExec)
	b.IncCommandTotal(turboquery.OpExec)

	var buf bytes.Buffer
	metrics.WritePrometheus(&buf, false)
	require.Equal(t, 1, strings.Count(buf.String(), series+" "))
	require.Contains(t, buf.String(), series+" 2")

	other := New(WithPrefix("tq_global_other"))
	require.NotSame(t, a.Set(), other.Set())
}

func TestCollectorSharedSet(t *testing.T) {
	set := metrics.NewSet()
	a := New(WithMetricsSet(set), WithPrefix("tq_shared"))
	b := New(WithMetricsSet(set), WithPrefix("tq_shared"))

	a.AddRows(turboquery.OpRead, 2)
	b.AddRows(turboquery.OpRead, 3)

	var buf bytes.Buffer
	set.WritePrometheus(&buf)
	require.Contains(t, buf.String(), `tq_shared_rows_total{operation="read"} 5`)
}
