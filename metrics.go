package turboquery

// Operation names the executor that ran a command. It is used as a log field
// and as the metrics label.
type Operation string

const (
	OpExec      = Operation("exec")
	OpScalar    = Operation("scalar")
	OpRead      = Operation("read")
	OpOrphan    = Operation("orphan")
	OpBatch     = Operation("batch")
	OpPage      = Operation("page")
	OpBootstrap = Operation("bootstrap")
	OpCatalog   = Operation("catalog")
)

// Operations lists every Operation, in declaration order.
var Operations = []Operation{OpExec, OpScalar, OpRead, OpOrphan, OpBatch, OpPage, OpBootstrap, OpCatalog}

// MetricsCollector receives one observation per executed command.
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	IncCommandTotal(op Operation)
	IncCommandError(op Operation)
	ObserveCommandDuration(op Operation, seconds float64)
	// AddRows records rows affected by writes or rows mapped by reads.
	AddRows(op Operation, n int64)
}

type nopMetrics struct{}

var _ MetricsCollector = nopMetrics{}

func (nopMetrics) IncCommandTotal(Operation)                 {}
func (nopMetrics) IncCommandError(Operation)                 {}
func (nopMetrics) ObserveCommandDuration(Operation, float64) {}
func (nopMetrics) AddRows(Operation, int64)                  {}
