package turboquery

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNilDB is returned by New when no database handle is given.
var ErrNilDB = errors.New("db is nil")

// Client runs commands against one configured database. Every command takes
// its own connection from the DB and releases it before returning.
// A Client is safe for concurrent use.
type Client struct {
	db          DB
	opts        Options
	logger      zerolog.Logger
	metrics     MetricsCollector
	timeout     time.Duration
	logArgs     bool
	atomicBatch bool
	script      scriptSource
	closed      atomic.Bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger used to log commands. A logger attached to the call context
// with zerolog's WithContext takes precedence; zerolog.DefaultContextLogger
// does not.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithMetrics collector
func WithMetrics(m MetricsCollector) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTimeout for a single command, including connection acquisition
func WithTimeout(t time.Duration) Option {
	return func(c *Client) {
		c.timeout = t
	}
}

// WithArgLogging adds bound arguments to command log events.
func WithArgLogging() Option {
	return func(c *Client) {
		c.logArgs = true
	}
}

// WithAtomicBatches runs every batch write in a transaction, so a failing
// element rolls back the ones before it.
func WithAtomicBatches() Option {
	return func(c *Client) {
		c.atomicBatch = true
	}
}

// WithScript replaces the embedded setup script run by Bootstrap.
func WithScript(fsys fs.FS, name string) Option {
	return func(c *Client) {
		c.script = scriptSource{fsys: fsys, name: name}
	}
}

// New client using db. The client owns db and closes it in Close.
// An empty Engine defaults to EngineSQLServer.
func New(db DB, opts Options, options ...Option) (*Client, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	if opts.Engine == "" {
		opts.Engine = EngineSQLServer
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	c := &Client{
		db:      db,
		opts:    opts,
		logger:  zerolog.Nop(),
		metrics: nopMetrics{},
		script:  embeddedScript,
	}
	for _, o := range options {
		o(c)
	}
	return c, nil
}

// Open a database handle for opts and wrap it in a Client.
func Open(opts Options, options ...Option) (*Client, error) {
	if opts.Engine == "" {
		opts.Engine = EngineSQLServer
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	db, err := OpenDB(opts)
	if err != nil {
		return nil, err
	}
	return newOwned(db, opts, options...)
}

// newOwned is New that closes db when the client cannot be created.
func newOwned(db DB, opts Options, options ...Option) (*Client, error) {
	c, err := New(db, opts, options...)
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}
	return c, nil
}

// Options the client was created with.
func (c *Client) Options() Options {
	return c.opts
}

// Ping verifies the database is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c.closed.Load() {
		return ErrClientClosed
	}
	return c.db.PingContext(ctx)
}

// Close the underlying database handle. Subsequent commands fail with ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.db.Close()
}

type command struct {
	op    Operation
	query string
	args  []any
}

// connFunc executes a command on conn and returns the rows it affected or mapped.
type connFunc func(ctx context.Context, conn *sql.Conn) (int64, error)

func (c *Client) run(ctx context.Context, cmd command, fn connFunc) error {
	if c.closed.Load() {
		return ErrClientClosed
	}
	if c.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	l := c.commandLogger(ctx, cmd)
	l.Debug().Str("query", cmd.query).Msg("executing command")

	start := time.Now()
	n, err := c.withConn(ctx, fn)
	elapsed := time.Since(start)

	c.metrics.IncCommandTotal(cmd.op)
	c.metrics.ObserveCommandDuration(cmd.op, elapsed.Seconds())
	if err != nil {
		c.metrics.IncCommandError(cmd.op)
		l.Error().Err(err).Dur("elapsed", elapsed).Msg("command failed")
		return err
	}
	c.metrics.AddRows(cmd.op, n)
	l.Debug().Int64("rows", n).Dur("elapsed", elapsed).Msg("command completed")
	return nil
}

func (c *Client) withConn(ctx context.Context, fn connFunc) (n int64, err error) {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(ctx, conn)
}

func (c *Client) commandLogger(ctx context.Context, cmd command) zerolog.Logger {
	// zerolog.Ctx falls back to DefaultContextLogger, which must not
	// override the client logger.
	l := zerolog.Ctx(ctx)
	if l == zerolog.DefaultContextLogger || l.GetLevel() == zerolog.Disabled {
		l = &c.logger
	}
	lc := l.With().
		Str("command_id", uuid.NewString()).
		Str("op", string(cmd.op))
	if c.logArgs {
		lc = lc.Interface("args", cmd.args)
	}
	return lc.Logger()
}
