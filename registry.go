package turboquery

import (
	"context"
	"errors"
	"sync"
)

// OpenFunc opens the database handle for validated options.
type OpenFunc func(Options) (DB, error)

// Registry creates clients from configuration callbacks and bootstraps the
// database on the first successful registration only.
type Registry struct {
	mu          sync.Mutex
	open        OpenFunc
	options     []Option
	initialized bool
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithOpenFunc replaces OpenDB as the way handles are opened.
func WithOpenFunc(open OpenFunc) RegistryOption {
	return func(r *Registry) {
		r.open = open
	}
}

// WithClientOptions applied to every client the registry creates.
func WithClientOptions(opts ...Option) RegistryOption {
	return func(r *Registry) {
		r.options = append(r.options, opts...)
	}
}

// NewRegistry with the given options.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		// avoid returning a typed nil DB on error
		open: func(o Options) (DB, error) {
			db, err := OpenDB(o)
			if err != nil {
				return nil, err
			}
			return db, nil
		},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Register populates Options with configure, opens a client and runs
// Bootstrap unless an earlier registration already did. The caller owns the
// returned client.
func (r *Registry) Register(ctx context.Context, configure func(*Options), opts ...Option) (*Client, error) {
	if configure == nil {
		return nil, ErrNilConfigure
	}
	o := Options{Engine: EngineSQLServer}
	configure(&o)
	if err := o.Validate(); err != nil {
		return nil, err
	}

	db, err := r.open(o)
	if err != nil {
		return nil, err
	}
	c, err := newOwned(db, o, append(append([]Option{}, r.options...), opts...)...)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.initialized {
		return c, nil
	}
	if err := c.Bootstrap(ctx); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	r.initialized = true
	return c, nil
}

// Initialized reports whether a registration has bootstrapped the database.
func (r *Registry) Initialized() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.initialized
}

var defaultRegistry = NewRegistry()

// Register on the process-wide registry, see Registry.Register.
func Register(ctx context.Context, configure func(*Options), opts ...Option) (*Client, error) {
	return defaultRegistry.Register(ctx, configure, opts...)
}
