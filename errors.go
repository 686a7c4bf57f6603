package turboquery

import (
	"errors"
	"fmt"

	mssql "github.com/microsoft/go-mssqldb"
)

var (
	// ErrNilConfigure is returned when Register gets no configuration callback.
	ErrNilConfigure = errors.New("configure callback is nil")

	// ErrInvalidOptions wraps validation failures of Options.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrUnsupportedEngine is the unknown database engine error.
	ErrUnsupportedEngine = errors.New("unsupported database engine")

	// ErrEngineMismatch is returned when a connection URL names a driver
	// other than the configured engine's.
	ErrEngineMismatch = errors.New("connection string does not match engine")

	// ErrNilMapper is returned by readers called without a row mapper.
	ErrNilMapper = errors.New("row mapper is nil")

	// ErrConversion wraps scalar and column values that cannot be converted
	// to the requested type.
	ErrConversion = errors.New("cannot convert value")

	// ErrColumnNotFound is returned by Value for unknown column names.
	ErrColumnNotFound = errors.New("column not found")

	// ErrScriptNotFound is returned when the setup script resource is missing.
	ErrScriptNotFound = errors.New("setup script not found")

	// ErrEmptyScript is returned when the setup script has no content.
	ErrEmptyScript = errors.New("setup script is empty")

	// ErrClientClosed is returned by executors of a closed Client.
	ErrClientClosed = errors.New("client is closed")
)

// BatchError reports the element that aborted a batch write.
type BatchError struct {
	// Index of the failed element in the input slice.
	Index int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch element %d: %v", e.Index, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// SQL Server error numbers for key and constraint violations.
const (
	errUniqueConstraint = 2627
	errUniqueIndex      = 2601
	errConstraint       = 547
)

// IsConstraintViolation reports whether err is a SQL Server primary key,
// unique index, foreign key or check constraint violation.
func IsConstraintViolation(err error) bool {
	var msErr mssql.Error
	if !errors.As(err, &msErr) {
		return false
	}
	switch msErr.Number {
	case errUniqueConstraint, errUniqueIndex, errConstraint:
		return true
	}
	return false
}
