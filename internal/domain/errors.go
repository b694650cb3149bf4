package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrArgCount           = errors.New("exactly one operation argument is required")
	ErrUnknownOperation   = errors.New("unknown operation")
	ErrDuplicateOperation = errors.New("duplicate operation")
	ErrInvalidInput       = errors.New("invalid input")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindUsage           ErrorKind = "usage"
	KindInputRead       ErrorKind = "input_read"
	KindInvalidRegistry ErrorKind = "invalid_registry"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Name string // Optional: operation name involved
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Name != "" {
		base += fmt.Sprintf(" (operation=%s)", e.Name)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
