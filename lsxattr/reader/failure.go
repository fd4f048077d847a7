package reader

import (
	"github.com/pkg/errors"
	"github.com/pkg/xattr"
)

type FailureKind uint8

const (
	FAILURE_OTHER        FailureKind = 0
	FAILURE_NOT_FOUND    FailureKind = 1
	FAILURE_PERMISSION   FailureKind = 2
	FAILURE_TOO_LARGE    FailureKind = 3
	FAILURE_NO_ATTRIBUTE FailureKind = 4
	FAILURE_UNSUPPORTED  FailureKind = 5
)

func (k FailureKind) String() string {
	switch k {
	case FAILURE_NOT_FOUND:
		return "not found"
	case FAILURE_PERMISSION:
		return "permission denied"
	case FAILURE_TOO_LARGE:
		return "too large"
	case FAILURE_NO_ATTRIBUTE:
		return "no such attribute"
	case FAILURE_UNSUPPORTED:
		return "unsupported"
	default:
		return "other"
	}
}

// Failure is a failed list or get. Err is usually an *xattr.Error carrying
// the errno, so errors.Is(failure, unix.ERANGE) works.
type Failure struct {
	Op   string
	Path string
	Name string
	Kind FailureKind
	Err  error
}

func newFailure(op, path, name string, err error) *Failure {
	var xerr *xattr.Error
	if !errors.As(err, &xerr) {
		err = &xattr.Error{Op: op, Path: path, Name: name, Err: err}
	}
	return &Failure{
		Op:   op,
		Path: path,
		Name: name,
		Kind: kindOf(err),
		Err:  err,
	}
}

func (f *Failure) Error() string {
	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Is matches the errno (or sentinel) at the bottom of the failure.
func (f *Failure) Is(target error) bool {
	return cause(f.Err) == target
}

// Message is the platform's text for the failure, without the op and path.
func (f *Failure) Message() string {
	return cause(f.Err).Error()
}

// cause digs the errno out of an *xattr.Error, or the root of a wrapped error.
func cause(err error) error {
	var xerr *xattr.Error
	if errors.As(err, &xerr) && xerr.Err != nil {
		return xerr.Err
	}
	return errors.Cause(err)
}
