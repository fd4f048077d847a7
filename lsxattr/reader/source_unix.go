//go:build linux || darwin
// +build linux darwin

package reader

import (
	"github.com/pkg/errors"
	"github.com/pkg/xattr"
	"golang.org/x/sys/unix"
)

// SystemSource calls listxattr(2) and getxattr(2) directly with the
// caller's buffer, so an undersized buffer fails with ERANGE instead of
// being grown behind our back.
type SystemSource struct{}

func (SystemSource) List(path string, dest []byte) (int, error) {
	n, err := unix.Listxattr(path, dest)
	if err != nil {
		return -1, &xattr.Error{Op: OP_LIST, Path: path, Err: err}
	}
	return n, nil
}

func (SystemSource) Get(path string, name string, dest []byte) (int, error) {
	n, err := unix.Getxattr(path, name, dest)
	if err != nil {
		return -1, &xattr.Error{Op: OP_GET, Path: path, Name: name, Err: err}
	}
	return n, nil
}

func kindOf(err error) FailureKind {

	var errno unix.Errno
	if !errors.As(cause(err), &errno) {
		if errors.Is(cause(err), ErrResultTooLarge) {
			return FAILURE_TOO_LARGE
		}
		return FAILURE_OTHER
	}

	switch errno {
	case unix.ENOENT, unix.ENOTDIR:
		return FAILURE_NOT_FOUND
	case unix.EACCES, unix.EPERM:
		return FAILURE_PERMISSION
	case unix.ERANGE, unix.E2BIG:
		return FAILURE_TOO_LARGE
	case xattr.ENOATTR:
		return FAILURE_NO_ATTRIBUTE
	case unix.ENOTSUP:
		return FAILURE_UNSUPPORTED
	default:
		return FAILURE_OTHER
	}
}
