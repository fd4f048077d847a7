//go:build !linux && !darwin
// +build !linux,!darwin

package reader

import (
	"github.com/pkg/errors"
)

type SystemSource struct{}

func (SystemSource) List(path string, dest []byte) (int, error) {
	return -1, ErrUnsupportedPlatform
}

func (SystemSource) Get(path string, name string, dest []byte) (int, error) {
	return -1, ErrUnsupportedPlatform
}

func kindOf(err error) FailureKind {
	if errors.Is(cause(err), ErrUnsupportedPlatform) {
		return FAILURE_UNSUPPORTED
	}
	if errors.Is(cause(err), ErrResultTooLarge) {
		return FAILURE_TOO_LARGE
	}
	return FAILURE_OTHER
}
