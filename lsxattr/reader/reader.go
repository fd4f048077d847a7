package reader

import (
	"github.com/indrora/lsxattr/lsxattr/format"
	"github.com/pkg/errors"
)

// The reader asks the kernel for attributes through fixed-size buffers.
// It never grows a buffer: when the data does not fit, the caller hears about it.

var (
	ErrResultTooLarge      = errors.New("result too large for buffer")
	ErrNegativeLength      = errors.New("negative length without an error")
	ErrUnsupportedPlatform = errors.New("extended attributes are not supported on this platform")
)

const (
	OP_LIST = "xattr.list"
	OP_GET  = "xattr.get"
)

// Source is where attributes come from. Both calls fill dest and return the
// number of bytes written, failing when the data does not fit.
type Source interface {
	List(path string, dest []byte) (int, error)
	Get(path string, name string, dest []byte) (int, error)
}

// Result is the outcome of one bounded call. Length is -1 when Err is set.
type Result struct {
	Length int
	Err    error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

type Reader struct {
	source  Source
	nameBuf []byte
	dataBuf []byte
}

// NewReader allocates both buffers with the given capacity, once.
func NewReader(source Source, capacity int) *Reader {
	return &Reader{
		source:  source,
		nameBuf: make([]byte, capacity),
		dataBuf: make([]byte, capacity),
	}
}

// NewSystemReader reads from the running kernel using format.BUFFER_SIZE buffers.
func NewSystemReader() *Reader {
	return NewReader(SystemSource{}, format.BUFFER_SIZE)
}

// List fetches the packed name list for path. The returned slice aliases
// the reader's buffer and is only valid until the next List.
func (reader *Reader) List(path string) (Result, []byte) {

	n, err := reader.source.List(path, reader.nameBuf)
	res := reader.settle(OP_LIST, path, "", n, len(reader.nameBuf), err)
	if res.Failed() {
		return res, reader.nameBuf[:0]
	}
	return res, reader.nameBuf[:res.Length]
}

// Get fetches the value of one attribute. The returned slice aliases the
// reader's buffer and is only valid until the next Get.
func (reader *Reader) Get(path string, name string) (Result, []byte) {

	n, err := reader.source.Get(path, name, reader.dataBuf)
	res := reader.settle(OP_GET, path, name, n, len(reader.dataBuf), err)
	if res.Failed() {
		return res, reader.dataBuf[:0]
	}
	return res, reader.dataBuf[:res.Length]
}

func (reader *Reader) settle(op, path, name string, n, capacity int, err error) Result {

	if err != nil {
		return Result{Length: -1, Err: newFailure(op, path, name, err)}
	}
	if n < 0 {
		return Result{Length: -1, Err: &Failure{
			Op:   op,
			Path: path,
			Name: name,
			Kind: FAILURE_OTHER,
			Err:  errors.Wrapf(ErrNegativeLength, "%d", n),
		}}
	}
	if n > capacity {
		return Result{Length: -1, Err: &Failure{
			Op:   op,
			Path: path,
			Name: name,
			Kind: FAILURE_TOO_LARGE,
			Err:  errors.Wrapf(ErrResultTooLarge, "%d bytes reported, %d available", n, capacity),
		}}
	}
	return Result{Length: n}
}
