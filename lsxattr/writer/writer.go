package writer

import (
	"fmt"
	"io"

	"github.com/indrora/lsxattr/lsxattr/format"
	"github.com/indrora/lsxattr/lsxattr/ioutil"
	"github.com/indrora/lsxattr/lsxattr/reader"
	"github.com/pkg/errors"
)

// TranscriptWriter writes the human readable account of one run:
//
//	Listing attributes of "FILE"
//	listxattr() returned 9
//	  List contents:
//	    user.foo
//
//	Getting attribute "user.foo"
//	getxattr() returned 3
//	  Attribute value:
//	    0x62 0x61 0x72
//
// The first error hit on the underlying writer sticks; later calls are no-ops
// and Err reports it.
type TranscriptWriter struct {
	out io.Writer
	hex *ioutil.HexWriter
	err error
}

func NewWriter(out io.Writer) *TranscriptWriter {
	return &TranscriptWriter{
		out: out,
		hex: ioutil.NewHexWriter(out, format.HEX_GROUP),
	}
}

func (tw *TranscriptWriter) printf(f string, args ...any) {
	if tw.err != nil {
		return
	}
	if _, err := fmt.Fprintf(tw.out, f, args...); err != nil {
		tw.err = errors.Wrap(err, "failed to write transcript")
	}
}

// AppendListing writes the header and outcome of the name-list fetch.
func (tw *TranscriptWriter) AppendListing(path string, res reader.Result) {

	tw.printf("Listing attributes of \"%s\"\n", path)
	tw.printf("listxattr() returned %d\n", res.Length)

	if res.Failed() {
		tw.printf("listxattr() failed: %s\n", message(res.Err))
	} else {
		tw.printf("%sList contents:\n", format.HEADER_INDENT)
	}
}

func (tw *TranscriptWriter) AppendName(name string) {
	tw.printf("%s%s\n", format.LIST_INDENT, name)
}

// AppendAttribute writes one attribute block, hex dump included.
func (tw *TranscriptWriter) AppendAttribute(name string, res reader.Result, value []byte) {

	tw.printf("Getting attribute \"%s\"\n", name)
	tw.printf("getxattr() returned %d\n", res.Length)

	if res.Failed() {
		tw.printf("getxattr() failed: %s\n", message(res.Err))
	} else {
		tw.printf("%sAttribute value:\n", format.HEADER_INDENT)
		tw.appendHex(value)
	}
}

// EndSection closes a block with an empty line.
func (tw *TranscriptWriter) EndSection() {
	tw.printf("\n")
}

func (tw *TranscriptWriter) appendHex(value []byte) {
	if tw.err != nil {
		return
	}
	tw.hex.Reset()
	if _, err := tw.hex.Write(value); err != nil {
		tw.err = errors.Wrap(err, "failed to write transcript")
	}
}

func (tw *TranscriptWriter) Err() error {
	return tw.err
}

func message(err error) string {
	var failure *reader.Failure
	if errors.As(err, &failure) {
		return failure.Message()
	}
	return err.Error()
}
