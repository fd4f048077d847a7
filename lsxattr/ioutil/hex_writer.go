package ioutil

import (
	"bytes"
	"fmt"
	"io"

	"github.com/indrora/lsxattr/lsxattr/format"
	"github.com/pkg/errors"
)

// HexWriter renders everything written to it as a grouped hex dump:
//
//	0x00 0x01 0x02 0x03 0x04 0x05 0x06 0x07
//	0x08
//
// A newline is only written when a byte completes a group, so a partial
// final group is left open.
type HexWriter struct {
	writer            io.Writer
	writtenSinceReset uint64
	groupSize         uint64
}

func NewHexWriter(destination io.Writer, groupSize uint64) *HexWriter {
	return &HexWriter{
		writer:            destination,
		groupSize:         groupSize,
		writtenSinceReset: 0,
	}
}

// Write formats p and returns len(p) on success, the number of source bytes consumed.
func (h *HexWriter) Write(p []byte) (n int, err error) {

	line := new(bytes.Buffer)

	for _, b := range p {
		if h.writtenSinceReset%h.groupSize == 0 {
			line.WriteString(format.HEX_INDENT)
		} else {
			line.WriteByte(' ')
		}

		fmt.Fprintf(line, format.HEX_FORMAT, b)
		h.writtenSinceReset++

		if h.writtenSinceReset%h.groupSize == 0 {
			line.WriteByte('\n')
		}
	}

	if _, err = h.writer.Write(line.Bytes()); err != nil {
		return 0, errors.Wrap(err, "failed to write hex dump")
	}
	return len(p), nil
}

// Reset starts a new dump; the next byte opens a fresh group.
func (h *HexWriter) Reset() {
	h.writtenSinceReset = 0
}

// Dump writes data to w as a single hex dump.
func Dump(w io.Writer, data []byte) error {
	_, err := NewHexWriter(w, format.HEX_GROUP).Write(data)
	return err
}
