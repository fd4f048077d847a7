package format

import (
	"bytes"
	"io"
)

// NameReader walks a packed name list one name at a time.
// It only ever sees the slice it was given, so callers hand it buf[:n]
// and nothing past the kernel-reported length can be read.
type NameReader struct {
	list   []byte
	cursor int
}

func NewNameReader(list []byte) *NameReader {
	return &NameReader{
		list:   list,
		cursor: 0,
	}
}

// Next returns the next name in the list, or io.EOF once the cursor reaches
// the end. A final name without a terminator is returned up to the end of
// the list.
func (nr *NameReader) Next() (string, error) {

	if nr.cursor >= len(nr.list) {
		return "", io.EOF
	}

	rest := nr.list[nr.cursor:]
	end := bytes.IndexByte(rest, NAME_TERMINATOR)
	if end < 0 {
		nr.cursor = len(nr.list)
		return string(rest), nil
	}

	nr.cursor += end + 1
	return string(rest[:end]), nil
}

// Offset reports how far into the list the reader has advanced.
func (nr *NameReader) Offset() int {
	return nr.cursor
}

// Names drains the reader.
func (nr *NameReader) Names() []string {
	names := make([]string, 0)
	for {
		name, err := nr.Next()
		if err == io.EOF {
			return names
		}
		names = append(names, name)
	}
}

// PackNames builds the packed encoding of names, each followed by its terminator.
func PackNames(names ...string) []byte {
	buf := new(bytes.Buffer)
	for _, name := range names {
		buf.WriteString(name)
		buf.WriteByte(NAME_TERMINATOR)
	}
	return buf.Bytes()
}
