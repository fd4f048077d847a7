/*
Copyright © 2022 Morgan Gangwere <morgan.gangwere@gmail.com>
*/
package cmd

import (
	"io"

	"github.com/indrora/lsxattr/lsxattr/format"
	"github.com/indrora/lsxattr/lsxattr/reader"
	"github.com/indrora/lsxattr/lsxattr/writer"
)

// dump lists the attributes of path, then fetches and prints each one.
// Failed calls end up in the transcript; only a failure to write the
// transcript itself is returned.
func dump(out io.Writer, xr *reader.Reader, path string) error {

	tw := writer.NewWriter(out)

	res, list := xr.List(path)
	tw.AppendListing(path, res)

	// A failed list means no names: list is empty, so nothing is fetched below.
	names := format.NewNameReader(list).Names()
	for _, name := range names {
		tw.AppendName(name)
	}
	tw.EndSection()

	for _, name := range names {
		res, value := xr.Get(path, name)
		tw.AppendAttribute(name, res, value)
		tw.EndSection()
	}

	return tw.Err()
}
