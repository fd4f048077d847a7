//go:build linux || darwin
// +build linux darwin

package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/indrora/lsxattr/lsxattr/format"
	"github.com/pkg/errors"
	"github.com/pkg/xattr"
	"golang.org/x/sys/unix"
)

func setupAttributes(t *testing.T, values map[string][]byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "target")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	for name, value := range values {
		if err := xattr.Set(path, name, value); err != nil {
			var xerr *xattr.Error
			if errors.As(err, &xerr) && (xerr.Err == unix.ENOTSUP || xerr.Err == unix.EPERM) {
				t.Skipf("filesystem does not support user xattrs: %v", err)
			}
			t.Fatal(err)
		}
	}
	return path
}

func TestSystemReaderRoundTrip(t *testing.T) {

	values := map[string][]byte{
		"user.lsxattr.text":   []byte("hello"),
		"user.lsxattr.binary": {0x00, 0xff, 0x10, 0x80},
	}
	path := setupAttributes(t, values)

	reader := NewSystemReader()
	res, list := reader.List(path)
	if res.Failed() {
		t.Fatalf("list failed: %v", res.Err)
	}

	found := map[string]bool{}
	for _, name := range format.NewNameReader(list).Names() {
		found[name] = true
	}

	for name, want := range values {
		if !found[name] {
			t.Errorf("%s missing from the list", name)
			continue
		}
		res, got := reader.Get(path, name)
		if res.Failed() {
			t.Errorf("get %s failed: %v", name, res.Err)
			continue
		}
		if string(got) != string(want) {
			t.Errorf("%s: got %x, want %x", name, got, want)
		}
	}
}

func TestSystemReaderTruncation(t *testing.T) {

	path := setupAttributes(t, map[string][]byte{
		"user.lsxattr.long": []byte("this value does not fit"),
	})

	res, _ := NewReader(SystemSource{}, 4).Get(path, "user.lsxattr.long")

	var failure *Failure
	if !errors.As(res.Err, &failure) {
		t.Fatalf("expected a failure, got %+v", res)
	}
	if failure.Kind != FAILURE_TOO_LARGE {
		t.Errorf("expected a too-large failure, got %v (%v)", failure.Kind, failure)
	}
}

func TestSystemReaderMissingPath(t *testing.T) {

	path := filepath.Join(t.TempDir(), "does-not-exist")

	res, list := NewSystemReader().List(path)

	var failure *Failure
	if !errors.As(res.Err, &failure) {
		t.Fatalf("expected a failure, got %+v", res)
	}
	if failure.Kind != FAILURE_NOT_FOUND {
		t.Errorf("expected not-found, got %v", failure.Kind)
	}
	if failure.Message() != unix.ENOENT.Error() {
		t.Errorf("unexpected message %q", failure.Message())
	}
	if res.Length != -1 || len(list) != 0 {
		t.Errorf("unexpected result %+v %q", res, list)
	}
}
