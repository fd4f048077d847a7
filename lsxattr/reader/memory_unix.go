//go:build linux || darwin
// +build linux darwin

package reader

import (
	"github.com/indrora/lsxattr/lsxattr/format"
	"github.com/pkg/xattr"
	"golang.org/x/sys/unix"
)

type memoryFile struct {
	names  []string
	values map[string][]byte
}

// MemorySource is an in-memory Source that behaves like the kernel calls:
// ENOENT for unknown paths, ENOATTR for unknown names and ERANGE when the
// caller's buffer is too small. Names are listed in the order they were set.
type MemorySource struct {
	files map[string]*memoryFile
	// Errors returned by Get for specific attribute names, regardless of path.
	GetErrors map[string]error
}

func NewMemorySource() *MemorySource {
	return &MemorySource{
		files:     map[string]*memoryFile{},
		GetErrors: map[string]error{},
	}
}

// Touch makes path exist with no attributes.
func (m *MemorySource) Touch(path string) {
	if _, ok := m.files[path]; !ok {
		m.files[path] = &memoryFile{values: map[string][]byte{}}
	}
}

func (m *MemorySource) Set(path, name string, value []byte) {
	m.Touch(path)
	file := m.files[path]
	if _, ok := file.values[name]; !ok {
		file.names = append(file.names, name)
	}
	file.values[name] = append([]byte(nil), value...)
}

// Remove drops an attribute, as another process might between a list and a get.
func (m *MemorySource) Remove(path, name string) {
	file, ok := m.files[path]
	if !ok {
		return
	}
	delete(file.values, name)
	for idx, n := range file.names {
		if n == name {
			file.names = append(file.names[:idx], file.names[idx+1:]...)
			break
		}
	}
}

func (m *MemorySource) List(path string, dest []byte) (int, error) {

	file, ok := m.files[path]
	if !ok {
		return -1, &xattr.Error{Op: OP_LIST, Path: path, Err: unix.ENOENT}
	}

	packed := format.PackNames(file.names...)
	if len(packed) > len(dest) {
		return -1, &xattr.Error{Op: OP_LIST, Path: path, Err: unix.ERANGE}
	}
	return copy(dest, packed), nil
}

func (m *MemorySource) Get(path string, name string, dest []byte) (int, error) {

	if err, ok := m.GetErrors[name]; ok {
		return -1, &xattr.Error{Op: OP_GET, Path: path, Name: name, Err: err}
	}

	file, ok := m.files[path]
	if !ok {
		return -1, &xattr.Error{Op: OP_GET, Path: path, Name: name, Err: unix.ENOENT}
	}
	value, ok := file.values[name]
	if !ok {
		return -1, &xattr.Error{Op: OP_GET, Path: path, Name: name, Err: xattr.ENOATTR}
	}
	if len(value) > len(dest) {
		return -1, &xattr.Error{Op: OP_GET, Path: path, Name: name, Err: unix.ERANGE}
	}
	return copy(dest, value), nil
}
