package storage

import (
	"io"
	"os"

	"github.com/tubevault/tubevault/filesystem"
)

// backendFs lets gache read and write through the active filesystem backend.
type backendFs struct{}

func (backendFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return filesystem.API().OpenFile(name, flag, perm)
}

func (backendFs) MkdirAll(path string, perm os.FileMode) error {
	return filesystem.API().MkdirAll(path, perm)
}
