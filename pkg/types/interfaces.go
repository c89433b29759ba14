package types

import "io/fs"

// FS is the subset of filesystem operations tmplfactory needs. It allows
// swapping the real OS filesystem for an in-memory one in tests.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}
