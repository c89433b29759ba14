// Package filesystem provides the types.FS implementations. Both the disk
// and the in-memory variant are afero filesystems, so the CLI and the tests
// go through the same code.
package filesystem
