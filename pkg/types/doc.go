// Package types defines the core data structures and interfaces shared by
// tmplfactory's packages: template records as they are read from a catalog
// file, the result of materializing one, and the filesystem and UI seams the
// core depends on.
package types
