// Package factory is the action boundary between a presentation layer and
// the catalog and materializer core.
//
// Each action (load, select, create) reports its outcome through a
// types.UI and never lets a failure escape as a crash. Actions still return
// the classified error so callers can pick an exit status. Loaded catalog
// and current selection travel as an explicit State value.
package factory
