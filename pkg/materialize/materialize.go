// Package materialize writes a template's files under a project root.
//
// Files are written sequentially in declaration order. The first filesystem
// failure aborts the run: files written before it stay on disk and later
// files are not attempted.
package materialize

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/tmplfactory/pkg/errors"
	"github.com/arthur-debert/tmplfactory/pkg/logging"
	"github.com/arthur-debert/tmplfactory/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultDirMode  fs.FileMode = 0755
	DefaultFileMode fs.FileMode = 0644
)

// Options controls how a Materializer writes.
type Options struct {
	// DryRun computes destinations without touching the filesystem.
	DryRun bool
	// StrictPaths rejects file names that are absolute or climb out of the
	// project root. Off by default, in which case names are joined as-is.
	StrictPaths bool
	// Only restricts writing to files whose relative name matches at least
	// one doublestar pattern. Empty means every file.
	Only []string
	// DirMode and FileMode default to 0755 and 0644 when zero.
	DirMode  fs.FileMode
	FileMode fs.FileMode
}

// Materializer creates project trees from template records.
type Materializer struct {
	fs   types.FS
	opts Options
}

// New returns a Materializer writing through fsys.
func New(fsys types.FS, opts Options) *Materializer {
	if opts.DirMode == 0 {
		opts.DirMode = DefaultDirMode
	}
	if opts.FileMode == 0 {
		opts.FileMode = DefaultFileMode
	}
	return &Materializer{fs: fsys, opts: opts}
}

// Materialize creates projectRootName (and missing ancestors) and writes
// every file of record beneath it, overwriting existing files.
func (m *Materializer) Materialize(record *types.TemplateRecord, projectRootName string) (*types.MaterializeResult, error) {
	if record == nil {
		return nil, errors.New(errors.ErrNoTemplateChosen, "no template selected")
	}
	root := strings.TrimSpace(projectRootName)
	if root == "" {
		return nil, errors.New(errors.ErrEmptyProjectName, "project name cannot be empty")
	}
	if err := validatePatterns(m.opts.Only); err != nil {
		return nil, err
	}
	if m.opts.StrictPaths {
		if err := checkContained(record.Files); err != nil {
			return nil, err
		}
	}

	logger := logging.GetLogger("materialize").With().
		Str("run", uuid.NewString()).
		Str("template", record.Name).
		Str("root", root).
		Bool("dryRun", m.opts.DryRun).
		Logger()
	done := logging.LogOperationStart(logger, "materialize")
	defer done()

	resolved, err := filepath.Abs(root)
	if err != nil {
		resolved = root
	}
	result := &types.MaterializeResult{
		Template:     record.Name,
		Root:         root,
		ResolvedRoot: resolved,
		Paths:        []string{},
		DryRun:       m.opts.DryRun,
	}

	if !m.opts.DryRun {
		if err := m.fs.MkdirAll(root, m.opts.DirMode); err != nil {
			return nil, ioError(err, "create project directory", root)
		}
	}

	for _, file := range record.Files {
		if !m.included(file.Name) {
			result.Skipped = append(result.Skipped, file.Name)
			logger.Debug().Str("file", file.Name).Msg("Skipped by include patterns")
			continue
		}

		dest := filepath.Join(root, filepath.FromSlash(file.Name))
		if !m.opts.DryRun {
			if err := m.writeFile(logger, dest, file.Content); err != nil {
				logger.Error().Err(err).
					Int("written", result.FilesWritten).
					Msg("Materialization aborted")
				return result, err
			}
		}
		result.Paths = append(result.Paths, dest)
		result.FilesWritten++
	}

	logger.Info().
		Int("files", result.FilesWritten).
		Int("skipped", len(result.Skipped)).
		Str("resolvedRoot", resolved).
		Msg("Project materialized")
	return result, nil
}

func (m *Materializer) writeFile(logger zerolog.Logger, dest, content string) error {
	if dir := filepath.Dir(dest); dir != "." {
		if err := m.fs.MkdirAll(dir, m.opts.DirMode); err != nil {
			return ioError(err, "create directory", dir)
		}
	}
	if err := m.fs.WriteFile(dest, []byte(content), m.opts.FileMode); err != nil {
		return ioError(err, "write file", dest)
	}
	logger.Trace().Str("path", dest).Int("bytes", len(content)).Msg("Wrote file")
	return nil
}

func (m *Materializer) included(name string) bool {
	if len(m.opts.Only) == 0 {
		return true
	}
	for _, pattern := range m.opts.Only {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

func validatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return errors.Newf(errors.ErrInvalidInput, "invalid include pattern %q", p).
				WithDetail("pattern", p)
		}
	}
	return nil
}

// checkContained rejects names that would resolve outside the project root.
func checkContained(files []types.FileSpec) error {
	for _, f := range files {
		name := filepath.ToSlash(f.Name)
		if path.IsAbs(name) || filepath.IsAbs(f.Name) || filepath.VolumeName(f.Name) != "" {
			return errors.Newf(errors.ErrPathEscape, "file %q is an absolute path", f.Name).
				WithDetail("path", f.Name)
		}
		clean := path.Clean(name)
		if clean == ".." || strings.HasPrefix(clean, "../") {
			return errors.Newf(errors.ErrPathEscape, "file %q escapes the project root", f.Name).
				WithDetail("path", f.Name)
		}
	}
	return nil
}

func ioError(err error, op, target string) error {
	return errors.Wrapf(err, errors.ErrMaterializeIO, "cannot %s %s", op, target).
		WithDetail("path", target).
		WithDetail("op", op)
}
