package domain

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"

	"binres.dev/pkg/binres/internal/adapter"
	m "binres.dev/pkg/binres/internal/model"
)

// Scanner builds the resource tree of an input directory.
type Scanner interface {
	Scan(ctx context.Context, root m.Path) (*m.Directory, error)
}

type scanner struct {
	fs adapter.SourceFSAdapter
}

// NewScanner creates a Scanner reading through fs.
func NewScanner(fs adapter.SourceFSAdapter) Scanner {
	return &scanner{fs: fs}
}

type entryKind int

const (
	kindSkip entryKind = iota
	kindFile
	kindDirectory
)

// Scan lists root depth-first. Children are ordered by name, hidden entries
// are dropped at every depth, and sibling name clashes are rejected.
func (s *scanner) Scan(ctx context.Context, root m.Path) (*m.Directory, error) {
	info, err := s.fs.FileInfo(root)
	if err != nil {
		return nil, &ResourceSourceError{Path: root, Err: err}
	}

	if !info.IsDir() {
		return nil, &ResourceSourceError{Path: root, Err: ErrNotDirectory}
	}

	tree := &m.Directory{Path: root}
	if err := s.scanDir(ctx, tree); err != nil {
		return nil, err
	}

	files, dirs := tree.Counts()
	slog.Debug("scanned resources", "root", root, "files", files, "directories", dirs)

	return tree, nil
}

func (s *scanner) scanDir(ctx context.Context, dir *m.Directory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := s.fs.ReadDir(dir.Path)
	if err != nil {
		return &ResourceSourceError{Path: dir.Path, Err: err}
	}

	slices.SortFunc(entries, func(a, b os.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	claimed := make(map[string]string, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		path := s.fs.JoinPath(string(dir.Path), name)

		if IsHidden(name) {
			slog.Debug("skipping hidden entry", "path", path)
			continue
		}

		kind, size, err := s.classify(path, entry)
		if err != nil {
			return err
		}

		switch kind {
		case kindFile:
			file := &m.File{
				Path:       path,
				RelPath:    m.JoinRel(dir.RelPath, name),
				Identifier: Identifier(name),
				Size:       size,
			}
			if err := claim(claimed, dir.Path, file.Identifier, name); err != nil {
				return err
			}

			dir.Children = append(dir.Children, file)
		case kindDirectory:
			child := &m.Directory{
				Path:    path,
				RelPath: m.JoinRel(dir.RelPath, name),
				Scope:   ScopeName(name),
			}
			if err := claim(claimed, dir.Path, child.Scope, name); err != nil {
				return err
			}

			if err := s.scanDir(ctx, child); err != nil {
				return err
			}

			dir.Children = append(dir.Children, child)
		case kindSkip:
			slog.Debug("skipping entry that is neither a regular file nor a directory", "path", path)
		}
	}

	return nil
}

// classify resolves symlinks to regular files. Symlinked directories are not
// followed so a link cycle cannot recurse forever.
func (s *scanner) classify(path m.Path, entry os.DirEntry) (entryKind, int64, error) {
	mode := entry.Type()

	switch {
	case mode&os.ModeSymlink != 0:
		info, err := s.fs.FileInfo(path)
		if err != nil {
			if adapter.IsNotExist(err) {
				return kindSkip, 0, nil
			}

			return kindSkip, 0, &ResourceSourceError{Path: path, Err: err}
		}

		if info.Mode().IsRegular() {
			return kindFile, info.Size(), nil
		}

		return kindSkip, 0, nil
	case entry.IsDir():
		return kindDirectory, 0, nil
	case mode.IsRegular():
		info, err := entry.Info()
		if err != nil {
			return kindSkip, 0, &ResourceSourceError{Path: path, Err: err}
		}

		return kindFile, info.Size(), nil
	}

	return kindSkip, 0, nil
}

func claim(claimed map[string]string, dir m.Path, generated, name string) error {
	if previous, ok := claimed[generated]; ok {
		return &IdentifierConflictError{Dir: dir, Name: generated, First: previous, Second: name}
	}

	claimed[generated] = name

	return nil
}
