package domain

import (
	"errors"
	"fmt"

	m "binres.dev/pkg/binres/internal/model"
)

var (
	// ErrNotDirectory is wrapped when a path that must be a directory is not.
	ErrNotDirectory = errors.New("not a directory")
	// ErrOutOfDate is returned by Diff when asked to fail on changes.
	ErrOutOfDate = errors.New("generated sources are out of date")
)

// ResourceSourceError reports a missing or unreadable input path.
type ResourceSourceError struct {
	Path m.Path
	Err  error
}

func (e *ResourceSourceError) Error() string {
	return fmt.Sprintf("resource source %s: %v", e.Path, e.Err)
}

func (e *ResourceSourceError) Unwrap() error {
	return e.Err
}

// ResourceWriteError reports an output path that cannot be written.
type ResourceWriteError struct {
	Path m.Path
	Err  error
}

func (e *ResourceWriteError) Error() string {
	return fmt.Sprintf("resource output %s: %v", e.Path, e.Err)
}

func (e *ResourceWriteError) Unwrap() error {
	return e.Err
}

// HeaderMissingError reports an absent or unreadable license header.
type HeaderMissingError struct {
	Path m.Path
	Err  error
}

func (e *HeaderMissingError) Error() string {
	return fmt.Sprintf("license header %s: %v", e.Path, e.Err)
}

func (e *HeaderMissingError) Unwrap() error {
	return e.Err
}

// IdentifierConflictError reports two sibling entries that map to the same
// generated C++ name.
type IdentifierConflictError struct {
	Dir    m.Path
	Name   string
	First  string
	Second string
}

func (e *IdentifierConflictError) Error() string {
	return fmt.Sprintf("resource source %s: %q and %q both generate %q", e.Dir, e.First, e.Second, e.Name)
}
