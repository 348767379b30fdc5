package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	m "binres.dev/pkg/binres/internal/model"
)

const generatedFileMode os.FileMode = 0o644

// ErrPendingClosed is returned when writing to a committed or aborted file.
var ErrPendingClosed = errors.New("pending file already closed")

// PendingFile is a buffered temporary file that replaces its target on Commit.
// Abort discards it; calling Abort after Commit is a no-op so it can be
// deferred unconditionally.
type PendingFile interface {
	Write(p []byte) (int, error)
	// Target is the path the file is renamed to on Commit.
	Target() m.Path
	Commit() error
	Abort() error
}

type localPendingFile struct {
	target m.Path
	file   *os.File
	buf    *bufio.Writer
	closed bool
}

func newLocalPendingFile(target m.Path) (*localPendingFile, error) {
	dir, base := filepath.Split(string(target))
	if dir == "" {
		dir = "."
	}

	file, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return nil, err
	}

	slog.Debug("opened pending file", "target", target, "temp", file.Name())

	return &localPendingFile{
		target: target,
		file:   file,
		buf:    bufio.NewWriter(file),
	}, nil
}

// Write implements io.Writer.
func (p *localPendingFile) Write(b []byte) (int, error) {
	if p.closed {
		return 0, ErrPendingClosed
	}

	return p.buf.Write(b)
}

// Target implements PendingFile.
func (p *localPendingFile) Target() m.Path {
	return p.target
}

// Commit flushes, closes and renames the temporary file over the target.
func (p *localPendingFile) Commit() error {
	if p.closed {
		return ErrPendingClosed
	}

	p.closed = true
	tmp := p.file.Name()

	if err := p.buf.Flush(); err != nil {
		_ = p.file.Close()
		_ = os.Remove(tmp)

		return fmt.Errorf("flush %s: %w", tmp, err)
	}

	if err := p.file.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}

	if err := os.Chmod(tmp, generatedFileMode); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("chmod %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, string(p.target)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}

	slog.Debug("committed pending file", "target", p.target)

	return nil
}

// Abort removes the temporary file.
func (p *localPendingFile) Abort() error {
	if p.closed {
		return nil
	}

	p.closed = true
	tmp := p.file.Name()

	closeErr := p.file.Close()
	removeErr := os.Remove(tmp)

	slog.Debug("aborted pending file", "target", p.target, "temp", tmp)

	return errors.Join(closeErr, removeErr)
}
