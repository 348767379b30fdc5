// Package controller provides output adapters for displaying embedding progress and results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "binres.dev/pkg/binres/internal/model"
)

// UI defines how the workflow reports progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayEmbedding(ctx context.Context, file *m.File)
	DisplaySummary(ctx context.Context, summary m.Summary)
	DisplayInventory(ctx context.Context, entries []m.Entry) error
	DisplayDiff(ctx context.Context, result m.DiffResult)
}

// NewUI returns the interactive UI when tty is true and the plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
