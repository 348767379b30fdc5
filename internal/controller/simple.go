package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "binres.dev/pkg/binres/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

var (
	successColor = color.New(color.FgGreen, color.Bold)
	changedColor = color.New(color.FgYellow, color.Bold)
)

// DisplayEmbedding announces the file currently being converted.
func (s *SimpleUI) DisplayEmbedding(ctx context.Context, file *m.File) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Extracting binary data for file %s\n", file.Path)
}

// DisplaySummary prints the generated artifacts and totals.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %s, %s\n",
		successColor.Sprint("Generated"),
		summary.Artifacts.Declarations,
		summary.Artifacts.Definitions,
	)
	s.printf("Embedded %d file(s) from %d subdirectories (%s)\n",
		summary.Files, summary.Directories, formatBytes(summary.Bytes))
}

// DisplayInventory prints one table row per resource that would be embedded.
func (s *SimpleUI) DisplayInventory(ctx context.Context, entries []m.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderInventoryTable(entries))

	return nil
}

// DisplayDiff prints unified diffs, or a notice that the artifacts are current.
func (s *SimpleUI) DisplayDiff(ctx context.Context, result m.DiffResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, file := range result.Files {
		switch {
		case !file.Changed:
			s.printf("%s %s\n", successColor.Sprint("up to date"), file.Path)
		case !file.Exists:
			s.printf("%s %s\n", changedColor.Sprint("missing"), file.Path)
		default:
			s.printf("%s %s\n", changedColor.Sprint("changed"), file.Path)
			s.printf("%s", file.Unified)
		}
	}
}

func renderInventoryTable(entries []m.Entry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Symbol", "Size"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	var total int64

	for _, entry := range entries {
		table.Append([]string{string(entry.Path), entry.Qualified(), fmt.Sprintf("%d", entry.Size)})
		total += entry.Size
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(entries)),
		"",
		formatBytes(total),
	})

	table.Render()

	return tableBuffer.String()
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for q := n / unit; q >= unit; q /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
