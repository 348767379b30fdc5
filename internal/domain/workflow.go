// Package domain implements resource scanning and C++ code generation.
package domain

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"binres.dev/pkg/binres/internal/adapter"
	"binres.dev/pkg/binres/internal/controller"
	m "binres.dev/pkg/binres/internal/model"
)

// Extensions of the generated translation units.
const (
	DeclarationsExt = ".h"
	DefinitionsExt  = ".cpp"
)

var cppIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// EmbedArgs contains the arguments of one embedding run.
type EmbedArgs struct {
	Input  m.Path
	Output m.Path
	Header m.Path
	// Basename names the artifacts: <Basename>.h and <Basename>.cpp.
	Basename  string
	Namespace string
	// Manifest, when set, receives a YAML inventory of the run.
	Manifest m.Path
}

// InventoryArgs selects what the list command displays.
type InventoryArgs struct {
	Input m.Path
	// Manifest, when set, is displayed instead of scanning Input.
	Manifest m.Path
}

// DiffArgs contains the arguments for comparing outputs against a fresh render.
type DiffArgs struct {
	EmbedArgs
	FailOnChange bool
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Embed(ctx context.Context, args EmbedArgs) error
	Inventory(ctx context.Context, args InventoryArgs) error
	Diff(ctx context.Context, args DiffArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ManifestStore
	controller.UI
	Scanner
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	manifestStore adapter.ManifestStore,
	ui controller.UI,
	scanner Scanner,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ManifestStore:   manifestStore,
		UI:              ui,
		Scanner:         scanner,
	}
}

// Artifacts returns the generated file paths for args.
func (args EmbedArgs) Artifacts() m.ArtifactPair {
	return m.ArtifactPair{
		Declarations: joinPath(args.Output, args.Basename+DeclarationsExt),
		Definitions:  joinPath(args.Output, args.Basename+DefinitionsExt),
	}
}

func (args EmbedArgs) validate() error {
	switch {
	case strings.TrimSpace(string(args.Input)) == "":
		return fmt.Errorf("input directory is required")
	case strings.TrimSpace(string(args.Output)) == "":
		return fmt.Errorf("output directory is required")
	case strings.TrimSpace(string(args.Header)) == "":
		return fmt.Errorf("license header path is required")
	case args.Basename == "" || strings.ContainsAny(args.Basename, `/\`):
		return fmt.Errorf("invalid artifact basename %q", args.Basename)
	case !cppIdentifier.MatchString(args.Namespace):
		return fmt.Errorf("invalid namespace %q", args.Namespace)
	}

	return nil
}

// Embed scans the input, renders both artifacts into temporary files in the
// output directory and renames them into place only when everything
// succeeded. Existing artifacts are left untouched on failure.
func (w *workflow) Embed(ctx context.Context, args EmbedArgs) error {
	if err := args.validate(); err != nil {
		return err
	}

	tree, header, err := w.prepare(ctx, args)
	if err != nil {
		return err
	}

	if err := w.checkOutputDir(args.Output); err != nil {
		return err
	}

	artifacts := args.Artifacts()

	decl, err := w.CreatePending(artifacts.Declarations)
	if err != nil {
		return &ResourceWriteError{Path: artifacts.Declarations, Err: err}
	}

	defer func() { _ = decl.Abort() }()

	defs, err := w.CreatePending(artifacts.Definitions)
	if err != nil {
		return &ResourceWriteError{Path: artifacts.Definitions, Err: err}
	}

	defer func() { _ = defs.Abort() }()

	summary := m.Summary{Artifacts: artifacts}
	_, summary.Directories = tree.Counts()

	opts := RenderOptions{
		Header:    header,
		Namespace: args.Namespace,
		ReadFile:  w.ReadFile,
		OnFile: func(file *m.File, scopes []string, data []byte) {
			w.DisplayEmbedding(ctx, file)
			slog.Debug("embedded resource", "path", file.Path, "identifier", file.Identifier, "size", len(data))

			summary.Files++
			summary.Bytes += int64(len(data))
			summary.Entries = append(summary.Entries, m.Entry{
				Path:       file.RelPath,
				Namespace:  scopes,
				Identifier: file.Identifier,
				Size:       int64(len(data)),
				SHA256:     fmt.Sprintf("%x", sha256.Sum256(data)),
			})
		},
	}

	err = Render(ctx, tree, opts,
		Stream{Path: decl.Target(), W: decl},
		Stream{Path: defs.Target(), W: defs},
	)
	if err != nil {
		slog.Error("embedding failed", "input", args.Input, "error", err)
		return err
	}

	for _, pending := range []adapter.PendingFile{defs, decl} {
		if err := pending.Commit(); err != nil {
			slog.Error("failed to commit generated source", "path", pending.Target(), "error", err)
			return &ResourceWriteError{Path: pending.Target(), Err: err}
		}
	}

	if args.Manifest != "" {
		if err := w.SaveManifest(args.Manifest, w.newManifest(args, summary)); err != nil {
			return &ResourceWriteError{Path: args.Manifest, Err: err}
		}
	}

	slog.Info("generated binary data",
		"declarations", artifacts.Declarations,
		"definitions", artifacts.Definitions,
		"files", summary.Files,
		"bytes", summary.Bytes,
	)

	w.DisplaySummary(ctx, summary)

	return nil
}

// Inventory displays what an embedding run would contain.
func (w *workflow) Inventory(ctx context.Context, args InventoryArgs) error {
	if args.Manifest != "" {
		manifest, err := w.LoadManifest(args.Manifest)
		if err != nil {
			return err
		}

		return w.DisplayInventory(ctx, manifest.Entries)
	}

	tree, err := w.Scan(ctx, args.Input)
	if err != nil {
		return err
	}

	var entries []m.Entry

	err = tree.Walk(func(file *m.File, scopes []string) error {
		entries = append(entries, m.Entry{
			Path:       file.RelPath,
			Namespace:  scopes,
			Identifier: file.Identifier,
			Size:       file.Size,
		})

		return nil
	})
	if err != nil {
		return err
	}

	return w.DisplayInventory(ctx, entries)
}

// Diff renders both artifacts in memory and compares them with the files in
// the output directory. Nothing is written.
func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	if err := args.validate(); err != nil {
		return err
	}

	tree, header, err := w.prepare(ctx, args.EmbedArgs)
	if err != nil {
		return err
	}

	artifacts := args.Artifacts()

	var decl, defs bytes.Buffer

	opts := RenderOptions{Header: header, Namespace: args.Namespace, ReadFile: w.ReadFile}

	err = Render(ctx, tree, opts,
		Stream{Path: artifacts.Declarations, W: &decl},
		Stream{Path: artifacts.Definitions, W: &defs},
	)
	if err != nil {
		return err
	}

	var result m.DiffResult

	for _, generated := range []struct {
		path    m.Path
		content []byte
	}{
		{artifacts.Declarations, decl.Bytes()},
		{artifacts.Definitions, defs.Bytes()},
	} {
		fileDiff, err := w.diffFile(generated.path, generated.content)
		if err != nil {
			return err
		}

		result.Files = append(result.Files, fileDiff)
	}

	w.DisplayDiff(ctx, result)

	if args.FailOnChange && result.Changed() {
		return ErrOutOfDate
	}

	return nil
}

// prepare scans the input tree and loads the license header.
func (w *workflow) prepare(ctx context.Context, args EmbedArgs) (*m.Directory, []byte, error) {
	tree, err := w.Scan(ctx, args.Input)
	if err != nil {
		return nil, nil, err
	}

	header, err := w.ReadFile(args.Header)
	if err != nil {
		return nil, nil, &HeaderMissingError{Path: args.Header, Err: err}
	}

	return tree, header, nil
}

func (w *workflow) checkOutputDir(output m.Path) error {
	info, err := w.FileInfo(output)
	if err != nil {
		return &ResourceWriteError{Path: output, Err: err}
	}

	if !info.IsDir() {
		return &ResourceWriteError{Path: output, Err: ErrNotDirectory}
	}

	return nil
}

func (w *workflow) diffFile(path m.Path, generated []byte) (m.FileDiff, error) {
	current, err := w.ReadFile(path)
	exists := err == nil

	if err != nil && !adapter.IsNotExist(err) {
		return m.FileDiff{}, &ResourceWriteError{Path: path, Err: err}
	}

	if exists && bytes.Equal(current, generated) {
		return m.FileDiff{Path: path, Exists: true}, nil
	}

	diff := difflib.UnifiedDiff{
		B:        difflib.SplitLines(string(generated)),
		FromFile: "/dev/null",
		ToFile:   string(path),
		Context:  3,
	}

	if exists {
		diff.A = difflib.SplitLines(string(current))
		diff.FromFile = string(path)
	}

	unified, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return m.FileDiff{}, fmt.Errorf("diff %s: %w", path, err)
	}

	return m.FileDiff{Path: path, Exists: exists, Changed: true, Unified: unified}, nil
}

func joinPath(dir m.Path, name string) m.Path {
	return m.Path(filepath.Join(string(dir), name))
}

// newManifest records the input relative to the manifest's directory when
// possible so a checked-in manifest does not depend on the working directory.
func (w *workflow) newManifest(args EmbedArgs, summary m.Summary) m.Manifest {
	input := args.Input
	if rel, err := w.RelPath(m.Path(filepath.Dir(string(args.Manifest))), args.Input); err == nil {
		input = m.Path(filepath.ToSlash(string(rel)))
	}

	return m.Manifest{
		Version:   m.ManifestVersion,
		Input:     input,
		Namespace: args.Namespace,
		Artifacts: summary.Artifacts,
		Entries:   summary.Entries,
	}
}
