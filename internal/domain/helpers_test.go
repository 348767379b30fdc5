package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"binres.dev/pkg/binres/internal/adapter"
	m "binres.dev/pkg/binres/internal/model"
)

const testHeader = "/* Copyright (c) Kiwi */"

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mkdirAll(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

// project lays out an input tree, a header and an empty output directory.
type project struct {
	root   string
	input  string
	output string
	header string
}

func newProject(t *testing.T, files map[string][]byte) project {
	t.Helper()

	root := t.TempDir()
	p := project{
		root:   root,
		input:  filepath.Join(root, "Resources", "BinaryRes"),
		output: filepath.Join(root, "Generated"),
		header: filepath.Join(root, "Resources", "SourceHeader.txt"),
	}

	mkdirAll(t, p.input)
	mkdirAll(t, p.output)
	writeFile(t, p.header, []byte(testHeader))

	for rel, content := range files {
		writeFile(t, filepath.Join(p.input, filepath.FromSlash(rel)), content)
	}

	return p
}

func (p project) embedArgs() EmbedArgs {
	return EmbedArgs{
		Input:     m.Path(p.input),
		Output:    m.Path(p.output),
		Header:    m.Path(p.header),
		Basename:  "KiwiApp_BinaryData",
		Namespace: "kiwi",
	}
}

func (p project) read(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(p.output, name))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}

	return string(data)
}

// recordingUI captures what the workflow displays.
type recordingUI struct {
	embedded  []m.Path
	summaries []m.Summary
	inventory []m.Entry
	diffs     []m.DiffResult
}

func (r *recordingUI) DisplayEmbedding(_ context.Context, file *m.File) {
	r.embedded = append(r.embedded, file.RelPath)
}

func (r *recordingUI) DisplaySummary(_ context.Context, summary m.Summary) {
	r.summaries = append(r.summaries, summary)
}

func (r *recordingUI) DisplayInventory(_ context.Context, entries []m.Entry) error {
	r.inventory = entries
	return nil
}

func (r *recordingUI) DisplayDiff(_ context.Context, result m.DiffResult) {
	r.diffs = append(r.diffs, result)
}

// faultyFS injects failures into the local adapter.
type faultyFS struct {
	*adapter.LocalSourceFSAdapter
	readFileErr map[m.Path]error
	readDirErr  map[m.Path]error
	writeErr    error
}

func newFaultyFS() *faultyFS {
	return &faultyFS{
		LocalSourceFSAdapter: adapter.NewLocalSourceFSAdapter(),
		readFileErr:          map[m.Path]error{},
		readDirErr:           map[m.Path]error{},
	}
}

func (f *faultyFS) ReadFile(path m.Path) ([]byte, error) {
	if err, ok := f.readFileErr[path]; ok {
		return nil, err
	}

	return f.LocalSourceFSAdapter.ReadFile(path)
}

func (f *faultyFS) ReadDir(path m.Path) ([]os.DirEntry, error) {
	if err, ok := f.readDirErr[path]; ok {
		return nil, err
	}

	return f.LocalSourceFSAdapter.ReadDir(path)
}

func (f *faultyFS) CreatePending(target m.Path) (adapter.PendingFile, error) {
	pending, err := f.LocalSourceFSAdapter.CreatePending(target)
	if err != nil || f.writeErr == nil {
		return pending, err
	}

	return &failingPending{PendingFile: pending, err: f.writeErr}, nil
}

type failingPending struct {
	adapter.PendingFile
	err error
}

func (p *failingPending) Write([]byte) (int, error) {
	return 0, p.err
}

func newTestWorkflow(fs adapter.SourceFSAdapter, ui *recordingUI) Workflow {
	return NewWorkflow(fs, adapter.NewManifestStore(fs), ui, NewScanner(fs))
}

var errInjected = errors.New("injected failure")

var (
	declIdentifier = regexp.MustCompile(`extern char const\* (\w+);`)
	defIdentifier  = regexp.MustCompile(`const char\* (\w+) = \(const char \*\) (\w+)_array;`)
	scopeLine      = regexp.MustCompile(`(?m)^\s*namespace (\w+)$`)
)

func declaredIdentifiers(src string) []string {
	var ids []string
	for _, match := range declIdentifier.FindAllStringSubmatch(src, -1) {
		ids = append(ids, match[1])
	}

	return ids
}

func definedIdentifiers(src string) []string {
	var ids []string
	for _, match := range defIdentifier.FindAllStringSubmatch(src, -1) {
		ids = append(ids, match[1])
	}

	return ids
}

func scopes(src string) []string {
	var names []string
	for _, match := range scopeLine.FindAllStringSubmatch(src, -1) {
		names = append(names, match[1])
	}

	return names
}
