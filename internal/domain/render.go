package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	m "binres.dev/pkg/binres/internal/model"
)

const (
	indentUnit   = "    "
	bytesPerLine = 16
	hexDigits    = "0123456789abcdef"

	// BinaryDataNamespace is the fixed scope every resource is declared in.
	BinaryDataNamespace = "binary_data"

	generatedBanner = "// ============================================================================\n" +
		"// This is an auto-generated file: Any edits you make may be overwritten!\n" +
		"// ============================================================================\n\n"
)

// Stream is a named destination for generated code.
type Stream struct {
	Path m.Path
	W    io.Writer
}

// RenderOptions configures Render.
type RenderOptions struct {
	// Header is the license text prefixed verbatim to both streams.
	Header []byte
	// Namespace is the outermost scope wrapping binary_data.
	Namespace string
	// ReadFile loads the bytes of an embedded file.
	ReadFile func(path m.Path) ([]byte, error)
	// OnFile, if set, is called once both streams hold the file's code.
	OnFile func(file *m.File, scopes []string, data []byte)
}

// Render writes the declarations and definitions of tree to decl and defs.
// Both streams receive the same scopes and identifiers in the same order.
func Render(ctx context.Context, tree *m.Directory, opts RenderOptions, decl, defs Stream) error {
	if opts.ReadFile == nil {
		return errors.New("render: ReadFile is required")
	}

	r := &renderer{
		opts: opts,
		decl: &codeWriter{w: decl.W, path: decl.Path},
		defs: &codeWriter{w: defs.W, path: defs.Path},
	}

	r.preamble()

	if err := r.directory(ctx, tree, nil); err != nil {
		return err
	}

	r.closeScope()
	r.closeScope()

	return r.err()
}

type renderer struct {
	opts RenderOptions
	decl *codeWriter
	defs *codeWriter
}

func (r *renderer) preamble() {
	for _, w := range []*codeWriter{r.decl, r.defs} {
		w.write(string(r.opts.Header))
		w.write("\n")
		w.write(generatedBanner)
	}

	r.decl.write("#pragma once\n\n")

	r.openScope(r.opts.Namespace)
	r.openScope(BinaryDataNamespace)
}

func (r *renderer) directory(ctx context.Context, dir *m.Directory, scopes []string) error {
	for _, child := range dir.Children {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch node := child.(type) {
		case *m.File:
			if err := r.file(node, scopes); err != nil {
				return err
			}
		case *m.Directory:
			r.openScope(node.Scope)

			nested := append(append([]string(nil), scopes...), node.Scope)
			if err := r.directory(ctx, node, nested); err != nil {
				return err
			}

			r.closeScope()
		}

		if err := r.err(); err != nil {
			return err
		}
	}

	return nil
}

func (r *renderer) file(file *m.File, scopes []string) error {
	data, err := r.opts.ReadFile(file.Path)
	if err != nil {
		return &ResourceSourceError{Path: file.Path, Err: err}
	}

	file.Size = int64(len(data))
	id := file.Identifier

	r.decl.line("extern char const* " + id + ";")
	r.decl.line(fmt.Sprintf("const int %s_size = %d;", id, len(data)))
	r.decl.line("")

	// A zero-length array is ill-formed C++, so empty files get one
	// zero-initialised element while the size constant stays 0.
	if len(data) == 0 {
		r.defs.line("static const unsigned char " + id + "_array[1] =")
	} else {
		r.defs.line("static const unsigned char " + id + "_array[] =")
	}

	r.defs.line("{")
	r.defs.hexBytes(data)
	r.defs.line("};")
	r.defs.line("")
	r.defs.line(fmt.Sprintf("const char* %s = (const char *) %s_array;", id, id))
	r.defs.line("")

	if err := r.err(); err != nil {
		return err
	}

	if r.opts.OnFile != nil {
		r.opts.OnFile(file, scopes, data)
	}

	return nil
}

func (r *renderer) openScope(name string) {
	r.decl.openScope(name)
	r.defs.openScope(name)
}

func (r *renderer) closeScope() {
	r.defs.closeScope()
	r.decl.closeScope()
}

func (r *renderer) err() error {
	if r.decl.err != nil {
		return r.decl.err
	}

	return r.defs.err
}

// codeWriter indents by nesting depth and keeps the first write error.
type codeWriter struct {
	w     io.Writer
	path  m.Path
	depth int
	err   error
}

func (c *codeWriter) write(s string) {
	if c.err != nil {
		return
	}

	if _, err := io.WriteString(c.w, s); err != nil {
		c.err = &ResourceWriteError{Path: c.path, Err: err}
	}
}

// line writes s indented at the current depth. Empty lines carry no indent.
func (c *codeWriter) line(s string) {
	if s != "" {
		c.write(strings.Repeat(indentUnit, c.depth))
	}

	c.write(s + "\n")
}

func (c *codeWriter) openScope(name string) {
	c.line("namespace " + name)
	c.line("{")
	c.depth++
}

func (c *codeWriter) closeScope() {
	c.depth--
	c.line("}")
}

// hexBytes writes data as comma separated 0xNN literals, bytesPerLine per
// line, one level deeper than the enclosing braces. Nothing is written for
// empty data.
func (c *codeWriter) hexBytes(data []byte) {
	c.depth++
	defer func() { c.depth-- }()

	var b strings.Builder

	for start := 0; start < len(data); start += bytesPerLine {
		end := min(start+bytesPerLine, len(data))

		b.Reset()

		for i, v := range data[start:end] {
			if i > 0 {
				b.WriteString(", ")
			}

			b.WriteString("0x")
			b.WriteByte(hexDigits[v>>4])
			b.WriteByte(hexDigits[v&0x0f])
		}

		if end < len(data) {
			b.WriteByte(',')
		}

		c.line(b.String())
	}
}
