// Package model defines the data structures shared by the embedder layers.
package model

import (
	"path"
	"strings"
)

// Path represents a file system path.
type Path string

// Node is one entry of a resource tree: either a *File or a *Directory.
type Node interface {
	// Location returns where the node lives on disk.
	Location() Path
}

// File is a regular file whose bytes get embedded.
type File struct {
	// Path is the on-disk location used to read the content.
	Path Path
	// RelPath is slash separated and relative to the input root.
	RelPath Path
	// Identifier is the generated C++ name of the byte pointer.
	Identifier string
	Size       int64
}

// Location implements Node.
func (f *File) Location() Path {
	return f.Path
}

// Directory mirrors an input directory as a namespace scope.
type Directory struct {
	Path    Path
	RelPath Path
	// Scope is the generated namespace name. Empty for the input root.
	Scope    string
	Children []Node
}

// Location implements Node.
func (d *Directory) Location() Path {
	return d.Path
}

// Walk visits every file below d depth-first in child order, passing the
// namespace scopes that enclose it.
func (d *Directory) Walk(fn func(file *File, scopes []string) error) error {
	return d.walk(nil, fn)
}

func (d *Directory) walk(scopes []string, fn func(file *File, scopes []string) error) error {
	for _, child := range d.Children {
		switch node := child.(type) {
		case *File:
			if err := fn(node, scopes); err != nil {
				return err
			}
		case *Directory:
			nested := append(append([]string(nil), scopes...), node.Scope)
			if err := node.walk(nested, fn); err != nil {
				return err
			}
		}
	}

	return nil
}

// Counts returns the number of files and subdirectories below d.
func (d *Directory) Counts() (files int, dirs int) {
	for _, child := range d.Children {
		switch node := child.(type) {
		case *File:
			files++
		case *Directory:
			f, s := node.Counts()
			files += f
			dirs += s + 1
		}
	}

	return files, dirs
}

// JoinRel appends name to a slash separated relative path.
func JoinRel(parent Path, name string) Path {
	if parent == "" {
		return Path(name)
	}

	return Path(path.Join(string(parent), name))
}

// QualifiedName joins scopes and an identifier the way C++ spells them.
func QualifiedName(scopes []string, identifier string) string {
	if len(scopes) == 0 {
		return identifier
	}

	return strings.Join(scopes, "::") + "::" + identifier
}
