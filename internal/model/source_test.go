package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() *Directory {
	return &Directory{
		Path: "res",
		Children: []Node{
			&Directory{
				Path:    "res/Fonts",
				RelPath: "Fonts",
				Scope:   "fonts",
				Children: []Node{
					&Directory{Path: "res/Fonts/Bold", RelPath: "Fonts/Bold", Scope: "bold", Children: []Node{
						&File{Path: "res/Fonts/Bold/a.ttf", RelPath: "Fonts/Bold/a.ttf", Identifier: "a_ttf"},
					}},
					&File{Path: "res/Fonts/b.ttf", RelPath: "Fonts/b.ttf", Identifier: "b_ttf"},
				},
			},
			&Directory{Path: "res/Empty", RelPath: "Empty", Scope: "empty"},
			&File{Path: "res/logo.png", RelPath: "logo.png", Identifier: "logo_png"},
		},
	}
}

func TestDirectory_Walk(t *testing.T) {
	var visited []string

	err := testTree().Walk(func(file *File, scopes []string) error {
		visited = append(visited, QualifiedName(scopes, file.Identifier))
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"fonts::bold::a_ttf", "fonts::b_ttf", "logo_png"}, visited)
}

func TestDirectory_WalkScopesAreNotShared(t *testing.T) {
	var kept [][]string

	err := testTree().Walk(func(_ *File, scopes []string) error {
		kept = append(kept, scopes)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"fonts", "bold"}, {"fonts"}, nil}, kept)
}

func TestDirectory_WalkStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0

	err := testTree().Walk(func(*File, []string) error {
		calls++
		return stop
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestDirectory_Counts(t *testing.T) {
	files, dirs := testTree().Counts()

	assert.Equal(t, 3, files)
	assert.Equal(t, 3, dirs)

	files, dirs = (&Directory{}).Counts()
	assert.Zero(t, files)
	assert.Zero(t, dirs)
}

func TestJoinRel(t *testing.T) {
	assert.Equal(t, Path("a.bin"), JoinRel("", "a.bin"))
	assert.Equal(t, Path("Images/a.bin"), JoinRel("Images", "a.bin"))
	assert.Equal(t, Path("A/B/c"), JoinRel("A/B", "c"))
}

func TestQualifiedName(t *testing.T) {
	assert.Equal(t, "logo_png", QualifiedName(nil, "logo_png"))
	assert.Equal(t, "a::b::f_bin", QualifiedName([]string{"a", "b"}, "f_bin"))
}

func TestNodeLocation(t *testing.T) {
	var nodes []Node = []Node{&File{Path: "x"}, &Directory{Path: "y"}}

	assert.Equal(t, Path("x"), nodes[0].Location())
	assert.Equal(t, Path("y"), nodes[1].Location())
}

func TestDiffResult_Changed(t *testing.T) {
	assert.False(t, DiffResult{}.Changed())
	assert.False(t, DiffResult{Files: []FileDiff{{Path: "a.h", Exists: true}}}.Changed())
	assert.True(t, DiffResult{Files: []FileDiff{{Path: "a.h", Exists: true}, {Path: "a.cpp", Changed: true}}}.Changed())
}

func TestEntry_Qualified(t *testing.T) {
	assert.Equal(t, "sounds::beep_wav", Entry{Namespace: []string{"sounds"}, Identifier: "beep_wav"}.Qualified())
}
