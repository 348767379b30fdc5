package controller

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "binres.dev/pkg/binres/internal/model"
)

func manyEntries(n int) []m.Entry {
	entries := make([]m.Entry, n)
	for i := range entries {
		entries[i] = m.Entry{
			Path:       m.Path(fmt.Sprintf("file%02d.bin", i)),
			Identifier: fmt.Sprintf("file%02d_bin", i),
			Size:       10,
		}
	}

	return entries
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, model inventoryModel, msg tea.Msg) inventoryModel {
	t.Helper()

	next, _ := model.Update(msg)

	updated, ok := next.(inventoryModel)
	require.True(t, ok)

	return updated
}

func TestInventoryModel_Scrolling(t *testing.T) {
	model := newInventoryModel(manyEntries(10))
	assert.Equal(t, int64(100), model.total)
	assert.Nil(t, model.Init())

	// 8 rows leave 3 for entries.
	model = update(t, model, tea.WindowSizeMsg{Width: 80, Height: 8})
	assert.Equal(t, 3, model.itemsPerPage())
	assert.Equal(t, 7, model.maxOffset())

	tests := []struct {
		name string
		msg  tea.Msg
		want int
	}{
		{"down", tea.KeyMsg{Type: tea.KeyDown}, 1},
		{"j", runeKey('j'), 2},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, 1},
		{"page down", runeKey('d'), 4},
		{"page down clamps", tea.KeyMsg{Type: tea.KeyPgDown}, 7},
		{"down at bottom", runeKey('j'), 7},
		{"page up", runeKey('u'), 4},
		{"top", runeKey('g'), 0},
		{"up at top", runeKey('k'), 0},
		{"bottom", runeKey('G'), 7},
	}

	for _, tt := range tests {
		model = update(t, model, tt.msg)
		assert.Equal(t, tt.want, model.offset, tt.name)
	}
}

func TestInventoryModel_ResizeClampsOffset(t *testing.T) {
	model := newInventoryModel(manyEntries(10))
	model = update(t, model, tea.WindowSizeMsg{Width: 80, Height: 8})
	model = update(t, model, runeKey('G'))
	require.Equal(t, 7, model.offset)

	model = update(t, model, tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Equal(t, 0, model.offset)
}

func TestInventoryModel_Quit(t *testing.T) {
	model := newInventoryModel(manyEntries(2))

	next, cmd := model.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestInventoryModel_View(t *testing.T) {
	t.Run("shows the visible page", func(t *testing.T) {
		model := newInventoryModel(manyEntries(10))
		model = update(t, model, tea.WindowSizeMsg{Width: 80, Height: 8})
		model = update(t, model, tea.KeyMsg{Type: tea.KeyDown})

		view := model.View()

		assert.Contains(t, view, "10 resource(s)")
		assert.Contains(t, view, "file01_bin")
		assert.Contains(t, view, "file03_bin")
		assert.NotContains(t, view, "file00_bin")
		assert.NotContains(t, view, "file04_bin")
		assert.Contains(t, view, "2-4 of 10")
	})

	t.Run("qualifies nested symbols", func(t *testing.T) {
		model := newInventoryModel([]m.Entry{{Path: "A/x.bin", Namespace: []string{"a"}, Identifier: "x_bin"}})

		assert.Contains(t, model.View(), "a::x_bin")
	})

	t.Run("empty", func(t *testing.T) {
		view := newInventoryModel(nil).View()

		assert.Contains(t, view, "no resources found")
		assert.True(t, strings.Contains(view, "0-0 of 0"))
	})
}
