package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "binres.dev/pkg/binres/internal/model"
)

// TUI implements UI with an interactive inventory browser. Progress, summary
// and diff output are line oriented and shared with SimpleUI.
type TUI struct {
	*SimpleUI
	cmd *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), cmd: cmd}
}

// DisplayInventory opens a scrollable browser over the entries.
func (t *TUI) DisplayInventory(ctx context.Context, entries []m.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	program := tea.NewProgram(
		newInventoryModel(entries),
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.OutOrStdout()),
	)

	_, err := program.Run()

	return err
}

type inventoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Quit     key.Binding
}

var inventoryKeys = inventoryKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("u", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "d"), key.WithHelp("d", "page down")),
	Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	symbolStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	sizeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// headerLines and footerLines are the rows View reserves around the list.
const (
	headerLines = 3
	footerLines = 2
)

type inventoryModel struct {
	entries  []m.Entry
	total    int64
	height   int
	width    int
	offset   int
	quitting bool
}

func newInventoryModel(entries []m.Entry) inventoryModel {
	var total int64
	for _, entry := range entries {
		total += entry.Size
	}

	return inventoryModel{entries: entries, total: total}
}

func (im inventoryModel) Init() tea.Cmd {
	return nil
}

func (im inventoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		im.height = msg.Height
		im.width = msg.Width
		im.offset = min(im.offset, im.maxOffset())

		return im, nil

	case tea.KeyMsg:
		return im.handleKeyPress(msg)
	}

	return im, nil
}

func (im inventoryModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, inventoryKeys.Quit):
		im.quitting = true
		return im, tea.Quit
	case key.Matches(msg, inventoryKeys.Down):
		im.offset++
	case key.Matches(msg, inventoryKeys.Up):
		im.offset--
	case key.Matches(msg, inventoryKeys.PageDown):
		im.offset += im.itemsPerPage()
	case key.Matches(msg, inventoryKeys.PageUp):
		im.offset -= im.itemsPerPage()
	case key.Matches(msg, inventoryKeys.Top):
		im.offset = 0
	case key.Matches(msg, inventoryKeys.Bottom):
		im.offset = im.maxOffset()
	}

	im.offset = max(0, min(im.offset, im.maxOffset()))

	return im, nil
}

func (im inventoryModel) itemsPerPage() int {
	if im.height == 0 {
		return 10
	}

	return max(1, im.height-headerLines-footerLines)
}

func (im inventoryModel) maxOffset() int {
	return max(0, len(im.entries)-im.itemsPerPage())
}

func (im inventoryModel) View() string {
	if im.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("binres · %d resource(s) · %s", len(im.entries), formatBytes(im.total))))
	b.WriteString("\n\n")

	end := min(len(im.entries), im.offset+im.itemsPerPage())
	for _, entry := range im.entries[im.offset:end] {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			pathStyle.Render(string(entry.Path)),
			symbolStyle.Render(entry.Qualified()),
			sizeStyle.Render(formatBytes(entry.Size)),
		)
	}

	if len(im.entries) == 0 {
		b.WriteString("no resources found\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf("%d-%d of %d · ↑/↓ scroll · u/d page · g/G top/bottom · q quit",
		min(im.offset+1, len(im.entries)), end, len(im.entries))))
	b.WriteString("\n")

	return b.String()
}
