// Package tui provides the interactive terminal surfaces of mapfs: mode
// detection, shared styles and the directory browser.
package tui

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mapfs-io/mapfs/pkg/mapfs"
)

// Browser is a bubbletea model that walks the filesystem hierarchy: arrow
// keys move the cursor, enter descends into directories or opens a file
// preview, backspace goes to the parent directory.
type Browser struct {
	fs       *mapfs.Filesystem
	current  string
	children []string
	cursor   int
	preview  string
	keyMap   KeyMap
	quitting bool
}

// NewBrowser creates a Browser rooted at the filesystem's working directory.
// Panics if fs is nil.
func NewBrowser(fs *mapfs.Filesystem) *Browser {
	if fs == nil {
		panic("filesystem cannot be nil")
	}
	b := &Browser{
		fs:      fs,
		current: fs.Pwd(),
		keyMap:  DefaultKeyMap(),
	}
	b.reload()
	return b
}

// RunBrowser starts the browser as a full-screen bubbletea program.
func RunBrowser(fs *mapfs.Filesystem) error {
	_, err := tea.NewProgram(NewBrowser(fs), tea.WithAltScreen()).Run()
	return err
}

func (b *Browser) reload() {
	b.children = b.fs.Ls(b.current)
	if b.cursor >= len(b.children) {
		b.cursor = 0
	}
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch {
	case key.Matches(keyMsg, b.keyMap.Quit):
		b.quitting = true
		return b, tea.Quit

	case key.Matches(keyMsg, b.keyMap.Up):
		b.preview = ""
		if b.cursor > 0 {
			b.cursor--
		}

	case key.Matches(keyMsg, b.keyMap.Down):
		b.preview = ""
		if b.cursor < len(b.children)-1 {
			b.cursor++
		}

	case key.Matches(keyMsg, b.keyMap.Select):
		if len(b.children) == 0 {
			break
		}
		target := b.children[b.cursor]
		if b.fs.IsDir(target) {
			b.current = target
			b.cursor = 0
			b.preview = ""
			b.reload()
		} else if text, ok := b.fs.ReadText(target); ok {
			b.preview = text
		}

	case key.Matches(keyMsg, b.keyMap.Back):
		b.preview = ""
		if b.current != mapfs.Slash {
			b.current = mapfs.ParentPath(b.current)
			b.cursor = 0
			b.reload()
		}
	}

	return b, nil
}

// View implements tea.Model.
func (b *Browser) View() string {
	if b.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(b.current))
	sb.WriteString("\n\n")

	if len(b.children) == 0 {
		sb.WriteString(UnselectedStyle.Render("(empty)"))
		sb.WriteString("\n")
	}
	for i, child := range b.children {
		label := path.Base(child)
		if b.fs.IsDir(child) {
			label += "/"
		}
		if i == b.cursor {
			sb.WriteString(SelectedStyle.Render("> " + label))
		} else {
			sb.WriteString(UnselectedStyle.Render("  " + label))
		}
		sb.WriteString("\n")
	}

	if b.preview != "" {
		sb.WriteString("\n")
		sb.WriteString(UnselectedStyle.Render(b.preview))
		sb.WriteString("\n")
	}

	sb.WriteString(HelpStyle.Render(fmt.Sprintf(
		"%s • %s • %s • %s",
		b.keyMap.Up.Help().Key+"/"+b.keyMap.Down.Help().Key+" move",
		b.keyMap.Select.Help().Key+" open",
		b.keyMap.Back.Help().Key+" parent",
		b.keyMap.Quit.Help().Key+" quit",
	)))
	return sb.String()
}
