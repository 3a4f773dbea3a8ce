// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// ReportFile is a candidate report offered by the picker.
type ReportFile struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// ListReports returns the files in dir matching pattern, newest first.
func ListReports(dir string, pattern string) ([]ReportFile, error) {
	if pattern == "" {
		pattern = "*.txt"
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid report pattern %q: %w", pattern, err)
	}

	var files []ReportFile
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, ReportFile{Path: m, Size: info.Size(), ModTime: info.ModTime()})
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})

	return files, nil
}

// SelectReports lets the operator pick exactly two reports. The first one
// toggled becomes report 1. A nil result means the operator backed out.
func SelectReports(items []ReportFile) ([]ReportFile, error) {
	p := tea.NewProgram(newPicker(items))
	m, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("report picker failed: %w", err)
	}
	return m.(picker).selected, nil
}

type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Go     key.Binding
	Quit   key.Binding
}

func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Go, k.Quit}
}

func (k pickerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultPickerKeys = pickerKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	Go:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "compare")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
}

var (
	pickerTitleStyle  = lipgloss.NewStyle().Bold(true)
	pickerCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f6be00"))
	pickerMarkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00c8f0"))
)

type picker struct {
	items    []ReportFile
	cursor   int
	selected []ReportFile
	keys     pickerKeys
	help     help.Model
}

func newPicker(items []ReportFile) picker {
	return picker{items: items, keys: defaultPickerKeys, help: help.New()}
}

func (m picker) Init() tea.Cmd { return nil }

func (m picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.selected = nil
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if len(m.items) == 0 {
			return m, nil
		}
		current := m.items[m.cursor]
		if i := indexOf(m.selected, current); i >= 0 {
			m.selected = append(m.selected[:i], m.selected[i+1:]...)
		} else if len(m.selected) < 2 {
			m.selected = append(m.selected, current)
		}
	case key.Matches(keyMsg, m.keys.Go):
		if len(m.selected) == 2 {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m picker) View() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("Select two reports:"))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString("  no reports found\n")
	}

	for i, rf := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = pickerCursorStyle.Render(">")
		}
		mark := " "
		if n := indexOf(m.selected, rf); n >= 0 {
			mark = pickerMarkStyle.Render(fmt.Sprintf("%d", n+1))
		}
		fmt.Fprintf(&b, "%s [%s] %-40s %10s %s\n",
			cursor, mark, filepath.Base(rf.Path), humanize.Bytes(uint64(rf.Size)), rf.ModTime.Format("2006-01-02 15:04"))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func indexOf(files []ReportFile, rf ReportFile) int {
	for i, f := range files {
		if f.Path == rf.Path {
			return i
		}
	}
	return -1
}
