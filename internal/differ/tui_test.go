// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m picker, msg tea.KeyMsg) picker {
	next, _ := m.Update(msg)
	return next.(picker)
}

func TestPickerSelectsTwo(t *testing.T) {
	items := []ReportFile{{Path: "/r/a.txt"}, {Path: "/r/b.txt"}, {Path: "/r/c.txt"}}
	m := newPicker(items)

	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})

	// A third toggle is ignored once two are chosen.
	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})

	require.Len(t, m.selected, 2)
	assert.Equal(t, "/r/a.txt", m.selected[0].Path)
	assert.Equal(t, "/r/c.txt", m.selected[1].Path)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
}

func TestPickerToggleOff(t *testing.T) {
	m := newPicker([]ReportFile{{Path: "a"}, {Path: "b"}})

	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Empty(t, m.selected)

	// Enter with fewer than two picks keeps the picker open.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestPickerQuitClearsSelection(t *testing.T) {
	m := newPicker([]ReportFile{{Path: "a"}, {Path: "b"}})
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
	assert.Nil(t, next.(picker).selected)
}

func TestPickerEmptyList(t *testing.T) {
	m := newPicker(nil)
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.selected)
	assert.Contains(t, m.View(), "no reports found")
}

func TestPickerView(t *testing.T) {
	m := newPicker([]ReportFile{{Path: "/r/first.txt", Size: 2048}, {Path: "/r/second.txt"}})
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})

	view := m.View()
	assert.Contains(t, view, "Select two reports:")
	assert.Contains(t, view, "first.txt")
	assert.Contains(t, view, "second.txt")
	assert.Contains(t, view, "2.0 kB")
}

func TestListReports(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.txt")
	recent := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(old, []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(recent, []byte("y"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("z"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	files, err := ListReports(dir, "")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, recent, files[0].Path)
	assert.Equal(t, old, files[1].Path)
}
