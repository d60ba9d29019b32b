package entrylist

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Item is one row of a collection tab.
type Item struct {
	ID       int64
	StrID    string
	Heading  string
	Detail   string
	Keywords string
}

func (i Item) Title() string       { return i.Heading }
func (i Item) Description() string { return i.Detail }
func (i Item) FilterValue() string {
	if i.Keywords != "" {
		return i.Keywords
	}
	return i.Heading
}

// Model wraps a bubbles list for the collection tabs.
type Model struct {
	list list.Model
}

func New(title string, width, height int) Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	return Model{list: l}
}

func (m *Model) SetItems(items []Item) {
	rows := make([]list.Item, len(items))
	for i, item := range items {
		rows[i] = item
	}
	m.list.SetItems(rows)
}

func (m *Model) SetTitle(title string) {
	m.list.Title = title
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the highlighted item, reporting whether one exists.
func (m Model) Selected() (Item, bool) {
	item, ok := m.list.SelectedItem().(Item)
	return item, ok
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
