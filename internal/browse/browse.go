// Terminal browser for the parameter manual
package browse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"sar2tools/internal/manual"
	"sar2tools/internal/markup"
)

const listWidth = 40

var (
	onStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	sepStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the bubbletea model: a filterable identifier list beside the
// selected record. Preferences are saved on every change.
type Model struct {
	doc       *manual.Document
	store     manual.Store
	prefs     manual.Preferences
	entries   []manual.NavEntry
	table     table.Model
	filter    textinput.Model
	vp        viewport.Model
	filtering bool
	width     int
	height    int
	err       error
}

// New builds a model with preferences loaded from store.
func New(doc *manual.Document, store manual.Store) Model {
	cols := []table.Column{
		{Title: "Parameter", Width: 26},
		{Title: "Context", Width: listWidth - 26 - 4},
	}
	t := table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(10))
	in := textinput.New()
	in.Prompt = "filter: "
	in.Placeholder = "parameter name"
	m := Model{
		doc:    doc,
		store:  store,
		prefs:  manual.LoadPreferences(store),
		table:  t,
		filter: in,
		vp:     viewport.New(0, 0),
	}
	m.filter.SetValue(m.prefs.Filter)
	m.refresh()
	return m
}

// Prefs returns the current preferences.
func (m Model) Prefs() manual.Preferences { return m.prefs }

// Visible returns the entries passing the current preferences.
func (m Model) Visible() []manual.NavEntry { return m.entries }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.showSelected()
	case tea.KeyMsg:
		if m.filtering {
			switch msg.Type {
			case tea.KeyEnter, tea.KeyEsc:
				m.filtering = false
				m.filter.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			if m.filter.Value() != m.prefs.Filter {
				m.prefs.Filter = m.filter.Value()
				m.save()
				m.refresh()
			}
			return m, cmd
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.filtering = true
			cmd := m.filter.Focus()
			return m, cmd
		case "1", "2", "3":
			c := markup.Contexts[int(msg.String()[0]-'1')]
			m.prefs = m.prefs.Toggle(c.Class)
			m.save()
			m.refresh()
			return m, nil
		case "pgdown", "pgup":
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		m.showSelected()
		return m, cmd
	}
	return m, nil
}

func (m *Model) save() {
	if m.store == nil {
		return
	}
	m.err = m.prefs.Save(m.store)
}

func (m *Model) refresh() {
	m.entries = manual.Filter(m.doc.Index, m.prefs)
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{e.Name, strings.Join(e.Classes, " ")}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) || m.table.Cursor() < 0 {
		m.table.SetCursor(0)
	}
	m.showSelected()
}

func (m *Model) resize() {
	body := m.height - 4
	if body < 1 {
		body = 1
	}
	m.table.SetHeight(body)
	m.vp.Width = m.width - listWidth - 1
	if m.vp.Width < 10 {
		m.vp.Width = 10
	}
	m.vp.Height = body
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (manual.NavEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return manual.NavEntry{}, false
	}
	return m.entries[i], true
}

func (m *Model) showSelected() {
	e, ok := m.Selected()
	if !ok {
		m.vp.SetContent("no matching parameters")
		return
	}
	rec, ok := m.doc.Lookup(e.Anchor)
	if !ok {
		m.vp.SetContent("record " + e.Anchor + " not found")
		return
	}
	text := manual.PlainText(rec)
	if m.vp.Width > 0 {
		text = wordwrap.String(text, m.vp.Width)
	}
	m.vp.SetContent(text)
	m.vp.GotoTop()
}

func (m Model) View() string {
	var toggles []string
	for i, c := range markup.Contexts {
		style := offStyle
		if m.prefs.Selected(c.Class) {
			style = onStyle
		}
		toggles = append(toggles, fmt.Sprintf("%d %s *.%s", i+1, style.Render("●"), c.Code))
	}
	header := strings.Join(toggles, "  ") + "   " + fmt.Sprintf("%d/%d", len(m.entries), len(m.doc.Index))
	sep := sepStyle.Render(strings.Repeat("│\n", max(m.vp.Height-1, 0)) + "│")
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.table.View(), sep, m.vp.View())
	help := "↑/↓ select • / filter • 1-3 toggle context • pgup/pgdn scroll • q quit"
	if m.err != nil {
		help = offStyle.Render("save preferences: " + m.err.Error())
	}
	return strings.Join([]string{header, m.filter.View(), body, helpStyle.Render(help)}, "\n")
}

// Run starts the full-screen browser and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, doc *manual.Document, store manual.Store) error {
	p := tea.NewProgram(New(doc, store), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// WriteList prints the visible entries one per line, for non-terminal output.
func WriteList(w io.Writer, doc *manual.Document, prefs manual.Preferences) error {
	for _, e := range manual.Filter(doc.Index, prefs) {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", e.Name, strings.Join(e.Classes, ",")); err != nil {
			return err
		}
	}
	return nil
}
