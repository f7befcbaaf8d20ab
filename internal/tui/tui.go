// Package tui is the interactive dashboard: day navigation, one-key
// category starts, and an inline edit form over the day's entries.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SHOSESHOSE/time-tracker/internal/aggregate"
	"github.com/SHOSESHOSE/time-tracker/internal/clock"
	"github.com/SHOSESHOSE/time-tracker/internal/config"
	"github.com/SHOSESHOSE/time-tracker/internal/editor"
	"github.com/SHOSESHOSE/time-tracker/internal/model"
	"github.com/SHOSESHOSE/time-tracker/internal/session"
	"github.com/SHOSESHOSE/time-tracker/internal/store"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

const (
	fieldCategory = iota
	fieldStart
	fieldEnd
	fieldCount
)

// Model is the dashboard state: the selected day, the day's entries,
// and an optional edit form over the highlighted entry.
type Model struct {
	cfg     config.Config
	store   *store.Store
	session *session.Controller
	editor  *editor.Editor

	selected time.Time // day being viewed
	entries  []model.LogEntry
	cursor   int

	editing bool
	editID  string
	inputs  [fieldCount]textinput.Model
	focus   int

	status string
	width  int
	height int
}

// NewModel builds the dashboard over the wired services, viewing today.
func NewModel(cfg config.Config, st *store.Store, sess *session.Controller, ed *editor.Editor) Model {
	m := Model{
		cfg:      cfg,
		store:    st,
		session:  sess,
		editor:   ed,
		selected: time.Now(),
	}
	for i := range m.inputs {
		m.inputs[i] = textinput.New()
		m.inputs[i].CharLimit = 32
		m.inputs[i].Width = 16
	}
	m.inputs[fieldCategory].Placeholder = "category"
	m.inputs[fieldStart].Placeholder = "HH:MM"
	m.inputs[fieldEnd].Placeholder = "HH:MM (empty = ongoing)"
	m.reload()
	return m
}

// Run starts the dashboard and blocks until the user quits.
func Run(cfg config.Config, st *store.Store, sess *session.Controller, ed *editor.Editor) error {
	p := tea.NewProgram(NewModel(cfg, st, sess, ed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) date() string {
	return clock.ToYMD(m.selected)
}

func (m *Model) reload() {
	m.entries = aggregate.ForDay(m.date(), m.store.LoadAll())
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m.reload()
		return m, tickCmd()
	case tea.KeyMsg:
		if m.editing {
			return m.updateEdit(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.selected = clock.AddDays(m.selected, -1)
		m.cursor = 0
		m.reload()
	case "right", "l":
		m.selected = clock.AddDays(m.selected, 1)
		m.cursor = 0
		m.reload()
	case "t":
		m.selected = time.Now()
		m.cursor = 0
		m.reload()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "s":
		stopped, err := m.session.Stop()
		switch {
		case err != nil:
			m.status = err.Error()
		case stopped == nil:
			m.status = "Nothing running."
		default:
			m.status = fmt.Sprintf("Stopped %q.", stopped.Category)
		}
		m.reload()
	case "e":
		if m.cursor < len(m.entries) {
			m.beginEdit(m.entries[m.cursor])
		}
	case "d":
		if m.cursor < len(m.entries) {
			id := m.entries[m.cursor].ID
			if err := m.editor.Delete(id); err != nil {
				m.status = err.Error()
			} else {
				m.status = "Entry deleted."
			}
			m.reload()
		}
	default:
		// Number keys start the n-th configured category.
		if n := categoryIndex(msg.String()); n >= 0 && n < len(m.cfg.Categories) {
			cat := m.cfg.Categories[n]
			if _, err := m.session.Start(cat, m.date()); err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("Started %q.", cat)
			}
			m.reload()
		}
	}
	return m, nil
}

func categoryIndex(key string) int {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return -1
	}
	return int(key[0] - '1')
}

func (m *Model) beginEdit(e model.LogEntry) {
	m.editing = true
	m.editID = e.ID
	m.inputs[fieldCategory].SetValue(e.Category)
	m.inputs[fieldStart].SetValue(clock.FormatHM(e.Start))
	end := ""
	if e.End != nil {
		end = clock.FormatHM(*e.End)
	}
	m.inputs[fieldEnd].SetValue(end)
	m.focus = fieldCategory
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[m.focus].Focus()
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.status = "Edit cancelled."
		return m, nil
	case "tab", "shift+tab":
		m.inputs[m.focus].Blur()
		if msg.String() == "tab" {
			m.focus = (m.focus + 1) % fieldCount
		} else {
			m.focus = (m.focus + fieldCount - 1) % fieldCount
		}
		m.inputs[m.focus].Focus()
		return m, nil
	case "enter":
		err := m.editor.Edit(m.editID,
			m.inputs[fieldCategory].Value(),
			strings.TrimSpace(m.inputs[fieldStart].Value()),
			strings.TrimSpace(m.inputs[fieldEnd].Value()))
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.editing = false
		m.status = "Entry updated."
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("ttrack — %s", m.date())))
	b.WriteString("\n\n")

	now := time.Now()
	if cur := m.session.Current(); cur != nil {
		mins := aggregate.Minutes(cur.Start, nil, now)
		b.WriteString(runningStyle.Render(fmt.Sprintf("▶ %s since %s (%s)",
			cur.Category, clock.FormatHM(cur.Start), aggregate.FormatMinutes(mins))))
	} else {
		b.WriteString(idleStyle.Render("■ idle"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.viewEntries(now))
	b.WriteString("\n")
	b.WriteString(m.viewSummary(now))
	b.WriteString("\n")

	if m.editing {
		b.WriteString(m.viewEditForm())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(m.cfg.Categories))
	for i, c := range m.cfg.Categories {
		if i >= 9 {
			break
		}
		keys = append(keys, fmt.Sprintf("%d %s", i+1, c))
	}
	b.WriteString(helpStyle.Render(strings.Join(keys, " · ")))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("s stop · e edit · d delete · ←/→ day · t today · q quit"))
	return b.String()
}

func (m Model) viewEntries(now time.Time) string {
	if len(m.entries) == 0 {
		return boxStyle.Render("No entries yet.")
	}

	var rows []string
	for i, e := range m.entries {
		endStr := "ongoing"
		if e.End != nil {
			endStr = clock.FormatHM(*e.End)
		}
		mins := aggregate.Minutes(e.Start, e.End, now)
		sent := " "
		if e.Sent {
			sent = "✓"
		}
		row := fmt.Sprintf("%s %s–%s  %-12s %s",
			sent, clock.FormatHM(e.Start), endStr, e.Category,
			aggregate.FormatMinutes(mins))
		if i == m.cursor {
			row = selectedStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) viewSummary(now time.Time) string {
	sum := aggregate.SummarizeDay(m.date(), m.entries, m.cfg.Categories, now)
	var rows []string
	for _, c := range sum.Order {
		rows = append(rows, fmt.Sprintf("%-12s %s", c, aggregate.FormatMinutes(sum.ByCategory[c])))
	}
	rows = append(rows, fmt.Sprintf("%-12s %s", "Total", aggregate.FormatMinutes(sum.TotalMinutes)))
	return boxStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) viewEditForm() string {
	labels := [fieldCount]string{"Category", "Start", "End"}
	var rows []string
	for i := range m.inputs {
		rows = append(rows, fmt.Sprintf("%-9s %s", labels[i], m.inputs[i].View()))
	}
	rows = append(rows, helpStyle.Render("tab next field · enter save · esc cancel"))
	return boxStyle.Render(strings.Join(rows, "\n"))
}
