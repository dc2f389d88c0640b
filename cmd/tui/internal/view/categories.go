package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gillpay/internal/app"
	"github.com/MrJamesThe3rd/gillpay/internal/category"
)

type categoryOp int

const (
	categoryOpNone categoryOp = iota
	categoryOpAdd
	categoryOpRename
	categoryOpArchive
)

type categoryRow struct {
	name   string
	active bool
}

type categoryFields struct {
	name    string
	confirm bool
}

// CategoryModel manages the category registry for one type at a time.
type CategoryModel struct {
	CommonModel
	app *app.App

	typeIdx      int
	showArchived bool

	table table.Model
	rows  []categoryRow

	op     categoryOp
	target string
	form   *huh.Form
	fields *categoryFields

	status string
	err    error
}

func NewCategoryModel(a *app.App) CategoryModel {
	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "State", Width: 10},
	}

	return CategoryModel{
		app:     a,
		typeIdx: 1,
		table:   newTable(columns, 15),
		fields:  &categoryFields{},
	}
}

func (m CategoryModel) typ() category.Type {
	return category.Types[m.typeIdx]
}

func (m CategoryModel) Title() string { return "Categories" }
func (m CategoryModel) ShortHelp() string {
	if m.op != categoryOpNone {
		return "Enter: confirm | Esc: cancel"
	}

	return "Tab: type | a: add | r: rename | d: archive | h: show archived | Esc: back"
}

func (m CategoryModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CategoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg)
		m.table.SetHeight(tableHeight(msg.Height))

		return m, nil

	case categoriesLoadedMsg:
		m.err = msg.err
		m.rows = msg.rows
		m.refreshTable()

		return m, nil

	case categorySavedMsg:
		m.op = categoryOpNone
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.err = msg.err
			m.status = ""

			return m, m.loadCmd()
		}

		m.err = nil
		m.status = msg.status

		return m, tea.Batch(m.loadCmd(), changed)
	}

	if m.op != categoryOpNone {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, Back
		case "tab":
			m.typeIdx = (m.typeIdx + 1) % len(category.Types)
			m.status = ""

			return m, m.loadCmd()
		case "h":
			m.showArchived = !m.showArchived
			return m, m.loadCmd()
		case "a":
			return m.startOp(categoryOpAdd, "")
		case "r", "d":
			name, ok := m.selected()
			if !ok {
				return m, nil
			}

			if category.IsReserved(name) {
				m.err = category.ErrReservedName
				return m, nil
			}

			if msg.String() == "r" {
				return m.startOp(categoryOpRename, name)
			}

			return m.startOp(categoryOpArchive, name)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CategoryModel) selected() (string, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return "", false
	}

	return m.rows[idx].name, true
}

func (m CategoryModel) startOp(op categoryOp, target string) (tea.Model, tea.Cmd) {
	m.op = op
	m.target = target
	m.fields = &categoryFields{name: target}
	m.err = nil
	m.status = ""

	var field huh.Field

	switch op {
	case categoryOpArchive:
		field = huh.NewConfirm().
			Title(fmt.Sprintf("Archive %q?", target)).
			Description("Existing transactions keep their category.").
			Value(&m.fields.confirm)
	default:
		title := fmt.Sprintf("New %s category", strings.ToLower(string(m.typ())))
		if op == categoryOpRename {
			title = fmt.Sprintf("Rename %q to", target)
		}

		field = huh.NewInput().
			Title(title).
			Value(&m.fields.name).
			Validate(func(s string) error {
				switch {
				case strings.TrimSpace(s) == "":
					return category.ErrEmptyName
				case category.IsReserved(s):
					return category.ErrReservedName
				}

				return nil
			})
	}

	m.form = huh.NewForm(huh.NewGroup(field)).WithWidth(45).WithShowHelp(false)
	m.table.Blur()

	return m, m.form.Init()
}

func (m CategoryModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.op = categoryOpNone
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m *CategoryModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.rows))
	for _, r := range m.rows {
		state := "active"
		if !r.active {
			state = "archived"
		}

		rows = append(rows, table.Row{r.name, state})
	}

	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m CategoryModel) View() string {
	header := fmt.Sprintf("%s | [tab] Type: %s | [h] Archived: %s",
		titleStyle.Render(m.Title()),
		activeStyle(string(m.typ())),
		activeStyle(map[bool]string{true: "shown", false: "hidden"}[m.showArchived]),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableFrame.Render(m.table.View()),
	)

	if m.op != categoryOpNone && m.form != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panelStyle.Width(48).Render(m.form.View()))
	}

	switch {
	case m.err != nil:
		content += "\n" + errorStyle.Render(m.err.Error())
	case m.status != "":
		content += "\n" + successStyle.Render(m.status)
	}

	content += "\n" + faintStyle.Render(m.ShortHelp())

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type categoriesLoadedMsg struct {
	rows []categoryRow
	err  error
}

func (m CategoryModel) loadCmd() tea.Cmd {
	svc, typ, all := m.app.Categories, m.typ(), m.showArchived

	return func() tea.Msg {
		active, err := svc.ListNames(typ, false)
		if err != nil {
			return categoriesLoadedMsg{err: err}
		}

		names := active
		if all {
			if names, err = svc.ListNames(typ, true); err != nil {
				return categoriesLoadedMsg{err: err}
			}
		}

		isActive := make(map[string]bool, len(active))
		for _, n := range active {
			isActive[strings.ToLower(n)] = true
		}

		rows := make([]categoryRow, 0, len(names))
		for _, n := range names {
			rows = append(rows, categoryRow{name: n, active: isActive[strings.ToLower(n)]})
		}

		return categoriesLoadedMsg{rows: rows}
	}
}

type categorySavedMsg struct {
	status string
	err    error
}

func (m CategoryModel) saveCmd() tea.Cmd {
	svc, typ, op, target := m.app.Categories, m.typ(), m.op, m.target
	name := strings.TrimSpace(m.fields.name)
	confirm := m.fields.confirm

	return func() tea.Msg {
		switch op {
		case categoryOpAdd:
			if err := svc.Add(typ, name); err != nil {
				return categorySavedMsg{err: err}
			}

			return categorySavedMsg{status: fmt.Sprintf("Added %q.", name)}

		case categoryOpRename:
			if err := svc.Rename(typ, target, name); err != nil {
				return categorySavedMsg{err: err}
			}

			return categorySavedMsg{status: fmt.Sprintf("Renamed %q to %q.", target, name)}

		case categoryOpArchive:
			if !confirm {
				return categorySavedMsg{}
			}

			if err := svc.Delete(typ, target); err != nil {
				return categorySavedMsg{err: err}
			}

			return categorySavedMsg{status: fmt.Sprintf("Archived %q.", target)}
		}

		return categorySavedMsg{err: errors.New("no category operation selected")}
	}
}
