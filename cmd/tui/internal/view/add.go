package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gillpay/internal/app"
	"github.com/MrJamesThe3rd/gillpay/internal/category"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

type addState int

const (
	addStateForm addState = iota
	addStateConfirm
	addStateSaving
	addStateDone
)

// addFields backs the form inputs. It lives behind a pointer so the bindings
// survive the model being copied on every update.
type addFields struct {
	kind        string
	category    string
	label       string
	description string
	amount      string
	date        string
	saveAnyway  bool
}

func (f *addFields) draft() transaction.Draft {
	d := transaction.Draft{
		Kind:        f.kind,
		Category:    f.category,
		Description: f.description,
		Amount:      f.amount,
		Date:        f.date,
	}

	// A label typed before switching away from Other is ignored.
	if category.IsReserved(f.category) {
		d = d.WithCustomLabel(f.label)
	}

	return d
}

// AddModel records a single transaction through a form. A duplicate of an
// existing row is only saved after confirmation.
type AddModel struct {
	CommonModel
	app *app.App

	state  addState
	form   *huh.Form
	fields *addFields
	saved  transaction.Transaction
	err    error
}

func NewAddModel(a *app.App) AddModel {
	m := AddModel{
		app: a,
		fields: &addFields{
			kind: string(transaction.KindExpense),
			date: transaction.FormatDate(time.Now()),
		},
	}
	m.form = m.newForm()

	return m
}

func (m AddModel) Title() string { return "Add Transaction" }
func (m AddModel) ShortHelp() string {
	if m.state == addStateDone {
		return "Enter: add another | Esc: back"
	}

	return "Tab: next field | Enter: confirm | Esc: back"
}

func (m AddModel) newForm() *huh.Form {
	f := m.fields

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Expense", string(transaction.KindExpense)),
					huh.NewOption("Income", string(transaction.KindIncome)),
				).
				Value(&f.kind),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				OptionsFunc(func() []huh.Option[string] {
					return m.categoryOptions(f.kind)
				}, &f.kind).
				Value(&f.category),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Custom category").
				Description("Saved as Other, with the label added to the description.").
				Value(&f.label).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("enter a custom category")
					}

					return nil
				}),
		).WithHideFunc(func() bool {
			return !category.IsReserved(f.category)
		}),
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Value(&f.description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("description cannot be empty")
					}

					return nil
				}),

			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Value(&f.amount).
				Validate(func(s string) error {
					if _, err := transaction.ParseAmount(s); err != nil {
						return errors.New("enter a number such as 12.50")
					}

					return nil
				}),

			huh.NewInput().
				Title("Date").
				Placeholder("YYYY/MM/DD").
				Value(&f.date).
				Validate(func(s string) error {
					if _, ok := transaction.ParseDate(s); !ok {
						return errors.New("use YYYY/MM/DD")
					}

					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m AddModel) categoryOptions(kind string) []huh.Option[string] {
	names, err := m.app.Categories.Options(transaction.Kind(kind).CategoryType())
	if err != nil {
		names = []string{category.Other}
	}

	return huh.NewOptions(names...)
}

func (m AddModel) newConfirm() *huh.Form {
	m.fields.saveAnyway = false

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("An identical transaction already exists. Save anyway?").
				Affirmative("Save").
				Negative("Discard").
				Value(&m.fields.saveAnyway),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m AddModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg)
	case addSavedMsg:
		return m.handleSaved(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == addStateDone && msg.Type == tea.KeyEnter {
			return m.restart()
		}
	}

	if m.state != addStateForm && m.state != addStateConfirm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == addStateConfirm && !m.fields.saveAnyway {
		m.err = errors.New("duplicate discarded")
		m.state = addStateDone

		return m, nil
	}

	force := m.state == addStateConfirm
	m.state = addStateSaving

	return m, m.saveCmd(force)
}

func (m AddModel) handleSaved(msg addSavedMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.err, transaction.ErrDuplicate):
		m.state = addStateConfirm
		m.form = m.newConfirm()

		return m, m.form.Init()

	case msg.err != nil:
		// Send the user back to the form with their input intact.
		m.err = msg.err
		m.state = addStateForm
		m.form = m.newForm()

		return m, m.form.Init()
	}

	m.err = nil
	m.saved = msg.tx
	m.state = addStateDone

	return m, changed
}

func (m AddModel) restart() (tea.Model, tea.Cmd) {
	kind, date := m.fields.kind, m.fields.date
	m.fields = &addFields{kind: kind, date: date}
	m.form = m.newForm()
	m.state = addStateForm
	m.err = nil

	return m, m.form.Init()
}

func (m AddModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Title()) + "\n\n")

	switch m.state {
	case addStateSaving:
		b.WriteString("Saving...")
	case addStateDone:
		if m.err != nil {
			b.WriteString(warnStyle.Render(m.err.Error()))
		} else {
			b.WriteString(successStyle.Render(fmt.Sprintf("Saved %s %s: %s %s on %s.",
				m.saved.Kind, m.saved.Category, m.saved.Description, m.app.Money(m.saved.Amount), m.saved.Date)))
		}
	default:
		if m.err != nil {
			b.WriteString(errorStyle.Render(m.err.Error()) + "\n\n")
		}

		b.WriteString(panelStyle.Render(m.form.View()))
	}

	b.WriteString("\n\n" + faintStyle.Render(m.ShortHelp()))

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

type addSavedMsg struct {
	tx  transaction.Transaction
	err error
}

func (m AddModel) saveCmd(allowDuplicate bool) tea.Cmd {
	d := m.fields.draft()

	return func() tea.Msg {
		tx, err := m.app.Transactions.Post(d, allowDuplicate)
		return addSavedMsg{tx: tx, err: err}
	}
}
