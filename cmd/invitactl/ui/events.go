package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type eventosMsg []Evento

type sessionExpiredMsg struct{ err error }

type EventsModel struct {
	Session *Session
	Table   table.Model
	Err     error
}

func NewEventsModel(s *Session, width, height int) EventsModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Nombre", Width: 30},
		{Title: "Fecha", Width: 22},
		{Title: "Ubicación", Width: 24},
		{Title: "Tipo", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height-10),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	return EventsModel{Session: s, Table: t}
}

func (m EventsModel) Init() tea.Cmd {
	return m.FetchCmd
}

func (m EventsModel) FetchCmd() tea.Msg {
	eventos, err := m.Session.FetchEventos()
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			return sessionExpiredMsg{err: err}
		}
		return errMsg(err)
	}
	return eventosMsg(eventos)
}

func (m EventsModel) Update(msg tea.Msg) (EventsModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.FetchCmd
		case "q":
			return m, tea.Quit
		}
	case eventosMsg:
		rows := make([]table.Row, 0, len(msg))
		for _, e := range msg {
			tipo := ""
			if e.Tipo != nil {
				tipo = e.Tipo.Descripcion
			}
			rows = append(rows, table.Row{fmt.Sprintf("%d", e.ID), e.Nombre, e.Fecha, e.Ubicacion, tipo})
		}
		m.Table.SetRows(rows)
		m.Err = nil
	case errMsg:
		m.Err = msg
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m EventsModel) View() string {
	var b strings.Builder
	who, admin := m.Session.Whoami()
	title := "Eventos"
	if who != "" {
		if admin {
			title = fmt.Sprintf("Eventos - %s (admin)", who)
		} else {
			title = fmt.Sprintf("Eventos - %s", who)
		}
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("'r' para refrescar, 'q' para salir, flechas para navegar"))

	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
