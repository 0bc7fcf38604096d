package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateEvents
)

type RootModel struct {
	State    state
	Session  *Session
	Login    LoginModel
	Events   EventsModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel(baseURL string) RootModel {
	s := NewSession(baseURL)
	return RootModel{
		State:   stateLogin,
		Session: s,
		Login:   NewLoginModel(s),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Events.Table.SetHeight(msg.Height - 10)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}

	case loginOKMsg:
		m.State = stateEvents
		m.Events = NewEventsModel(m.Session, m.width, m.height)
		return m, m.Events.Init()

	case sessionExpiredMsg:
		// Token cleared by the session; back to the entry point.
		m.State = stateLogin
		m.Login = NewLoginModel(m.Session)
		m.Login.Err = msg.err
		return m, m.Login.Init()
	}

	switch m.State {
	case stateLogin:
		newLogin, cmd := m.Login.Update(msg)
		m.Login = newLogin
		cmds = append(cmds, cmd)
	case stateEvents:
		newEvents, cmd := m.Events.Update(msg)
		m.Events = newEvents
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Hasta luego!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateEvents:
		return m.Events.View()
	}
	return ""
}
