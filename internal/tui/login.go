// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-infaq/internal/app"
)

// LoginModel is the email/password form. A submitted form runs
// [Session.Login] in a command and reports back with a loginResultMsg, which
// [RootModel] also watches to end the login program.
type LoginModel struct {
	ctx     context.Context
	session Session

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	notice     string
}

func NewLoginModel(ctx context.Context, session Session) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email@sekolah.id"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:     ctx,
		session: session,
		inputs:  []textinput.Model{emailInput, passwordInput},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		m.submitting = false
		m.errMsg = humanizeError(result.err)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	email := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	if email == "" || password == "" {
		m.errMsg = app.MsgCredentialsRequired
		return m, nil
	}

	m.errMsg = ""
	m.notice = ""
	m.submitting = true
	return m, m.cmdLogin(email, password)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(helpStyle.Render(m.notice))
		b.WriteString("\n\n")
	}
	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Masuk...]\n")
	} else {
		b.WriteString("\n[Masuk]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Gagal: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("MASUK", strings.TrimRight(b.String(), "\n"), "tab: kolom berikut │ enter: masuk")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		if _, err := session.Login(ctx, email, password); err != nil {
			return loginResultMsg{err: err}
		}
		if session.Snapshot().User == nil {
			return loginResultMsg{err: errNoProfile}
		}
		return loginResultMsg{}
	}
}

func (m *LoginModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
