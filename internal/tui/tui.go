// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the infaq client: a login form
// and a dashboard showing the signed-in profile, its capabilities, the
// ledger summary and the transaction list.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/models"
)

var ErrUserQuit = errors.New("keluar dari aplikasi")

type TUI struct {
	session   Session
	ledger    Ledger
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption

	// notice is shown once on the next login page.
	notice string
}

func New(session Session, ledger Ledger, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		session:        session,
		ledger:         ledger,
		buildInfo:      buildInfo,
		logger:         log.Component("tui"),
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// LoginFlow shows the login form until the user signs in or quits.
func (t *TUI) LoginFlow(ctx context.Context) error {
	login := NewLoginModel(ctx, t.session)
	login.notice, t.notice = t.notice, ""

	root := NewRootModel(login)
	finalModel, err := tea.NewProgram(root, t.programOptions...).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// MainLoop runs the dashboard. logout is true when the user signed out or
// the session ended underneath the dashboard.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	updates, cancel := t.session.Subscribe()
	defer cancel()

	model := newDashboardModel(ctx, t.session, t.ledger, updates, t.buildInfo)
	finalModel, err := tea.NewProgram(model, t.programOptions...).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.sessionEnded {
		t.logger.Info().Msg("session ended while dashboard was open")
	}
	if result.logoutErr != nil {
		t.logger.Warn().Err(result.logoutErr).Str("func", "TUI.MainLoop").Msg("backend sign out failed")
		t.notice = logoutNotice(result.logoutErr)
	}
	return result.logout, nil
}
