package tui

import "github.com/MKhiriev/go-infaq/models"

type loginResultMsg struct {
	err error
}

type listLoadedMsg struct {
	items []models.Transaction
	err   error
}

type createDoneMsg struct {
	tx  models.Transaction
	err error
}

type updateDoneMsg struct {
	tx  models.Transaction
	err error
}

type deleteDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type sessionChangedMsg struct {
	state models.SessionState
	open  bool
}
