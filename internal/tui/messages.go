package tui

import "github.com/propchat/propchat-client/models"

type authDoneMsg struct {
	err error
}

type registerDoneMsg struct {
	result models.RegisterResult
}

type promptDoneMsg struct {
	err error
}

type resetDoneMsg struct {
	err error
}

type licenceSavedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
