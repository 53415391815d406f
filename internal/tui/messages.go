package tui

import (
	"github.com/MKhiriev/go-qr-forge/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// typeChosenMsg opens the generator for a content type.
type typeChosenMsg struct {
	contentType models.ContentType
}

type historyLoadedMsg struct {
	items []models.SavedPayload
	err   error
}

type payloadSavedMsg struct {
	saved models.SavedPayload
	err   error
}

type payloadDeletedMsg struct {
	id  string
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
