package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var contentTypeTitles = map[models.ContentType]string{
	models.URL:      "Website URL",
	models.Text:     "Plain text",
	models.Email:    "Email",
	models.Phone:    "Phone call",
	models.SMS:      "SMS",
	models.WiFi:     "WiFi network",
	models.VCard:    "Contact card",
	models.Location: "Location",
}

// TypeSelectModel is the start page: it lists the content types and opens
// the generator for the chosen one.
type TypeSelectModel struct {
	items []models.ContentType
	idx   int
}

func NewTypeSelectModel() *TypeSelectModel {
	return &TypeSelectModel{items: models.ContentTypes()}
}

func (m *TypeSelectModel) Init() tea.Cmd {
	return nil
}

func (m *TypeSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		chosen := m.items[m.idx]
		return m, func() tea.Msg {
			return NavigateTo{Page: pageGenerator, Payload: typeChosenMsg{contentType: chosen}}
		}
	case key.Matches(keyMsg, keys.history):
		return m, func() tea.Msg { return NavigateTo{Page: pageHistory} }
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *TypeSelectModel) selected() models.ContentType {
	return m.items[m.idx]
}

func (m *TypeSelectModel) View() string {
	var b strings.Builder
	for i, item := range m.items {
		cursor := "  "
		line := fmt.Sprintf("%d. %s", i+1, contentTypeTitles[item])
		if i == m.idx {
			cursor = "> "
			line = focusedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	return renderPage("QR FORGE: CHOOSE CONTENT", strings.TrimRight(b.String(), "\n"),
		"enter: select │ ↑/↓: navigate │ h: history │ v: version │ q: quit")
}
