package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-forge/internal/service"
	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const historyPageSize = 100

// HistoryModel lists saved payloads and lets the user copy or delete them.
type HistoryModel struct {
	ctx      context.Context
	services *service.ClientServices

	items      []models.SavedPayload
	idx        int
	loading    bool
	spinner    spinner.Model
	detail     bool
	confirming bool
	overlay    string

	status string
	errMsg string
}

func NewHistoryModel(ctx context.Context, services *service.ClientServices) *HistoryModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &HistoryModel{ctx: ctx, services: services, spinner: s}
}

func (m *HistoryModel) Init() tea.Cmd {
	m.loading = true
	m.detail, m.confirming = false, false
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *HistoryModel) cmdLoad() tea.Cmd {
	ctx, history := m.ctx, m.services.HistoryService
	return func() tea.Msg {
		items, err := history.List(ctx, models.PayloadFilter{Limit: historyPageSize})
		return historyLoadedMsg{items: items, err: err}
	}
}

func (m *HistoryModel) cmdDelete(id string) tea.Cmd {
	ctx, history := m.ctx, m.services.HistoryService
	return func() tea.Msg {
		return payloadDeletedMsg{id: id, err: history.Delete(ctx, id)}
	}
}

func (m *HistoryModel) current() (models.SavedPayload, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.SavedPayload{}, false
	}
	return m.items[m.idx], true
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case payloadDeletedMsg:
		if msg.err != nil {
			m.overlay = "Delete failed: " + humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Deleted"
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard is unavailable: " + msg.err.Error()
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.overlay != "" {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.overlay = ""
		}
		return m, nil
	}

	if m.confirming {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.confirming = false
			if item, ok := m.current(); ok {
				return m, m.cmdDelete(item.ID)
			}
		case key.Matches(keyMsg, keys.no):
			m.confirming = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		if m.detail {
			m.detail = false
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageTypes} }
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.current(); ok {
			m.detail = !m.detail
		}
	case key.Matches(keyMsg, keys.copyItem):
		if item, ok := m.current(); ok {
			return m, cmdCopy(item.Data)
		}
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.current(); ok {
			m.confirming = true
		}
	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	}

	return m, nil
}

func (m *HistoryModel) View() string {
	if m.overlay != "" {
		return renderPage("HISTORY", errorOverlayModel{message: m.overlay}.View(), "")
	}
	if m.confirming {
		item, _ := m.current()
		return renderPage("HISTORY", confirmModel{message: item.Name}.View(), "")
	}
	if m.detail {
		return m.viewDetail()
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No saved codes yet\n")
	default:
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = focusedStyle.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%-24s %-8s %s  %s\n",
				cursor,
				fitText(item.Name, 24),
				item.Type,
				item.CreatedAt.Local().Format("2006-01-02 15:04"),
				fitText(oneLine(item.Data), 40),
			))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("HISTORY", strings.TrimRight(b.String(), "\n"),
		"enter: details │ c: copy │ d: delete │ r: reload │ esc: back")
}

func (m *HistoryModel) viewDetail() string {
	item, _ := m.current()

	var b strings.Builder
	b.WriteString("Name:    " + item.Name + "\n")
	b.WriteString("Type:    " + item.Type.String() + "\n")
	b.WriteString("Created: " + item.CreatedAt.Local().Format("2006-01-02 15:04:05") + "\n")
	b.WriteString(fmt.Sprintf("Style:   %s, %dpx, %s on %s\n", item.Style.Preset, item.Style.Size, item.Style.Foreground, item.Style.Background))
	b.WriteString("\n")
	b.WriteString(previewBoxStyle.Render(item.Data))
	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}

	return renderPage("HISTORY: "+strings.ToUpper(item.Name), b.String(), "c: copy │ d: delete │ esc: back")
}
