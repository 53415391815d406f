package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-qr-forge/internal/service"
	"github.com/MKhiriev/go-qr-forge/internal/style"
	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const sizeStep = 50

// style inputs follow the content fields in the focus order
const (
	styleForeground = iota
	styleBackground
	styleInputsCount
)

// GeneratorModel edits one content type and shows the encoded payload,
// recomputed after every change.
type GeneratorModel struct {
	ctx      context.Context
	services *service.ClientServices

	form        contentForm
	styleInputs []textinput.Model
	style       models.Style
	payload     models.Payload
	focus       int

	naming    bool
	nameInput textinput.Model
	saving    bool

	status string
	errMsg string
}

func NewGeneratorModel(ctx context.Context, services *service.ClientServices) *GeneratorModel {
	m := &GeneratorModel{ctx: ctx, services: services}
	m.open(models.URL)
	return m
}

func (m *GeneratorModel) Init() tea.Cmd {
	return textinput.Blink
}

// open starts a fresh session for t with default style.
func (m *GeneratorModel) open(t models.ContentType) {
	m.form = newContentForm(t)
	m.style = m.services.StyleService.Default(m.ctx)
	m.styleInputs = make([]textinput.Model, styleInputsCount)
	for i := range m.styleInputs {
		m.styleInputs[i] = textinput.New()
		m.styleInputs[i].Width = 9
		m.styleInputs[i].CharLimit = 7
	}
	m.syncStyleInputs()

	m.focus = 0
	m.naming = false
	m.saving = false
	m.status, m.errMsg = "", ""
	m.applyFocus()
	m.recompute()
}

func (m *GeneratorModel) recompute() {
	m.payload = m.services.PayloadService.Generate(m.ctx, m.form.content())
}

func (m *GeneratorModel) syncStyleInputs() {
	m.styleInputs[styleForeground].SetValue(m.style.Foreground)
	m.styleInputs[styleBackground].SetValue(m.style.Background)
}

func (m *GeneratorModel) focusCount() int {
	return len(m.form.fields) + len(m.styleInputs)
}

// styleIndex maps the focus to a style input, or -1 for content fields.
func (m *GeneratorModel) styleIndex() int {
	if m.focus < len(m.form.fields) {
		return -1
	}
	return m.focus - len(m.form.fields)
}

func (m *GeneratorModel) applyFocus() {
	m.form.focus(m.focus)
	si := m.styleIndex()
	for i := range m.styleInputs {
		if i == si && m.payload.Validation.Valid {
			m.styleInputs[i].Focus()
			continue
		}
		m.styleInputs[i].Blur()
	}
}

func (m *GeneratorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case typeChosenMsg:
		m.open(msg.contentType)
		return m, textinput.Blink
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard is unavailable: " + msg.err.Error()
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, cmdClearStatus()
	case payloadSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Saved as \"" + msg.saved.Name + "\""
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if m.naming {
		return m.updateNaming(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageTypes} }
	case key.Matches(keyMsg, keys.copy):
		if !m.payload.Validation.Valid {
			m.errMsg = "Nothing to copy: " + m.payload.Validation.Reason
			return m, nil
		}
		return m, cmdCopy(m.payload.Data)
	case key.Matches(keyMsg, keys.save):
		if !m.payload.Validation.Valid {
			m.errMsg = "Nothing to save: " + m.payload.Validation.Reason
			return m, nil
		}
		m.startNaming()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.reset):
		m.open(m.form.contentType)
		m.status = "Reset"
		return m, cmdClearStatus()
	case key.Matches(keyMsg, keys.preset):
		return m, m.cyclePreset()
	case key.Matches(keyMsg, keys.sizeUp):
		m.resize(sizeStep)
		return m, nil
	case key.Matches(keyMsg, keys.sizeDown):
		m.resize(-sizeStep)
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.focus = (m.focus + 1) % m.focusCount()
		m.applyFocus()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.focus = (m.focus - 1 + m.focusCount()) % m.focusCount()
		m.applyFocus()
		return m, nil
	case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.right), keyMsg.String() == " ":
		delta := 1
		if key.Matches(keyMsg, keys.left) {
			delta = -1
		}
		if m.form.cycle(m.focus, delta) {
			m.recompute()
			return m, nil
		}
	}

	return m.updateInputs(msg)
}

// updateInputs forwards msg to the focused input and recomputes whatever
// depends on it.
func (m *GeneratorModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if si := m.styleIndex(); si >= 0 {
		if !m.payload.Validation.Valid {
			return m, nil
		}
		m.styleInputs[si], cmd = m.styleInputs[si].Update(msg)
		m.applyColor(si)
		return m, cmd
	}

	if m.focus < len(m.form.fields) && isTextField(m.form.fields[m.focus].kind) {
		before := m.form.fields[m.focus].input.Value()
		m.form.fields[m.focus].input, cmd = m.form.fields[m.focus].input.Update(msg)
		if m.form.fields[m.focus].input.Value() != before {
			m.errMsg = ""
			m.recompute()
			m.applyFocus()
		}
	}

	return m, cmd
}

// applyColor stores the edited color once it is a complete hex value.
// Partial input is kept in the field until it becomes valid.
func (m *GeneratorModel) applyColor(si int) {
	value := m.styleInputs[si].Value()

	var (
		updated models.Style
		err     error
	)
	switch si {
	case styleForeground:
		updated, err = style.SetForeground(m.style, value)
	case styleBackground:
		updated, err = style.SetBackground(m.style, value)
	}
	if err != nil {
		return
	}
	m.style = updated
}

func (m *GeneratorModel) cyclePreset() tea.Cmd {
	if !m.payload.Validation.Valid {
		return nil
	}

	next := style.Next(m.style.Preset)
	updated, err := m.services.StyleService.ApplyPreset(m.ctx, m.style, next)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.style = updated
	m.syncStyleInputs()
	m.status = "Preset: " + string(next)
	return cmdClearStatus()
}

func (m *GeneratorModel) resize(delta int) {
	if !m.payload.Validation.Valid {
		return
	}

	updated, err := style.SetSize(m.style, m.style.Size+delta)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.style = updated
}

func (m *GeneratorModel) startNaming() {
	m.naming = true
	m.errMsg = ""
	m.nameInput = textinput.New()
	m.nameInput.Width = 40
	m.nameInput.CharLimit = service.MaxPayloadNameLength
	m.nameInput.Placeholder = m.payload.FileName("")
	m.nameInput.Focus()
	m.form.focus(-1)
}

func (m *GeneratorModel) updateNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.naming = false
		m.applyFocus()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.saving {
			return m, nil
		}
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			name = m.nameInput.Placeholder
		}
		m.naming = false
		m.saving = true
		m.applyFocus()
		return m, m.cmdSave(name)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *GeneratorModel) cmdSave(name string) tea.Cmd {
	ctx := m.ctx
	history := m.services.HistoryService
	content := m.form.content()
	st := m.style

	return func() tea.Msg {
		fields, err := models.EncodeFields(content)
		if err != nil {
			return payloadSavedMsg{err: err}
		}

		saved, err := history.Save(ctx, models.SaveRequest{
			Name: name,
			ContentRequest: models.ContentRequest{
				Type:   content.ContentType(),
				Fields: fields,
			},
			Style: &st,
		})
		return payloadSavedMsg{saved: saved, err: err}
	}
}

func (m *GeneratorModel) View() string {
	var b strings.Builder

	b.WriteString(m.form.render(m.focus))
	b.WriteString("\n")
	b.WriteString(m.renderStyle())
	b.WriteString("\n")

	if m.payload.Validation.Valid {
		b.WriteString(validStyle.Render("Payload"))
		b.WriteString("\n")
		b.WriteString(previewBoxStyle.Render(m.payload.Data))
	} else {
		b.WriteString(errorStyle.Render(m.payload.Validation.Reason))
	}
	b.WriteString("\n")

	if m.naming {
		b.WriteString("\nSave as: [" + m.nameInput.View() + "]  enter: save │ esc: cancel\n")
	}
	if m.saving {
		b.WriteString("\nSaving...\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	title := "QR FORGE: " + strings.ToUpper(contentTypeTitles[m.form.contentType])
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+y: copy │ ctrl+s: save │ ctrl+p: preset │ pgup/pgdn: size │ ctrl+r: reset │ esc: back")
}

func (m *GeneratorModel) renderStyle() string {
	enabled := m.payload.Validation.Valid
	render := func(s string) string {
		if enabled {
			return s
		}
		return disabledStyle.Render(s)
	}

	base := len(m.form.fields)
	cursor := func(i int) string {
		if enabled && m.focus == base+i {
			return focusedStyle.Render("> ")
		}
		return "  "
	}

	var b strings.Builder
	b.WriteString(render(fmt.Sprintf("Style: %s, %spx, margin %d, level %s",
		m.style.Preset, strconv.Itoa(m.style.Size), m.style.Margin, m.style.ErrorCorrection)))
	b.WriteString("\n")
	b.WriteString(cursor(styleForeground) + render("Foreground: ") + "[" + m.styleInputs[styleForeground].View() + "]\n")
	b.WriteString(cursor(styleBackground) + render("Background: ") + "[" + m.styleInputs[styleBackground].View() + "]\n")
	return b.String()
}
