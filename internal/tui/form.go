package tui

import (
	"strings"

	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSecret
	fieldChoice
	fieldToggle
)

type formField struct {
	label   string
	kind    fieldKind
	options []string

	input   textinput.Model
	choice  int
	toggled bool
}

// contentForm holds the inputs of one content type. Field order matches
// the order the values are read back in content().
type contentForm struct {
	contentType models.ContentType
	fields      []formField
}

var wifiEncryptions = []string{string(models.WPA), string(models.WEP), string(models.NoPass)}

func newContentForm(t models.ContentType) contentForm {
	f := contentForm{contentType: t}

	switch t {
	case models.URL:
		f.add("URL", fieldText, "https://example.com")
	case models.Text:
		f.add("Text", fieldText, "")
	case models.Email:
		f.add("Address", fieldText, "name@example.com")
		f.add("Subject", fieldText, "")
		f.add("Body", fieldText, "")
	case models.Phone:
		f.add("Number", fieldText, "+1 555 0100")
	case models.SMS:
		f.add("Number", fieldText, "+1 555 0100")
		f.add("Message", fieldText, "")
	case models.WiFi:
		f.add("SSID", fieldText, "")
		f.add("Password", fieldSecret, "")
		f.add("Encryption", fieldChoice, "")
		f.fields[len(f.fields)-1].options = wifiEncryptions
		f.add("Hidden", fieldToggle, "")
	case models.VCard:
		f.add("Name", fieldText, "Jane Doe")
		f.add("Organization", fieldText, "")
		f.add("Phone", fieldText, "")
		f.add("Email", fieldText, "")
		f.add("Website", fieldText, "")
	case models.Location:
		f.add("Latitude", fieldText, "47.4979")
		f.add("Longitude", fieldText, "19.0402")
	}

	return f
}

func (f *contentForm) add(label string, kind fieldKind, placeholder string) {
	in := textinput.New()
	in.Width = 40
	in.Placeholder = placeholder
	if kind == fieldSecret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	f.fields = append(f.fields, formField{label: label, kind: kind, input: in})
}

func (f contentForm) text(i int) string {
	if i >= len(f.fields) {
		return ""
	}
	return f.fields[i].input.Value()
}

// content reads the current values into the matching content struct.
func (f contentForm) content() models.Content {
	switch f.contentType {
	case models.URL:
		return models.URLData{URL: f.text(0)}
	case models.Text:
		return models.TextData{Text: f.text(0)}
	case models.Email:
		return models.EmailData{Address: f.text(0), Subject: f.text(1), Body: f.text(2)}
	case models.Phone:
		return models.PhoneData{Number: f.text(0)}
	case models.SMS:
		return models.SMSData{Number: f.text(0), Message: f.text(1)}
	case models.WiFi:
		return models.WiFiData{
			SSID:       f.text(0),
			Password:   f.text(1),
			Encryption: models.WiFiEncryption(wifiEncryptions[f.fields[2].choice]),
			Hidden:     f.fields[3].toggled,
		}
	case models.VCard:
		return models.VCardData{
			Name:         f.text(0),
			Organization: f.text(1),
			Phone:        f.text(2),
			Email:        f.text(3),
			URL:          f.text(4),
		}
	case models.Location:
		return models.LocationData{Latitude: f.text(0), Longitude: f.text(1)}
	default:
		return nil
	}
}

// focus makes field i the only focused text input.
func (f *contentForm) focus(i int) {
	for j := range f.fields {
		if j == i && isTextField(f.fields[j].kind) {
			f.fields[j].input.Focus()
			continue
		}
		f.fields[j].input.Blur()
	}
}

// cycle moves a choice field by delta or flips a toggle. Text fields are
// left alone and false is returned.
func (f *contentForm) cycle(i, delta int) bool {
	if i < 0 || i >= len(f.fields) {
		return false
	}

	field := &f.fields[i]
	switch field.kind {
	case fieldChoice:
		n := len(field.options)
		field.choice = ((field.choice+delta)%n + n) % n
		return true
	case fieldToggle:
		field.toggled = !field.toggled
		return true
	default:
		return false
	}
}

func isTextField(kind fieldKind) bool {
	return kind == fieldText || kind == fieldSecret
}

func (f contentForm) render(focused int) string {
	width := 0
	for _, field := range f.fields {
		if len(field.label) > width {
			width = len(field.label)
		}
	}

	var b strings.Builder
	for i, field := range f.fields {
		cursor := "  "
		if i == focused {
			cursor = focusedStyle.Render("> ")
		}

		b.WriteString(cursor)
		b.WriteString(field.label)
		b.WriteString(":")
		b.WriteString(strings.Repeat(" ", width-len(field.label)+1))

		switch field.kind {
		case fieldChoice:
			b.WriteString("< " + field.options[field.choice] + " >")
		case fieldToggle:
			if field.toggled {
				b.WriteString("[x]")
			} else {
				b.WriteString("[ ]")
			}
		default:
			b.WriteString("[" + field.input.View() + "]")
		}
		b.WriteString("\n")
	}

	return b.String()
}
