package tui

// errorOverlayModel is a modal box for failures the user has to acknowledge.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(errorStyle.Render("Error") + "\n\n" + m.message + "\n\nenter / esc: close")
}
