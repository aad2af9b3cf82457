package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brainbox-app/brainbox/internal/views"
)

func (m Model) handleLandingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "l":
		m.CurrentScreen = ScreenLogin
		m.Login = newAuthState([]string{"email", "password"})
		return m, nil
	case "r":
		m.CurrentScreen = ScreenRegister
		m.Register = newAuthState([]string{"name", "email", "phone", "password"})
		return m, nil
	case "g":
		if m.oauthURL == nil {
			m.Status = StatusBar{Text: "google sign-in not configured", IsError: true}
			return m, nil
		}
		m.Status = StatusBar{Text: "waiting for browser sign-in...", IsError: false}
		return m, m.oauthCmd()
	case "q":
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleAuthKey(msg tea.KeyMsg, register bool) (tea.Model, tea.Cmd) {
	state := &m.Login
	if register {
		state = &m.Register
	}
	if state.Submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.CurrentScreen = ScreenLanding
		return m, nil
	case "tab", "down":
		state.Focus = (state.Focus + 1) % len(state.Inputs)
		focusAuthField(state)
		return m, nil
	case "shift+tab", "up":
		state.Focus = (state.Focus - 1 + len(state.Inputs)) % len(state.Inputs)
		focusAuthField(state)
		return m, nil
	case "enter":
		return m.submitAuth(state, register)
	}

	var cmd tea.Cmd
	state.Inputs[state.Focus], cmd = state.Inputs[state.Focus].Update(msg)
	return m, cmd
}

func (m Model) submitAuth(state *AuthState, register bool) (tea.Model, tea.Cmd) {
	values := make([]string, len(state.Inputs))
	for i := range state.Inputs {
		values[i] = strings.TrimSpace(state.Inputs[i].Value())
	}
	for i, v := range values {
		if v == "" {
			state.ErrText = state.Inputs[i].Placeholder + " is required"
			state.Focus = i
			focusAuthField(state)
			return m, nil
		}
	}

	state.ErrText = ""
	state.Submitting = true
	if register {
		return m, m.registerCmd(values[0], values[1], values[2], values[3])
	}
	return m, m.loginCmd(values[0], values[1])
}

func focusAuthField(state *AuthState) {
	for i := range state.Inputs {
		if i == state.Focus {
			state.Inputs[i].Focus()
		} else {
			state.Inputs[i].Blur()
		}
	}
}

func (m Model) renderAuthView(title string, state AuthState, switchHint string) string {
	fields := make([]views.AuthFieldData, 0, len(state.Inputs))
	for i, in := range state.Inputs {
		fields = append(fields, views.AuthFieldData{
			Label:   in.Placeholder,
			View:    in.View(),
			Focused: i == state.Focus,
		})
	}
	return views.RenderAuthPanel(views.AuthPanelData{
		Title:      title,
		Fields:     fields,
		ErrorText:  state.ErrText,
		Submitting: state.Submitting,
		SwitchHint: switchHint,
	})
}
