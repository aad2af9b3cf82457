package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brainbox-app/brainbox/internal/model"
	"github.com/brainbox-app/brainbox/internal/views"
)

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e":
		profile := m.sess.CurrentProfile()
		m.Profile.Editing = true
		m.Profile.ErrText = ""
		m.Profile.NameInput.SetValue(profile.Name)
		m.Profile.PhoneInput.SetValue(profile.Phone)
		m.Profile.AvatarInput.SetValue(profile.AvatarURL)
		m.Profile.Focus = 0
		m.focusProfileField()
		return m, nil
	case "x":
		m.sess.Logout(m.ctx)
		m.CurrentScreen = ScreenLanding
		m.Dashboard = DashboardState{}
		m.Tasks = TasksState{}
		m.Status = StatusBar{Text: "signed out", IsError: false}
		return m, nil
	case "r":
		return m, m.fetchProfileCmd()
	}
	return m, nil
}

func (m Model) handleProfileEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.Profile
	if s.Saving {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		s.Editing = false
		return m, nil
	case "tab", "down":
		s.Focus = (s.Focus + 1) % 3
		m.focusProfileField()
		return m, nil
	case "shift+tab", "up":
		s.Focus = (s.Focus - 1 + 3) % 3
		m.focusProfileField()
		return m, nil
	case "enter":
		name := strings.TrimSpace(s.NameInput.Value())
		if name == "" {
			s.ErrText = "name is required"
			return m, nil
		}
		s.ErrText = ""
		s.Saving = true
		return m, m.saveProfileCmd(model.ProfileUpdate{
			Name:      name,
			Phone:     strings.TrimSpace(s.PhoneInput.Value()),
			AvatarURL: strings.TrimSpace(s.AvatarInput.Value()),
		})
	}

	var cmd tea.Cmd
	switch s.Focus {
	case 0:
		s.NameInput, cmd = s.NameInput.Update(msg)
	case 1:
		s.PhoneInput, cmd = s.PhoneInput.Update(msg)
	case 2:
		s.AvatarInput, cmd = s.AvatarInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusProfileField() {
	s := &m.Profile
	s.NameInput.Blur()
	s.PhoneInput.Blur()
	s.AvatarInput.Blur()
	switch s.Focus {
	case 0:
		s.NameInput.Focus()
	case 1:
		s.PhoneInput.Focus()
	case 2:
		s.AvatarInput.Focus()
	}
}

func (m Model) onProfile(msg ProfileMsg) (tea.Model, tea.Cmd) {
	// A fetch can land after logout; caching it would write a profile back
	// into a cleared state store.
	if !m.sess.Active() {
		return m, nil
	}
	if msg.Err != nil {
		m.Status = StatusBar{Text: "failed to load profile: " + msg.Err.Error(), IsError: true}
		return m, nil
	}
	m.sess.SetProfile(m.ctx, msg.Profile)
	return m, nil
}

func (m Model) onProfileSaved(msg ProfileSavedMsg) (tea.Model, tea.Cmd) {
	m.Profile.Saving = false
	if msg.Err != nil {
		m.Profile.ErrText = msg.Err.Error()
		return m, nil
	}
	m.Profile.Editing = false
	m.Status = StatusBar{Text: "profile updated", IsError: false}

	// Email never changes through an update; merge the edited fields into
	// the cached profile.
	profile := m.sess.CurrentProfile().Apply(msg.Update)
	m.sess.SetProfile(m.ctx, profile)
	return m, nil
}

func (m Model) renderProfileView() string {
	profile := m.sess.CurrentProfile()
	return views.RenderProfilePanel(views.ProfilePanelData{
		Name:       profile.Name,
		Email:      profile.Email,
		Phone:      profile.Phone,
		AvatarURL:  profile.AvatarURL,
		Editing:    m.Profile.Editing,
		NameView:   m.Profile.NameInput.View(),
		PhoneView:  m.Profile.PhoneInput.View(),
		AvatarView: m.Profile.AvatarInput.View(),
		ErrorText:  m.Profile.ErrText,
		Saving:     m.Profile.Saving,
	})
}
