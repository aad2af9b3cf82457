package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brainbox-app/brainbox/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.restoreSessionCmd(), m.loadSpinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)

	case spinner.TickMsg:
		if m.spinning {
			var cmd tea.Cmd
			m.loadSpinner, cmd = m.loadSpinner.Update(typed)
			return m, cmd
		}
		return m, nil

	case SessionRestoredMsg:
		return m.onSessionRestored(typed)

	case AuthDoneMsg:
		return m.onAuthDone(typed)

	case OAuthDoneMsg:
		if typed.Err != nil {
			m.Status = StatusBar{Text: "sign-in failed: " + typed.Err.Error(), IsError: true}
			return m, nil
		}
		return m, m.adoptTokenCmd(typed.Token)

	case ContentListMsg:
		return m.onContentList(typed)
	case ContentSavedMsg:
		return m.onContentSaved(typed)
	case ContentDeletedMsg:
		return m.onContentDeleted(typed)
	case ShareDoneMsg:
		return m.onShareDone(typed)

	case TaskListMsg:
		return m.onTaskList(typed)
	case TaskSavedMsg:
		return m.onTaskSaved(typed)
	case TaskStatusMsg:
		return m.onTaskStatus(typed)
	case TaskDeletedMsg:
		return m.onTaskDeleted(typed)

	case ProfileMsg:
		return m.onProfile(typed)
	case ProfileSavedMsg:
		return m.onProfileSaved(typed)

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if m.ActiveModal != ModalNone {
		return m.handleModalKey(msg)
	}

	switch m.CurrentScreen {
	case ScreenLanding:
		return m.handleLandingKey(msg)
	case ScreenLogin:
		return m.handleAuthKey(msg, false)
	case ScreenRegister:
		return m.handleAuthKey(msg, true)
	}

	// Screens below require a session. Text capture comes first so the
	// search box can swallow printable keys.
	if m.CurrentScreen == ScreenDashboard && m.Dashboard.Searching {
		return m.handleSearchKey(msg)
	}
	if m.CurrentScreen == ScreenProfile && m.Profile.Editing {
		return m.handleProfileEditKey(msg)
	}

	switch msg.String() {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return m, nil
	case m.Keys.Dashboard:
		return m.switchScreen(ScreenDashboard)
	case m.Keys.Tasks:
		return m.switchScreen(ScreenTasks)
	case m.Keys.Profile:
		return m.switchScreen(ScreenProfile)
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.CurrentScreen {
	case ScreenDashboard:
		return m.handleDashboardKey(msg)
	case ScreenTasks:
		return m.handleTasksKey(msg)
	case ScreenProfile:
		return m.handleProfileKey(msg)
	}
	return m, nil
}

// switchScreen changes the authenticated screen and kicks off its fetch.
// Bumping the generation first makes any in-flight response stale.
func (m Model) switchScreen(target Screen) (tea.Model, tea.Cmd) {
	if !m.sess.Active() {
		m.Status = StatusBar{Text: "sign in first", IsError: true}
		return m, nil
	}
	m.CurrentScreen = target
	switch target {
	case ScreenDashboard:
		m.Dashboard.Gen++
		m.Dashboard.Loading = true
		m.spinning = true
		return m, tea.Batch(m.fetchContentCmd(), m.loadSpinner.Tick)
	case ScreenTasks:
		m.Tasks.Gen++
		m.Tasks.Loading = true
		m.spinning = true
		return m, tea.Batch(m.fetchTasksCmd(), m.loadSpinner.Tick)
	case ScreenProfile:
		return m, m.fetchProfileCmd()
	}
	return m, nil
}

func (m Model) onSessionRestored(msg SessionRestoredMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.CurrentScreen = ScreenLanding
		m.Status = StatusBar{Text: "invalid token: sign in again", IsError: true}
		return m, nil
	}
	if !m.sess.Active() {
		m.CurrentScreen = ScreenLanding
		return m, nil
	}
	return m.switchScreen(ScreenDashboard)
}

func (m Model) onAuthDone(msg AuthDoneMsg) (tea.Model, tea.Cmd) {
	m.Login.Submitting = false
	m.Register.Submitting = false
	if msg.Err != nil {
		errText := msg.Err.Error()
		switch m.CurrentScreen {
		case ScreenLogin:
			m.Login.ErrText = errText
		case ScreenRegister:
			m.Register.ErrText = errText
		default:
			m.Status = StatusBar{Text: errText, IsError: true}
		}
		return m, nil
	}
	m.Login.ErrText = ""
	m.Register.ErrText = ""
	m.Status = StatusBar{Text: "signed in as " + m.sess.CurrentProfile().Email, IsError: false}
	return m.switchScreen(ScreenDashboard)
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentScreen {
	case ScreenLanding:
		leftPane = views.RenderLandingPanel(views.LandingPanelData{
			Tagline: "your second brain, in the terminal",
		})
	case ScreenLogin:
		leftPane = m.renderAuthView("login", m.Login, "press [r] on the landing screen to register")
	case ScreenRegister:
		leftPane = m.renderAuthView("register", m.Register, "press [l] on the landing screen to login")
	case ScreenDashboard:
		leftPane = m.renderDashboardView()
		rightPane = m.renderContentDetailView()
	case ScreenTasks:
		leftPane = m.renderTasksView()
	case ScreenProfile:
		leftPane = m.renderProfileView()
	}
	if m.HelpVisible {
		rightPane = strings.TrimSpace(rightPane + "\n" + m.renderHelpView())
	}

	notification := views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
	if m.spinning && (m.Dashboard.Loading || m.Tasks.Loading) {
		notification = strings.TrimSpace(notification + "\nworking: " + m.loadSpinner.View())
	}

	email := m.sess.CurrentProfile().Email
	if email == "" {
		email = "(signed out)"
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("brainbox | screen: %s | %s", m.CurrentScreen, email),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		Modal:        m.renderModalView(),
		StatusLine:   status,
		Notification: strings.TrimSpace(notification),
		Footer: fmt.Sprintf("keys: %s dashboard | %s tasks | %s profile | / cmd | %s help | %s quit",
			m.Keys.Dashboard, m.Keys.Tasks, m.Keys.Profile, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderModalView() string {
	switch m.ActiveModal {
	case ModalAddContent:
		return m.renderAddContentModal()
	case ModalShare:
		return m.renderShareModal()
	case ModalTaskForm:
		return m.renderTaskFormModal()
	case ModalConfirm:
		return views.RenderConfirmModal(views.ConfirmModalData{
			Question: fmt.Sprintf("delete %s %q?", m.Confirm.Kind, m.Confirm.Title),
		})
	default:
		return ""
	}
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ActiveModal {
	case ModalAddContent:
		return m.handleAddContentKey(msg)
	case ModalShare:
		return m.handleShareKey(msg)
	case ModalTaskForm:
		return m.handleTaskFormKey(msg)
	case ModalConfirm:
		return m.handleConfirmKey(msg)
	}
	return m, nil
}
