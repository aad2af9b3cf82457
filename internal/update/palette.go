package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brainbox-app/brainbox/internal/commands"
	"github.com/brainbox-app/brainbox/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var teaCmd tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			switch a.Kind {
			case "content":
				m.CurrentScreen = ScreenDashboard
				m.ActiveModal = ModalAddContent
				m.AddContent = newAddContentState()
				m.AddContent.TitleInput.SetValue(a.Title)
				return commands.Result{Message: fmt.Sprintf("adding content: %s", a.Title)}, nil
			default:
				m.CurrentScreen = ScreenTasks
				m.ActiveModal = ModalTaskForm
				m.TaskForm = newTaskFormState()
				m.TaskForm.TitleInput.SetValue(a.Title)
				return commands.Result{Message: fmt.Sprintf("adding task: %s", a.Title)}, nil
			}
		},
		Search: func(s commands.SearchArgs) (commands.Result, error) {
			m.CurrentScreen = ScreenDashboard
			m.Dashboard.Query = s.Query
			m.searchInput.SetValue(s.Query)
			m.applyContentFilter()
			if s.Query == "" {
				return commands.Result{Message: "search cleared"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("searching for %q", s.Query)}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			m.CurrentScreen = ScreenTasks
			m.Tasks.StatusFilter = model.TaskStatus(f.Status)
			m.applyTaskFilter()
			if f.Status == "" {
				return commands.Result{Message: "showing all tasks"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("filtering tasks: %s", f.Status)}, nil
		},
		Goto: func(g commands.GotoArgs) (commands.Result, error) {
			var target Screen
			switch g.Screen {
			case "tasks":
				target = ScreenTasks
			case "profile":
				target = ScreenProfile
			default:
				target = ScreenDashboard
			}
			next, fetchCmd := m.switchScreen(target)
			m = next.(Model)
			teaCmd = fetchCmd
			return commands.Result{Message: fmt.Sprintf("switched to %s", g.Screen)}, nil
		},
		Logout: func() (commands.Result, error) {
			m.sess.Logout(m.ctx)
			m.CurrentScreen = ScreenLanding
			m.Dashboard = DashboardState{}
			m.Tasks = TasksState{}
			return commands.Result{Message: "signed out"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	return m, teaCmd
}
