package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/brainbox-app/brainbox/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Dashboard, Action: "switch to Dashboard"},
		{Key: m.Keys.Tasks, Action: "switch to Tasks"},
		{Key: m.Keys.Profile, Action: "switch to Profile"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) screenBindings() []KeyBinding {
	switch m.CurrentScreen {
	case ScreenDashboard:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "f", Action: "search by title or tag"},
			{Key: "a", Action: "add content"},
			{Key: "enter", Action: "toggle detail pane"},
			{Key: "s", Action: "share selected"},
			{Key: "d", Action: "delete selected"},
			{Key: "r", Action: "refresh"},
		}
	case ScreenTasks:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "f", Action: "cycle status filter"},
			{Key: "a/e", Action: "add / edit task"},
			{Key: "space", Action: "toggle done"},
			{Key: "d", Action: "delete selected"},
			{Key: "r", Action: "refresh"},
		}
	case ScreenProfile:
		return []KeyBinding{
			{Key: "e", Action: "edit profile"},
			{Key: "x", Action: "logout"},
			{Key: "r", Action: "refresh"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.screenBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentScreen),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.screenBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.screenBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
