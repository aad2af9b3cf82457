package views

import (
	"fmt"
	"strings"
)

type LandingPanelData struct {
	Tagline string
}

type AuthFieldData struct {
	Label   string
	View    string
	Focused bool
}

type AuthPanelData struct {
	Title      string
	Fields     []AuthFieldData
	ErrorText  string
	Submitting bool
	SwitchHint string
}

type ContentRowData struct {
	ID    string
	Title string
	Type  string
	Tags  []string
}

type DashboardPanelData struct {
	SearchView string
	Searching  bool
	Query      string
	Rows       []ContentRowData
	SelectedID string
	Loading    bool
}

type ContentDetailData struct {
	Row      *ContentRowData
	URL      string
	Markdown string
}

type AddContentModalData struct {
	TitleView string
	URLView   string
	TypeValue string
	TagsView  string
	ErrorText string
	Saving    bool
}

type ShareModalData struct {
	ContentTitle string
	EmailView    string
	DescView     string
	Permission   string
	ErrorText    string
	Sending      bool
	ResultLink   string
}

type TaskRowData struct {
	ID       string
	Title    string
	Status   string
	Priority string
	DueDate  string
}

type TasksPanelData struct {
	StatusFilter string
	Rows         []TaskRowData
	SelectedID   string
	Loading      bool
}

type TaskFormData struct {
	Editing       bool
	TitleView     string
	DescView      string
	PriorityValue string
	StartDateView string
	DueDateView   string
	StartTimeView string
	EndTimeView   string
	ErrorText     string
	Saving        bool
}

type ConfirmModalData struct {
	Question string
}

type ProfilePanelData struct {
	Name       string
	Email      string
	Phone      string
	AvatarURL  string
	Editing    bool
	NameView   string
	PhoneView  string
	AvatarView string
	ErrorText  string
	Saving     bool
}

func RenderLandingPanel(data LandingPanelData) string {
	var b strings.Builder
	b.WriteString("brainbox:\n")
	if data.Tagline != "" {
		b.WriteString(data.Tagline + "\n")
	}
	b.WriteString("actions: [l]login [r]register [g]google [q]quit")
	return b.String()
}

func RenderAuthPanel(data AuthPanelData) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(data.Title) + ":\n")
	for _, f := range data.Fields {
		cursor := " "
		if f.Focused {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, f.Label, f.View))
	}
	if data.Submitting {
		b.WriteString("submitting...\n")
	}
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	b.WriteString("actions: [tab]field [enter]submit [esc]back")
	if data.SwitchHint != "" {
		b.WriteString("\n" + data.SwitchHint)
	}
	return strings.TrimSpace(b.String())
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString("dashboard:\n")
	if data.Searching {
		b.WriteString("search: " + data.SearchView + "\n")
	} else if data.Query != "" {
		b.WriteString(fmt.Sprintf("search: %q (press / to edit)\n", data.Query))
	}
	b.WriteString("actions: [j/k]move [f]search [a]add [enter]view [s]share [d]delete\n")
	if data.Loading {
		b.WriteString("loading...")
		return strings.TrimSpace(b.String())
	}
	if len(data.Rows) == 0 {
		if data.Query != "" {
			b.WriteString("(no matches)")
		} else {
			b.WriteString("(no content yet, press [a] to add)")
		}
		return strings.TrimSpace(b.String())
	}
	for _, row := range data.Rows {
		cursor := " "
		if data.SelectedID == row.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s [%s] %s", cursor, row.Type, row.Title))
		if len(row.Tags) > 0 {
			b.WriteString(" #" + strings.Join(row.Tags, " #"))
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderContentDetail(data ContentDetailData) string {
	if data.Row == nil {
		return "detail:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString("detail:\n")
	b.WriteString(fmt.Sprintf("title: %s\n", data.Row.Title))
	b.WriteString(fmt.Sprintf("type: %s\n", data.Row.Type))
	if data.URL != "" {
		b.WriteString(fmt.Sprintf("url: %s\n", data.URL))
	}
	if len(data.Row.Tags) > 0 {
		b.WriteString("tags: " + strings.Join(data.Row.Tags, ", ") + "\n")
	}
	if data.Markdown != "" {
		b.WriteString("\n" + data.Markdown)
	}
	return strings.TrimSpace(b.String())
}

func RenderAddContentModal(data AddContentModalData) string {
	var b strings.Builder
	b.WriteString("add content:\n")
	b.WriteString("title: " + data.TitleView + "\n")
	b.WriteString("url: " + data.URLView + "\n")
	b.WriteString(fmt.Sprintf("type: %s (left/right to change)\n", data.TypeValue))
	b.WriteString("tags: " + data.TagsView + "\n")
	if data.Saving {
		b.WriteString("saving...\n")
	}
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	b.WriteString("actions: [tab]field [enter]save [esc]cancel")
	return b.String()
}

func RenderShareModal(data ShareModalData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("share %q:\n", data.ContentTitle))
	if data.ResultLink != "" {
		b.WriteString("link: " + data.ResultLink + "\n")
		b.WriteString("actions: [c]copy [esc]close")
		return b.String()
	}
	b.WriteString("email: " + data.EmailView + "\n")
	b.WriteString("description: " + data.DescView + "\n")
	b.WriteString(fmt.Sprintf("permission: %s (left/right to change)\n", data.Permission))
	if data.Sending {
		b.WriteString("sharing...\n")
	}
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	b.WriteString("actions: [tab]field [enter]share [esc]cancel")
	return b.String()
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	filter := data.StatusFilter
	if filter == "" {
		filter = "ALL"
	}
	b.WriteString(fmt.Sprintf("filter: %s\n", filter))
	b.WriteString("actions: [j/k]move [f]filter [a]add [e]edit [space]toggle [d]delete\n")
	if data.Loading {
		b.WriteString("loading...")
		return strings.TrimSpace(b.String())
	}
	if len(data.Rows) == 0 {
		b.WriteString("(no tasks)")
		return strings.TrimSpace(b.String())
	}
	for _, row := range data.Rows {
		cursor := " "
		if data.SelectedID == row.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s [%s/%s] %s", cursor, statusBadge(row.Status), row.Status, row.Priority, row.Title))
		if row.DueDate != "" {
			b.WriteString(" due:" + row.DueDate)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderTaskForm(data TaskFormData) string {
	var b strings.Builder
	if data.Editing {
		b.WriteString("edit task:\n")
	} else {
		b.WriteString("add task:\n")
	}
	b.WriteString("title: " + data.TitleView + "\n")
	b.WriteString("description: " + data.DescView + "\n")
	b.WriteString(fmt.Sprintf("priority: %s (left/right to change)\n", data.PriorityValue))
	b.WriteString("start date: " + data.StartDateView + "\n")
	b.WriteString("due date: " + data.DueDateView + "\n")
	b.WriteString("start time: " + data.StartTimeView + "\n")
	b.WriteString("end time: " + data.EndTimeView + "\n")
	if data.Saving {
		b.WriteString("saving...\n")
	}
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	b.WriteString("actions: [tab]field [enter]save [esc]cancel")
	return b.String()
}

func RenderConfirmModal(data ConfirmModalData) string {
	return fmt.Sprintf("confirm:\n%s\nactions: [y]yes [n]no", data.Question)
}

func RenderProfilePanel(data ProfilePanelData) string {
	var b strings.Builder
	b.WriteString("profile:\n")
	if data.Editing {
		b.WriteString("name: " + data.NameView + "\n")
		b.WriteString("email: " + data.Email + " (read only)\n")
		b.WriteString("phone: " + data.PhoneView + "\n")
		b.WriteString("avatar: " + data.AvatarView + "\n")
		if data.Saving {
			b.WriteString("saving...\n")
		}
		if data.ErrorText != "" {
			b.WriteString("error: " + data.ErrorText + "\n")
		}
		b.WriteString("actions: [tab]field [enter]save [esc]cancel")
		return b.String()
	}
	b.WriteString("name: " + data.Name + "\n")
	b.WriteString("email: " + data.Email + "\n")
	b.WriteString("phone: " + data.Phone + "\n")
	if data.AvatarURL != "" {
		b.WriteString("avatar: " + data.AvatarURL + "\n")
	}
	b.WriteString("actions: [e]edit [x]logout")
	return b.String()
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func statusBadge(status string) string {
	switch status {
	case "COMPLETED":
		return "[x]"
	case "REJECTED":
		return "[-]"
	default:
		return "[ ]"
	}
}
