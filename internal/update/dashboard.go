package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brainbox-app/brainbox/internal/model"
	"github.com/brainbox-app/brainbox/internal/views"
)

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.Dashboard.Cursor < len(m.Dashboard.Visible)-1 {
			m.Dashboard.Cursor++
		}
		return m, nil
	case "k", "up":
		if m.Dashboard.Cursor > 0 {
			m.Dashboard.Cursor--
		}
		return m, nil
	case "f":
		m.Dashboard.Searching = true
		m.searchInput.SetValue(m.Dashboard.Query)
		m.searchInput.Focus()
		return m, nil
	case "a":
		m.ActiveModal = ModalAddContent
		m.AddContent = newAddContentState()
		return m, nil
	case "enter":
		m.Dashboard.Detail = !m.Dashboard.Detail
		return m, nil
	case "s":
		item, ok := m.currentContentItem()
		if !ok {
			m.Status = StatusBar{Text: "nothing selected to share", IsError: true}
			return m, nil
		}
		m.ActiveModal = ModalShare
		m.Share = ShareState{
			ContentID:    item.ID,
			ContentTitle: item.Title,
			EmailInput:   newFieldInput("email", 64),
			DescInput:    newFieldInput("description", 256),
		}
		m.Share.EmailInput.Focus()
		return m, nil
	case "d":
		item, ok := m.currentContentItem()
		if !ok {
			return m, nil
		}
		m.ActiveModal = ModalConfirm
		m.Confirm = ConfirmState{Kind: "content", ID: item.ID, Title: item.Title}
		return m, nil
	case "r":
		m.Dashboard.Gen++
		m.Dashboard.Loading = true
		m.spinning = true
		return m, tea.Batch(m.fetchContentCmd(), m.loadSpinner.Tick)
	}
	return m, nil
}

// handleSearchKey runs while the search box has focus; every keystroke
// re-applies the substring filter.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Dashboard.Searching = false
		m.Dashboard.Query = ""
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.applyContentFilter()
		return m, nil
	case "enter":
		m.Dashboard.Searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.Dashboard.Query = m.searchInput.Value()
	m.applyContentFilter()
	return m, cmd
}

func (m *Model) applyContentFilter() {
	m.Dashboard.Visible = model.FilterContent(m.Dashboard.Items, m.Dashboard.Query)
	if m.Dashboard.Cursor >= len(m.Dashboard.Visible) {
		m.Dashboard.Cursor = len(m.Dashboard.Visible) - 1
	}
	if m.Dashboard.Cursor < 0 {
		m.Dashboard.Cursor = 0
	}
}

func (m Model) currentContentItem() (model.ContentItem, bool) {
	if m.Dashboard.Cursor < 0 || m.Dashboard.Cursor >= len(m.Dashboard.Visible) {
		return model.ContentItem{}, false
	}
	return m.Dashboard.Visible[m.Dashboard.Cursor], true
}

// onContentList applies a fetch result. A stale generation means a newer
// fetch is already in flight, so the payload is dropped. A fetch error keeps
// the screen usable with an empty list.
func (m Model) onContentList(msg ContentListMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.Dashboard.Gen {
		return m, nil
	}
	m.Dashboard.Loading = false
	m.spinning = false
	if msg.Err != nil {
		m.Dashboard.Items = nil
		m.applyContentFilter()
		m.Status = StatusBar{Text: "no content available", IsError: true}
		return m, nil
	}
	m.Dashboard.Items = msg.Items
	m.applyContentFilter()
	return m, nil
}

func (m Model) onContentSaved(msg ContentSavedMsg) (tea.Model, tea.Cmd) {
	m.AddContent.Saving = false
	if msg.Err != nil {
		m.AddContent.ErrText = msg.Err.Error()
		return m, nil
	}
	m.ActiveModal = ModalNone
	m.Status = StatusBar{Text: "content added", IsError: false}
	m.Dashboard.Gen++
	m.Dashboard.Loading = true
	m.spinning = true
	return m, tea.Batch(m.fetchContentCmd(), m.loadSpinner.Tick)
}

func (m Model) onContentDeleted(msg ContentDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Status = StatusBar{Text: "delete failed: " + msg.Err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: "content deleted", IsError: false}
	m.Dashboard.Gen++
	m.Dashboard.Loading = true
	m.spinning = true
	return m, tea.Batch(m.fetchContentCmd(), m.loadSpinner.Tick)
}

func (m Model) handleAddContentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.AddContent
	if s.Saving {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.ActiveModal = ModalNone
		return m, nil
	case "tab", "down":
		s.Focus = (s.Focus + 1) % 4
		m.focusAddContentField()
		return m, nil
	case "shift+tab", "up":
		s.Focus = (s.Focus - 1 + 4) % 4
		m.focusAddContentField()
		return m, nil
	case "left":
		if s.Focus == 2 {
			s.TypeIdx = (s.TypeIdx - 1 + len(contentTypes)) % len(contentTypes)
			return m, nil
		}
	case "right":
		if s.Focus == 2 {
			s.TypeIdx = (s.TypeIdx + 1) % len(contentTypes)
			return m, nil
		}
	case "enter":
		return m.submitAddContent()
	}

	var cmd tea.Cmd
	switch s.Focus {
	case 0:
		s.TitleInput, cmd = s.TitleInput.Update(msg)
	case 1:
		s.URLInput, cmd = s.URLInput.Update(msg)
	case 3:
		s.TagsInput, cmd = s.TagsInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusAddContentField() {
	s := &m.AddContent
	s.TitleInput.Blur()
	s.URLInput.Blur()
	s.TagsInput.Blur()
	switch s.Focus {
	case 0:
		s.TitleInput.Focus()
	case 1:
		s.URLInput.Focus()
	case 3:
		s.TagsInput.Focus()
	}
}

func (m Model) submitAddContent() (tea.Model, tea.Cmd) {
	s := &m.AddContent
	item := model.ContentItem{
		Title: strings.TrimSpace(s.TitleInput.Value()),
		URL:   strings.TrimSpace(s.URLInput.Value()),
		Type:  contentTypes[s.TypeIdx],
		Tags:  splitTags(s.TagsInput.Value()),
	}
	if err := item.Validate(); err != nil {
		s.ErrText = err.Error()
		return m, nil
	}
	if item.URL == "" {
		s.ErrText = "url is required"
		return m, nil
	}
	s.ErrText = ""
	s.Saving = true
	return m, m.createContentCmd(item)
}

func (m Model) handleShareKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.Share
	if s.Sending {
		return m, nil
	}

	if s.Done {
		switch msg.String() {
		case "c":
			if err := m.clip(s.Result.Link); err != nil {
				m.Status = StatusBar{Text: "copy failed: " + err.Error(), IsError: true}
			} else {
				m.Status = StatusBar{Text: "share link copied", IsError: false}
			}
			return m, nil
		case "esc", "enter":
			m.ActiveModal = ModalNone
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.ActiveModal = ModalNone
		return m, nil
	case "tab", "down":
		s.Focus = (s.Focus + 1) % 3
		m.focusShareField()
		return m, nil
	case "shift+tab", "up":
		s.Focus = (s.Focus - 1 + 3) % 3
		m.focusShareField()
		return m, nil
	case "left":
		if s.Focus == 2 {
			s.PermIdx = (s.PermIdx - 1 + len(sharePermissions)) % len(sharePermissions)
			return m, nil
		}
	case "right":
		if s.Focus == 2 {
			s.PermIdx = (s.PermIdx + 1) % len(sharePermissions)
			return m, nil
		}
	case "enter":
		grant := model.ShareGrant{
			ContentID:   s.ContentID,
			Email:       strings.TrimSpace(s.EmailInput.Value()),
			Permission:  sharePermissions[s.PermIdx],
			Description: strings.TrimSpace(s.DescInput.Value()),
		}
		if err := grant.Validate(); err != nil {
			s.ErrText = err.Error()
			return m, nil
		}
		s.ErrText = ""
		s.Sending = true
		return m, m.shareCmd(grant)
	}

	var cmd tea.Cmd
	switch s.Focus {
	case 0:
		s.EmailInput, cmd = s.EmailInput.Update(msg)
	case 1:
		s.DescInput, cmd = s.DescInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusShareField() {
	s := &m.Share
	s.EmailInput.Blur()
	s.DescInput.Blur()
	switch s.Focus {
	case 0:
		s.EmailInput.Focus()
	case 1:
		s.DescInput.Focus()
	}
}

func (m Model) onShareDone(msg ShareDoneMsg) (tea.Model, tea.Cmd) {
	m.Share.Sending = false
	if msg.Err != nil {
		m.Share.ErrText = msg.Err.Error()
		return m, nil
	}
	m.Share.Result = msg.Result
	m.Share.Done = true
	m.Status = StatusBar{Text: "shared with " + msg.Result.SharedMail, IsError: false}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.ActiveModal = ModalNone
		switch m.Confirm.Kind {
		case "content":
			return m, m.deleteContentCmd(m.Confirm.ID)
		case "task":
			// Optimistic removal; a failed delete surfaces via refetch.
			m.removeTaskLocally(m.Confirm.ID)
			return m, m.deleteTaskCmd(m.Confirm.ID)
		}
		return m, nil
	case "n", "N", "esc":
		m.ActiveModal = ModalNone
		return m, nil
	}
	return m, nil
}

func (m Model) renderDashboardView() string {
	rows := make([]views.ContentRowData, 0, len(m.Dashboard.Visible))
	for _, item := range m.Dashboard.Visible {
		rows = append(rows, views.ContentRowData{
			ID:    item.ID,
			Title: item.Title,
			Type:  string(item.Type),
			Tags:  item.Tags,
		})
	}
	selectedID := ""
	if item, ok := m.currentContentItem(); ok {
		selectedID = item.ID
	}
	return views.RenderDashboardPanel(views.DashboardPanelData{
		SearchView: m.searchInput.View(),
		Searching:  m.Dashboard.Searching,
		Query:      m.Dashboard.Query,
		Rows:       rows,
		SelectedID: selectedID,
		Loading:    m.Dashboard.Loading,
	})
}

func (m Model) renderContentDetailView() string {
	if !m.Dashboard.Detail {
		return ""
	}
	item, ok := m.currentContentItem()
	if !ok {
		return views.RenderContentDetail(views.ContentDetailData{})
	}
	md := fmt.Sprintf("# %s\n\n[%s](%s)", item.Title, strings.ToLower(string(item.Type)), item.URL)
	return views.RenderContentDetail(views.ContentDetailData{
		Row: &views.ContentRowData{
			ID:    item.ID,
			Title: item.Title,
			Type:  string(item.Type),
			Tags:  item.Tags,
		},
		URL:      item.URL,
		Markdown: views.RenderMarkdown(md),
	})
}

func (m Model) renderAddContentModal() string {
	s := m.AddContent
	return views.RenderAddContentModal(views.AddContentModalData{
		TitleView: s.TitleInput.View(),
		URLView:   s.URLInput.View(),
		TypeValue: string(contentTypes[s.TypeIdx]),
		TagsView:  s.TagsInput.View(),
		ErrorText: s.ErrText,
		Saving:    s.Saving,
	})
}

func (m Model) renderShareModal() string {
	s := m.Share
	return views.RenderShareModal(views.ShareModalData{
		ContentTitle: s.ContentTitle,
		EmailView:    s.EmailInput.View(),
		DescView:     s.DescInput.View(),
		Permission:   string(sharePermissions[s.PermIdx]),
		ErrorText:    s.ErrText,
		Sending:      s.Sending,
		ResultLink:   s.Result.Link,
	})
}

func splitTags(raw string) []string {
	out := make([]string, 0, 4)
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
