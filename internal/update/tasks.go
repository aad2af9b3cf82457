package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brainbox-app/brainbox/internal/model"
	"github.com/brainbox-app/brainbox/internal/views"
)

var statusFilterCycle = []model.TaskStatus{
	"", // all
	model.TaskStatusPending,
	model.TaskStatusCompleted,
	model.TaskStatusRejected,
}

func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.Tasks.Cursor < len(m.Tasks.Visible)-1 {
			m.Tasks.Cursor++
		}
		return m, nil
	case "k", "up":
		if m.Tasks.Cursor > 0 {
			m.Tasks.Cursor--
		}
		return m, nil
	case "f":
		m.cycleStatusFilter()
		return m, nil
	case "a":
		m.ActiveModal = ModalTaskForm
		m.TaskForm = newTaskFormState()
		return m, nil
	case "e":
		task, ok := m.currentTask()
		if !ok {
			return m, nil
		}
		m.ActiveModal = ModalTaskForm
		m.TaskForm = taskFormFor(task)
		return m, nil
	case " ", "space":
		return m.toggleSelectedTask()
	case "d":
		task, ok := m.currentTask()
		if !ok {
			return m, nil
		}
		m.ActiveModal = ModalConfirm
		m.Confirm = ConfirmState{Kind: "task", ID: task.ID, Title: task.Title}
		return m, nil
	case "r":
		m.Tasks.Gen++
		m.Tasks.Loading = true
		m.spinning = true
		return m, tea.Batch(m.fetchTasksCmd(), m.loadSpinner.Tick)
	}
	return m, nil
}

func (m *Model) cycleStatusFilter() {
	for i, s := range statusFilterCycle {
		if s == m.Tasks.StatusFilter {
			m.Tasks.StatusFilter = statusFilterCycle[(i+1)%len(statusFilterCycle)]
			m.applyTaskFilter()
			return
		}
	}
	m.Tasks.StatusFilter = ""
	m.applyTaskFilter()
}

// toggleSelectedTask flips PENDING and COMPLETED in place, then tells the
// server. Rejected tasks stay rejected.
func (m Model) toggleSelectedTask() (tea.Model, tea.Cmd) {
	task, ok := m.currentTask()
	if !ok {
		return m, nil
	}
	target, ok := model.ToggleTarget(task.Status)
	if !ok {
		m.Status = StatusBar{Text: "rejected tasks cannot be toggled", IsError: true}
		return m, nil
	}
	m.setTaskStatusLocally(task.ID, target)
	return m, m.toggleTaskCmd(task.ID, target)
}

func (m *Model) setTaskStatusLocally(id string, status model.TaskStatus) {
	for i := range m.Tasks.Items {
		if m.Tasks.Items[i].ID == id {
			m.Tasks.Items[i].Status = status
			break
		}
	}
	m.applyTaskFilter()
}

func (m *Model) removeTaskLocally(id string) {
	kept := m.Tasks.Items[:0]
	for _, task := range m.Tasks.Items {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	m.Tasks.Items = kept
	m.applyTaskFilter()
}

func (m *Model) applyTaskFilter() {
	m.Tasks.Visible = model.FilterTasks(m.Tasks.Items, m.Tasks.StatusFilter)
	if m.Tasks.Cursor >= len(m.Tasks.Visible) {
		m.Tasks.Cursor = len(m.Tasks.Visible) - 1
	}
	if m.Tasks.Cursor < 0 {
		m.Tasks.Cursor = 0
	}
}

func (m Model) currentTask() (model.Task, bool) {
	if m.Tasks.Cursor < 0 || m.Tasks.Cursor >= len(m.Tasks.Visible) {
		return model.Task{}, false
	}
	return m.Tasks.Visible[m.Tasks.Cursor], true
}

func (m Model) onTaskList(msg TaskListMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.Tasks.Gen {
		return m, nil
	}
	m.Tasks.Loading = false
	m.spinning = false
	if msg.Err != nil {
		m.Status = StatusBar{Text: "failed to load tasks: " + msg.Err.Error(), IsError: true}
		return m, nil
	}
	m.Tasks.Items = msg.Tasks
	m.applyTaskFilter()
	return m, nil
}

func (m Model) onTaskSaved(msg TaskSavedMsg) (tea.Model, tea.Cmd) {
	m.TaskForm.Saving = false
	if msg.Err != nil {
		m.TaskForm.ErrText = msg.Err.Error()
		return m, nil
	}
	m.ActiveModal = ModalNone
	m.Status = StatusBar{Text: "task saved", IsError: false}
	m.Tasks.Gen++
	m.Tasks.Loading = true
	m.spinning = true
	return m, tea.Batch(m.fetchTasksCmd(), m.loadSpinner.Tick)
}

// onTaskStatus lands after an optimistic toggle; a failure re-syncs the
// list with the server.
func (m Model) onTaskStatus(msg TaskStatusMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Status = StatusBar{Text: "status update failed: " + msg.Err.Error(), IsError: true}
		m.Tasks.Gen++
		m.Tasks.Loading = true
		m.spinning = true
		return m, tea.Batch(m.fetchTasksCmd(), m.loadSpinner.Tick)
	}
	return m, nil
}

func (m Model) onTaskDeleted(msg TaskDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Status = StatusBar{Text: "delete failed: " + msg.Err.Error(), IsError: true}
		m.Tasks.Gen++
		m.Tasks.Loading = true
		m.spinning = true
		return m, tea.Batch(m.fetchTasksCmd(), m.loadSpinner.Tick)
	}
	m.Status = StatusBar{Text: "task deleted", IsError: false}
	return m, nil
}

func taskFormFor(task model.Task) TaskFormState {
	s := newTaskFormState()
	s.Editing = true
	s.EditID = task.ID
	s.TitleInput.SetValue(task.Title)
	s.DescInput.SetValue(task.Description)
	s.StartDateInput.SetValue(task.StartDate)
	s.DueInput.SetValue(task.DueDate)
	s.StartTimeInput.SetValue(task.StartTime)
	s.EndTimeInput.SetValue(task.EndTime)
	for i, p := range taskPriorities {
		if p == task.Priority {
			s.PrioIdx = i
			break
		}
	}
	return s
}

func (m Model) handleTaskFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.TaskForm
	if s.Saving {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.ActiveModal = ModalNone
		return m, nil
	case "tab", "down":
		s.Focus = (s.Focus + 1) % 7
		m.focusTaskFormField()
		return m, nil
	case "shift+tab", "up":
		s.Focus = (s.Focus - 1 + 7) % 7
		m.focusTaskFormField()
		return m, nil
	case "left":
		if s.Focus == 2 {
			s.PrioIdx = (s.PrioIdx - 1 + len(taskPriorities)) % len(taskPriorities)
			return m, nil
		}
	case "right":
		if s.Focus == 2 {
			s.PrioIdx = (s.PrioIdx + 1) % len(taskPriorities)
			return m, nil
		}
	case "enter":
		return m.submitTaskForm()
	}

	var cmd tea.Cmd
	switch s.Focus {
	case 0:
		s.TitleInput, cmd = s.TitleInput.Update(msg)
	case 1:
		s.DescInput, cmd = s.DescInput.Update(msg)
	case 3:
		s.StartDateInput, cmd = s.StartDateInput.Update(msg)
	case 4:
		s.DueInput, cmd = s.DueInput.Update(msg)
	case 5:
		s.StartTimeInput, cmd = s.StartTimeInput.Update(msg)
	case 6:
		s.EndTimeInput, cmd = s.EndTimeInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusTaskFormField() {
	s := &m.TaskForm
	s.TitleInput.Blur()
	s.DescInput.Blur()
	s.StartDateInput.Blur()
	s.DueInput.Blur()
	s.StartTimeInput.Blur()
	s.EndTimeInput.Blur()
	switch s.Focus {
	case 0:
		s.TitleInput.Focus()
	case 1:
		s.DescInput.Focus()
	case 3:
		s.StartDateInput.Focus()
	case 4:
		s.DueInput.Focus()
	case 5:
		s.StartTimeInput.Focus()
	case 6:
		s.EndTimeInput.Focus()
	}
}

func (m Model) submitTaskForm() (tea.Model, tea.Cmd) {
	s := &m.TaskForm
	task := model.Task{
		Title:       strings.TrimSpace(s.TitleInput.Value()),
		Description: strings.TrimSpace(s.DescInput.Value()),
		Priority:    taskPriorities[s.PrioIdx],
		Status:      model.TaskStatusPending,
		StartDate:   strings.TrimSpace(s.StartDateInput.Value()),
		DueDate:     strings.TrimSpace(s.DueInput.Value()),
		StartTime:   strings.TrimSpace(s.StartTimeInput.Value()),
		EndTime:     strings.TrimSpace(s.EndTimeInput.Value()),
	}
	// An edit is a full field replace; status and creation time are not on
	// the form and must survive from the existing task.
	if s.Editing {
		if existing, ok := m.findTask(s.EditID); ok {
			task.Status = existing.Status
			task.CreatedAt = existing.CreatedAt
		}
	}
	if err := task.Validate(); err != nil {
		s.ErrText = err.Error()
		return m, nil
	}
	s.ErrText = ""
	s.Saving = true
	if s.Editing {
		return m, m.updateTaskCmd(s.EditID, task)
	}
	return m, m.createTaskCmd(task)
}

func (m Model) findTask(id string) (model.Task, bool) {
	for _, task := range m.Tasks.Items {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}

func (m Model) renderTasksView() string {
	rows := make([]views.TaskRowData, 0, len(m.Tasks.Visible))
	for _, task := range m.Tasks.Visible {
		rows = append(rows, views.TaskRowData{
			ID:       task.ID,
			Title:    task.Title,
			Status:   string(task.Status),
			Priority: string(task.Priority),
			DueDate:  task.DueDate,
		})
	}
	selectedID := ""
	if task, ok := m.currentTask(); ok {
		selectedID = task.ID
	}
	return views.RenderTasksPanel(views.TasksPanelData{
		StatusFilter: string(m.Tasks.StatusFilter),
		Rows:         rows,
		SelectedID:   selectedID,
		Loading:      m.Tasks.Loading,
	})
}

func (m Model) renderTaskFormModal() string {
	s := m.TaskForm
	return views.RenderTaskForm(views.TaskFormData{
		Editing:       s.Editing,
		TitleView:     s.TitleInput.View(),
		DescView:      s.DescInput.View(),
		PriorityValue: string(taskPriorities[s.PrioIdx]),
		StartDateView: s.StartDateInput.View(),
		DueDateView:   s.DueInput.View(),
		StartTimeView: s.StartTimeInput.View(),
		EndTimeView:   s.EndTimeInput.View(),
		ErrorText:     s.ErrText,
		Saving:        s.Saving,
	})
}
