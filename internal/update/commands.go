package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brainbox-app/brainbox/internal/model"
	"github.com/brainbox-app/brainbox/internal/session"
)

const oauthWaitTimeout = 3 * time.Minute

func (m Model) restoreSessionCmd() tea.Cmd {
	sess, ctx, token := m.sess, m.ctx, m.handoffToken
	return func() tea.Msg {
		return SessionRestoredMsg{Err: sess.Restore(ctx, token)}
	}
}

func (m Model) loginCmd(email, password string) tea.Cmd {
	sess, ctx := m.sess, m.ctx
	return func() tea.Msg {
		return AuthDoneMsg{Err: sess.Login(ctx, email, password)}
	}
}

func (m Model) registerCmd(name, email, phone, password string) tea.Cmd {
	sess, ctx := m.sess, m.ctx
	return func() tea.Msg {
		return AuthDoneMsg{Err: sess.Register(ctx, name, email, phone, password)}
	}
}

// oauthCmd binds the callback listener, opens the browser at the provider
// URL, and blocks until the redirect lands or the wait times out.
func (m Model) oauthCmd() tea.Cmd {
	port, startURL, ctx := m.oauthPort, m.oauthURL, m.ctx
	return func() tea.Msg {
		listener, err := session.ListenCallback(port)
		if err != nil {
			return OAuthDoneMsg{Err: err}
		}
		defer listener.Close()

		_ = session.OpenBrowser(startURL(listener.Addr()))

		waitCtx, cancel := context.WithTimeout(ctx, oauthWaitTimeout)
		defer cancel()
		token, err := listener.Wait(waitCtx)
		if err != nil {
			return OAuthDoneMsg{Err: err}
		}
		return OAuthDoneMsg{Token: token}
	}
}

func (m Model) adoptTokenCmd(token string) tea.Cmd {
	sess, ctx := m.sess, m.ctx
	return func() tea.Msg {
		return AuthDoneMsg{Err: sess.Adopt(ctx, token)}
	}
}

func (m Model) fetchContentCmd() tea.Cmd {
	backend, ctx, gen := m.backend, m.ctx, m.Dashboard.Gen
	return func() tea.Msg {
		items, err := backend.ListContent(ctx)
		return ContentListMsg{Gen: gen, Items: items, Err: err}
	}
}

func (m Model) createContentCmd(item model.ContentItem) tea.Cmd {
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		return ContentSavedMsg{Err: backend.CreateContent(ctx, item)}
	}
}

func (m Model) deleteContentCmd(id string) tea.Cmd {
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		return ContentDeletedMsg{Err: backend.DeleteContent(ctx, id)}
	}
}

func (m Model) shareCmd(grant model.ShareGrant) tea.Cmd {
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		result, err := backend.Share(ctx, grant)
		return ShareDoneMsg{Result: result, Err: err}
	}
}

func (m Model) fetchTasksCmd() tea.Cmd {
	backend, ctx, gen := m.backend, m.ctx, m.Tasks.Gen
	return func() tea.Msg {
		tasks, err := backend.ListTasks(ctx)
		return TaskListMsg{Gen: gen, Tasks: tasks, Err: err}
	}
}

func (m Model) createTaskCmd(task model.Task) tea.Cmd {
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		return TaskSavedMsg{Err: backend.CreateTask(ctx, task)}
	}
}

func (m Model) updateTaskCmd(id string, task model.Task) tea.Cmd {
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		return TaskSavedMsg{Err: backend.UpdateTask(ctx, id, task)}
	}
}

func (m Model) toggleTaskCmd(id string, status model.TaskStatus) tea.Cmd {
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		return TaskStatusMsg{Err: backend.UpdateTaskStatus(ctx, id, status)}
	}
}

func (m Model) deleteTaskCmd(id string) tea.Cmd {
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		return TaskDeletedMsg{Err: backend.DeleteTask(ctx, id)}
	}
}

func (m Model) fetchProfileCmd() tea.Cmd {
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		profile, err := backend.GetProfile(ctx)
		return ProfileMsg{Profile: profile, Err: err}
	}
}

func (m Model) saveProfileCmd(update model.ProfileUpdate) tea.Cmd {
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		return ProfileSavedMsg{Update: update, Err: backend.UpdateProfile(ctx, update)}
	}
}
