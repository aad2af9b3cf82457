package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/brainbox-app/brainbox/internal/model"
)

type Screen string

const (
	ScreenLanding   Screen = "Landing"
	ScreenLogin     Screen = "Login"
	ScreenRegister  Screen = "Register"
	ScreenDashboard Screen = "Dashboard"
	ScreenTasks     Screen = "Tasks"
	ScreenProfile   Screen = "Profile"
)

type Modal string

const (
	ModalNone       Modal = ""
	ModalAddContent Modal = "add-content"
	ModalShare      Modal = "share"
	ModalTaskForm   Modal = "task-form"
	ModalConfirm    Modal = "confirm"
)

// Backend is the remote API surface the TUI talks to. *api.Client satisfies
// it; tests substitute a fake.
type Backend interface {
	ListContent(ctx context.Context) ([]model.ContentItem, error)
	CreateContent(ctx context.Context, item model.ContentItem) error
	DeleteContent(ctx context.Context, id string) error
	Share(ctx context.Context, grant model.ShareGrant) (model.ShareResult, error)

	ListTasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, task model.Task) error
	UpdateTask(ctx context.Context, id string, task model.Task) error
	UpdateTaskStatus(ctx context.Context, id string, status model.TaskStatus) error
	DeleteTask(ctx context.Context, id string) error

	GetProfile(ctx context.Context) (model.Profile, error)
	UpdateProfile(ctx context.Context, update model.ProfileUpdate) error
}

// Session is the slice of session.Store the TUI needs.
type Session interface {
	Restore(ctx context.Context, urlToken string) error
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, phone, password string) error
	Adopt(ctx context.Context, credential string) error
	Logout(ctx context.Context)
	Active() bool
	CurrentProfile() model.Profile
	SetProfile(ctx context.Context, profile model.Profile)
}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Tasks     string
	Profile   string
	Help      string
	Quit      string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type DashboardState struct {
	Items     []model.ContentItem
	Visible   []model.ContentItem
	Cursor    int
	Query     string
	Searching bool
	Loading   bool
	Detail    bool
	Gen       int
}

type AddContentState struct {
	TitleInput textinput.Model
	URLInput   textinput.Model
	TagsInput  textinput.Model
	TypeIdx    int
	Focus      int
	ErrText    string
	Saving     bool
}

type ShareState struct {
	ContentID    string
	ContentTitle string
	EmailInput   textinput.Model
	DescInput    textinput.Model
	PermIdx      int
	Focus        int
	ErrText      string
	Sending      bool
	Result       model.ShareResult
	Done         bool
}

type TasksState struct {
	Items        []model.Task
	Visible      []model.Task
	Cursor       int
	StatusFilter model.TaskStatus
	Loading      bool
	Gen          int
}

type TaskFormState struct {
	Editing        bool
	EditID         string
	TitleInput     textinput.Model
	DescInput      textinput.Model
	StartDateInput textinput.Model
	DueInput       textinput.Model
	StartTimeInput textinput.Model
	EndTimeInput   textinput.Model
	PrioIdx        int
	Focus          int
	ErrText        string
	Saving         bool
}

type ConfirmState struct {
	Kind  string // "content" or "task"
	ID    string
	Title string
}

type ProfileState struct {
	Editing     bool
	NameInput   textinput.Model
	PhoneInput  textinput.Model
	AvatarInput textinput.Model
	Focus       int
	ErrText     string
	Saving      bool
}

type AuthState struct {
	Inputs     []textinput.Model
	Focus      int
	ErrText    string
	Submitting bool
}

type Model struct {
	CurrentScreen Screen
	ActiveModal   Modal
	Status        StatusBar
	Keys          GlobalKeyMap
	Palette       CommandPaletteState
	HelpVisible   bool
	Quitting      bool
	LastError     error

	Dashboard  DashboardState
	AddContent AddContentState
	Share      ShareState
	Tasks      TasksState
	TaskForm   TaskFormState
	Confirm    ConfirmState
	Profile    ProfileState
	Login      AuthState
	Register   AuthState

	sess    Session
	backend Backend
	ctx     context.Context

	handoffToken string
	oauthPort    int
	oauthURL     func(redirect string) string
	clip         func(text string) error

	searchInput  textinput.Model
	commandInput textinput.Model
	loadSpinner  spinner.Model
	helpModel    help.Model
	spinning     bool
}

var contentTypes = []model.ContentType{
	model.ContentTypeImage,
	model.ContentTypeVideo,
	model.ContentTypeArticle,
	model.ContentTypeAudio,
}

var taskPriorities = []model.TaskPriority{
	model.TaskPriorityHigh,
	model.TaskPriorityMedium,
	model.TaskPriorityLow,
}

var sharePermissions = []model.SharePermission{
	model.SharePermissionView,
	model.SharePermissionEdit,
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type SessionRestoredMsg struct {
	Err error
}

type AuthDoneMsg struct {
	Err error
}

type OAuthDoneMsg struct {
	Token string
	Err   error
}

type ContentListMsg struct {
	Gen   int
	Items []model.ContentItem
	Err   error
}

type ContentSavedMsg struct {
	Err error
}

type ContentDeletedMsg struct {
	Err error
}

type ShareDoneMsg struct {
	Result model.ShareResult
	Err    error
}

type TaskListMsg struct {
	Gen   int
	Tasks []model.Task
	Err   error
}

type TaskSavedMsg struct {
	Err error
}

type TaskStatusMsg struct {
	Err error
}

type TaskDeletedMsg struct {
	Err error
}

type ProfileMsg struct {
	Profile model.Profile
	Err     error
}

type ProfileSavedMsg struct {
	Update model.ProfileUpdate
	Err    error
}

func NewModel(sess Session, backend Backend, cfg RuntimeConfig) Model {
	m := Model{
		CurrentScreen: ScreenLanding,
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Tasks:     "2",
			Profile:   "3",
			Help:      "?",
			Quit:      "q",
		},
		sess:         sess,
		backend:      backend,
		ctx:          context.Background(),
		handoffToken: cfg.HandoffToken,
		oauthPort:    cfg.OAuthPort,
		oauthURL:     cfg.OAuthStartURL,
		clip:         copyToClipboard,
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.searchInput = textinput.New()
	m.searchInput.Prompt = "search> "
	m.searchInput.CharLimit = 128
	m.searchInput.Width = 40

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.loadSpinner = spinner.New()
	m.loadSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()

	m.Login = newAuthState([]string{"email", "password"})
	m.Register = newAuthState([]string{"name", "email", "phone", "password"})
	m.AddContent = newAddContentState()
	m.Share.EmailInput = newFieldInput("email", 64)
	m.Share.DescInput = newFieldInput("description", 256)
	m.TaskForm = newTaskFormState()
	m.Profile.NameInput = newFieldInput("name", 64)
	m.Profile.PhoneInput = newFieldInput("phone", 32)
	m.Profile.AvatarInput = newFieldInput("avatar url", 512)
}

func newFieldInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}

func newAuthState(fields []string) AuthState {
	inputs := make([]textinput.Model, 0, len(fields))
	for _, f := range fields {
		in := newFieldInput(f, 128)
		if f == "password" {
			in.EchoMode = textinput.EchoPassword
		}
		inputs = append(inputs, in)
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return AuthState{Inputs: inputs}
}

func newAddContentState() AddContentState {
	s := AddContentState{
		TitleInput: newFieldInput("title", 128),
		URLInput:   newFieldInput("https://", 512),
		TagsInput:  newFieldInput("comma,separated,tags", 256),
	}
	s.TitleInput.Focus()
	return s
}

func newTaskFormState() TaskFormState {
	s := TaskFormState{
		TitleInput:     newFieldInput("title", 128),
		DescInput:      newFieldInput("description", 512),
		StartDateInput: newFieldInput("YYYY-MM-DD", 10),
		DueInput:       newFieldInput("YYYY-MM-DD", 10),
		StartTimeInput: newFieldInput("HH:MM", 5),
		EndTimeInput:   newFieldInput("HH:MM", 5),
		PrioIdx:        1, // MEDIUM
	}
	s.TitleInput.Focus()
	return s
}
