package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daybook/internal/auth"
	"github.com/julianstephens/daybook/internal/config"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/prefs"
	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/weather"
)

type sessionState int

const (
	stateLogin sessionState = iota
	stateRegister

	// Tab views, in tab order. stateHome must be first and stateSettings
	// last for tab cycling.
	stateHome
	stateCompose
	stateEntries
	stateHealth
	stateWeather
	stateSettings

	stateEntryView
	stateConfirmDelete
)

var tabTitles = []string{"Home", "Write", "Entries", "Health", "Weather", "Settings"}

type LoginFormModel struct {
	Username string
	Password string
}

type RegisterFormModel struct {
	Name            string
	Surname         string
	Username        string
	Password        string
	ConfirmPassword string
}

type ComposeFormModel struct {
	Title     string
	Content   string
	Mood      string
	Important bool
}

type HealthFormModel struct {
	Water    string
	Exercise string
	Sleep    string
}

type SettingsFormModel struct {
	Theme  string
	City   string
	APIKey string
}

type Model struct {
	store   storage.Provider
	cfg     *config.Config
	client  *weather.Client
	session *auth.Session
	prefs   *prefs.Prefs

	state  sessionState
	styles styles
	help   help.Model

	form         *huh.Form
	loginForm    *LoginFormModel
	registerForm *RegisterFormModel
	composeForm  *ComposeFormModel
	healthForm   *HealthFormModel
	settingsForm *SettingsFormModel

	entryTable    table.Model
	entries       []models.EntrySummary
	currentEntry  models.Entry
	entryToDelete string

	snapshot   *weather.Snapshot
	suggestion string
	weatherErr string
	fetching   bool

	formError string
	status    string
	width     int
	height    int
	quitting  bool
}

func NewModel(store storage.Provider, cfg *config.Config) Model {
	m := Model{
		store:  store,
		cfg:    cfg,
		client: weather.NewClient(cfg.Language),
		state:  stateLogin,
		styles: newStyles(""),
		help:   help.New(),
	}
	m.form = m.newLoginForm()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// beginSession switches to the authenticated views after a successful
// login or registration.
func (m *Model) beginSession(session auth.Session) {
	m.session = &session
	m.prefs = prefs.New(m.store, session.UserID)
	m.styles = newStyles(m.prefs.Theme())
	m.state = stateHome
	m.form = nil
	m.formError = ""
	m.status = fmt.Sprintf("Welcome, %s!", session.DisplayName())
	m.reloadEntries()
}

// endSession returns to the login form in place, dropping all per-user
// display state.
func (m *Model) endSession() {
	m.session = nil
	m.prefs = nil
	m.styles = newStyles("")
	m.entries = nil
	m.snapshot = nil
	m.suggestion = ""
	m.weatherErr = ""
	m.status = ""
	m.formError = ""
	m.state = stateLogin
	m.loginForm = nil
	m.form = m.newLoginForm()
}

func (m *Model) reloadEntries() {
	if m.session == nil {
		return
	}
	summaries, err := m.store.ListEntries(m.session.UserID)
	if err != nil {
		m.status = "Could not load entries."
		summaries = nil
	}
	m.entries = summaries

	rows := make([]table.Row, 0, len(summaries))
	for _, sum := range summaries {
		star := ""
		if sum.Important {
			star = "★"
		}
		title := sum.Title
		if title == "" {
			title = "(untitled)"
		}
		rows = append(rows, table.Row{
			sum.CreatedAt.Format("2006-01-02 15:04"),
			title,
			sum.Mood,
			star,
			sum.Preview,
		})
	}

	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Title", Width: 20},
		{Title: "Mood", Width: 10},
		{Title: "★", Width: 2},
		{Title: "Preview", Width: 40},
	}

	m.entryTable = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
}

// selectedEntryID returns the id of the highlighted entry, if any.
func (m *Model) selectedEntryID() (string, bool) {
	idx := m.entryTable.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return "", false
	}
	return m.entries[idx].ID, true
}

// Run starts the interactive program and blocks until it exits.
func Run(store storage.Provider, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(store, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
