package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/auth"
	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/errors"
	"github.com/julianstephens/daybook/internal/keyring"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/validation"
	"github.com/julianstephens/daybook/internal/weather"
)

type weatherMsg struct {
	snap       weather.Snapshot
	suggestion string
	err        error
}

type weatherTickMsg time.Time

// fetchWeatherCmd performs the blocking fetch off the update loop.
func (m Model) fetchWeatherCmd() tea.Cmd {
	city := m.cfg.City
	if city == "" {
		city = m.prefs.City()
	}
	apiKey, _ := m.prefs.APIKey()
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.WeatherFetchTimeout)
		defer cancel()
		snap, err := client.Current(ctx, city, apiKey)
		if err != nil {
			return weatherMsg{err: err}
		}
		return weatherMsg{snap: snap, suggestion: weather.SuggestFor(snap)}
	}
}

func weatherTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return weatherTickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case weatherMsg:
		m.fetching = false
		if msg.err != nil {
			logger.Warn("weather fetch failed", "error", msg.err)
			// Reset everything; no stale fields survive a failed fetch.
			m.snapshot = nil
			m.suggestion = ""
			m.weatherErr = weatherErrText(msg.err)
			return m, nil
		}
		snap := msg.snap
		m.snapshot = &snap
		m.suggestion = msg.suggestion
		m.weatherErr = ""
		return m, nil

	case weatherTickMsg:
		// The periodic refresh only runs while the weather view is active.
		if m.state == stateWeather && m.session != nil {
			return m, tea.Batch(m.fetchWeatherCmd(), weatherTick(m.cfg.FetchInterval))
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m.updateView(msg)
}

// updateForm routes messages to the active huh form and reacts to its
// completion or abort.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateAborted:
		return m.formAborted()
	case huh.StateCompleted:
		return m.formCompleted()
	}

	// A login screen also needs a way to reach registration.
	if key, ok := msg.(tea.KeyMsg); ok && m.state == stateLogin && key.String() == "ctrl+n" {
		m.state = stateRegister
		m.formError = ""
		m.form = m.newRegisterForm()
		return m, m.form.Init()
	}

	return m, cmd
}

func (m Model) formAborted() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateLogin:
		m.quitting = true
		return m, tea.Quit
	case stateRegister:
		m.state = stateLogin
		m.formError = ""
		m.form = m.newLoginForm()
		return m, m.form.Init()
	default:
		// Cancelled tab form: back to home.
		m.state = stateHome
		m.formError = ""
		m.form = nil
		return m, nil
	}
}

func (m Model) formCompleted() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateLogin:
		session, err := auth.NewService(m.store).Login(m.loginForm.Username, m.loginForm.Password)
		if err != nil {
			m.formError = err.Error()
			m.form = m.newLoginForm()
			return m, m.form.Init()
		}
		m.beginSession(session)
		return m, nil

	case stateRegister:
		_, err := auth.NewService(m.store).Register(validation.RegistrationInput{
			Name:            m.registerForm.Name,
			Surname:         m.registerForm.Surname,
			Username:        m.registerForm.Username,
			Password:        m.registerForm.Password,
			ConfirmPassword: m.registerForm.ConfirmPassword,
		})
		if err != nil {
			m.formError = err.Error()
			m.form = m.newRegisterForm()
			return m, m.form.Init()
		}
		m.state = stateLogin
		m.formError = ""
		m.status = "Account created. Please log in."
		m.form = m.newLoginForm()
		return m, m.form.Init()

	case stateCompose:
		entry := models.Entry{
			ID:        uuid.NewString(),
			UserID:    m.session.UserID,
			CreatedAt: time.Now(),
			Title:     m.composeForm.Title,
			Content:   m.composeForm.Content,
			Mood:      m.composeForm.Mood,
			Important: m.composeForm.Important,
		}
		if err := m.store.AddEntry(entry); err != nil {
			m.formError = err.Error()
			m.form = m.newComposeForm()
			return m, m.form.Init()
		}
		m.formError = ""
		m.status = "Entry saved."
		m.reloadEntries()
		m.state = stateEntries
		m.form = nil
		return m, nil

	case stateHealth:
		log, err := m.parseHealthForm()
		if err == nil {
			err = m.store.UpsertHealthLog(log)
		}
		if err != nil {
			m.formError = err.Error()
			m.form = m.newHealthForm(0, 0, 0)
			return m, m.form.Init()
		}
		m.formError = ""
		m.status = "Health log saved for " + log.Date + "."
		m.state = stateHome
		m.form = nil
		return m, nil

	case stateSettings:
		if err := m.applySettingsForm(); err != nil {
			m.formError = err.Error()
			m.form = m.newSettingsForm()
			return m, m.form.Init()
		}
		m.formError = ""
		m.status = "Settings updated."
		m.styles = newStyles(m.prefs.Theme())
		m.state = stateHome
		m.form = nil
		return m, nil
	}

	m.form = nil
	return m, nil
}

func (m *Model) parseHealthForm() (models.HealthLog, error) {
	water, err := strconv.Atoi(strings.TrimSpace(m.healthForm.Water))
	if err != nil {
		return models.HealthLog{}, fmt.Errorf("%w: water must be a whole number of milliliters", errors.ErrValidation)
	}
	exercise, err := strconv.ParseFloat(strings.TrimSpace(m.healthForm.Exercise), 64)
	if err != nil {
		return models.HealthLog{}, fmt.Errorf("%w: exercise must be a number of kilometers", errors.ErrValidation)
	}
	sleep, err := strconv.ParseFloat(strings.TrimSpace(m.healthForm.Sleep), 64)
	if err != nil {
		return models.HealthLog{}, fmt.Errorf("%w: sleep must be a number of hours", errors.ErrValidation)
	}
	return models.HealthLog{
		UserID:     m.session.UserID,
		Date:       time.Now().Format(constants.DateFormat),
		WaterML:    water,
		ExerciseKM: exercise,
		SleepHours: sleep,
	}, nil
}

func (m *Model) applySettingsForm() error {
	if err := m.prefs.SetTheme(m.settingsForm.Theme); err != nil {
		return err
	}
	if err := m.prefs.SetCity(m.settingsForm.City); err != nil {
		return err
	}
	key := strings.TrimSpace(m.settingsForm.APIKey)
	if key == "" {
		if err := m.prefs.ClearAPIKey(); err != nil {
			return err
		}
		_ = keyring.DeleteAPIKey()
		return nil
	}
	return m.prefs.SetAPIKey(key)
}

// updateView handles key input for the non-form views.
func (m Model) updateView(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		if m.state != stateEntries { // q in the table is harmless but surprising
			m.quitting = true
			return m, tea.Quit
		}
	case "ctrl+l":
		if m.session != nil {
			m.endSession()
			return m, m.form.Init()
		}
	case "tab":
		return m.switchTab(1)
	case "shift+tab":
		return m.switchTab(-1)
	case "esc":
		if m.state == stateEntryView || m.state == stateConfirmDelete {
			m.state = stateEntries
			return m, nil
		}
	}

	switch m.state {
	case stateEntries:
		switch keyMsg.String() {
		case "enter":
			if id, ok := m.selectedEntryID(); ok {
				entry, err := m.store.GetEntry(id)
				if err == nil {
					m.currentEntry = entry
					m.state = stateEntryView
				}
			}
			return m, nil
		case "d":
			if id, ok := m.selectedEntryID(); ok {
				m.entryToDelete = id
				m.state = stateConfirmDelete
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.entryTable, cmd = m.entryTable.Update(msg)
		return m, cmd

	case stateConfirmDelete:
		switch keyMsg.String() {
		case "y":
			if err := m.store.DeleteEntry(m.entryToDelete); err != nil {
				m.status = "Could not delete entry."
			} else {
				m.status = "Entry deleted."
			}
			m.entryToDelete = ""
			m.reloadEntries()
			m.state = stateEntries
		case "n":
			m.entryToDelete = ""
			m.state = stateEntries
		}
		return m, nil

	case stateWeather:
		if keyMsg.String() == "r" && !m.fetching {
			return m.startWeatherFetch()
		}
	}

	return m, nil
}

// switchTab cycles through the authenticated tab views. Landing on a
// form-backed tab creates its form.
func (m Model) switchTab(direction int) (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, nil
	}

	first, last := int(stateHome), int(stateSettings)
	current := int(m.state)
	if current < first || current > last {
		current = first
	}
	next := current + direction
	if next > last {
		next = first
	}
	if next < first {
		next = last
	}
	m.state = sessionState(next)
	m.form = nil
	m.formError = ""

	switch m.state {
	case stateCompose:
		m.form = m.newComposeForm()
		return m, m.form.Init()
	case stateHealth:
		today := time.Now().Format(constants.DateFormat)
		log, err := m.store.GetHealthLog(m.session.UserID, today)
		if err != nil {
			log = models.HealthLog{}
		}
		m.form = m.newHealthForm(log.WaterML, log.ExerciseKM, log.SleepHours)
		return m, m.form.Init()
	case stateSettings:
		m.form = m.newSettingsForm()
		return m, m.form.Init()
	case stateEntries:
		m.reloadEntries()
		return m, nil
	case stateWeather:
		return m.startWeatherFetch()
	}

	return m, nil
}

func (m Model) startWeatherFetch() (tea.Model, tea.Cmd) {
	if _, ok := m.prefs.APIKey(); !ok {
		m.snapshot = nil
		m.suggestion = ""
		m.weatherErr = "No API key configured. Add one in Settings (openweathermap.org, free tier)."
		return m, nil
	}
	m.fetching = true
	m.weatherErr = ""
	return m, tea.Batch(m.fetchWeatherCmd(), weatherTick(m.cfg.FetchInterval))
}

func weatherErrText(err error) string {
	switch {
	case errors.Is(err, errors.ErrUnauthorized):
		return "API key missing or invalid. Update it in Settings."
	case errors.Is(err, errors.ErrNotFound):
		return "City not found. Check the city name in Settings."
	case errors.Is(err, errors.ErrNetwork):
		return "Could not reach the weather service. Check your connection and press r to retry."
	case errors.Is(err, errors.ErrUpstream):
		return "The weather service returned an error. Press r to retry."
	default:
		return "Weather unavailable."
	}
}
