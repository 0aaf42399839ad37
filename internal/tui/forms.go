package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daybook/internal/models"
)

func (m *Model) newLoginForm() *huh.Form {
	m.loginForm = &LoginFormModel{}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Username").Value(&m.loginForm.Username),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&m.loginForm.Password),
	))
}

func (m *Model) newRegisterForm() *huh.Form {
	m.registerForm = &RegisterFormModel{}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("First name").Value(&m.registerForm.Name),
		huh.NewInput().Title("Surname").Value(&m.registerForm.Surname),
		huh.NewInput().Title("Username").Value(&m.registerForm.Username),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&m.registerForm.Password),
		huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&m.registerForm.ConfirmPassword),
	))
}

func (m *Model) newComposeForm() *huh.Form {
	m.composeForm = &ComposeFormModel{}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Title (optional)").Value(&m.composeForm.Title),
		huh.NewText().Title("What happened today?").Value(&m.composeForm.Content),
		huh.NewInput().Title("Mood (optional)").Value(&m.composeForm.Mood),
		huh.NewConfirm().Title("Mark as important?").Value(&m.composeForm.Important),
	))
}

func (m *Model) newHealthForm(water int, exercise, sleep float64) *huh.Form {
	m.healthForm = &HealthFormModel{
		Water:    strconv.Itoa(water),
		Exercise: fmt.Sprintf("%g", exercise),
		Sleep:    fmt.Sprintf("%g", sleep),
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Water (ml)").Value(&m.healthForm.Water),
		huh.NewInput().Title("Exercise (km)").Value(&m.healthForm.Exercise),
		huh.NewInput().Title("Sleep (hours)").Value(&m.healthForm.Sleep),
	))
}

func (m *Model) newSettingsForm() *huh.Form {
	m.settingsForm = &SettingsFormModel{
		Theme: m.prefs.Theme(),
		City:  m.prefs.City(),
	}
	if key, ok := m.prefs.APIKey(); ok {
		m.settingsForm.APIKey = key
	}

	themeOptions := make([]huh.Option[string], 0, len(models.ThemeNames))
	for _, name := range models.ThemeNames {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Theme").Options(themeOptions...).Value(&m.settingsForm.Theme),
		huh.NewInput().Title("Default city").Value(&m.settingsForm.City),
		huh.NewInput().Title("Weather API key (blank to clear)").Value(&m.settingsForm.APIKey),
	))
}
