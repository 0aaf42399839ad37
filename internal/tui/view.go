package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daybook/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.state {
	case stateLogin:
		body = m.viewLogin()
	case stateRegister:
		body = m.viewForm("Create account")
	case stateHome:
		body = m.viewHome()
	case stateCompose:
		body = m.viewForm("New entry")
	case stateEntries:
		body = m.viewEntries()
	case stateHealth:
		body = m.viewForm("Today's health log")
	case stateWeather:
		body = m.viewWeather()
	case stateSettings:
		body = m.viewForm("Settings")
	case stateEntryView:
		body = m.viewEntry()
	case stateConfirmDelete:
		body = m.viewConfirmDelete()
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(constants.AppName))
	b.WriteString("\n")
	if m.session != nil {
		b.WriteString(m.viewTabs())
		b.WriteString("\n\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString(body)
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.faint.Render(m.status))
	}
	if m.session != nil {
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m))
	}
	return m.styles.doc.Render(b.String())
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(tabTitles))
	active := int(m.state) - int(stateHome)
	for i, title := range tabTitles {
		if i == active {
			tabs = append(tabs, m.styles.activeTab.Render(title))
		} else {
			tabs = append(tabs, m.styles.inactiveTab.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.viewForm("Log in"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.faint.Render("ctrl+n: create an account"))
	return b.String()
}

// viewForm renders the active huh form under a heading, with any
// submission error above it.
func (m Model) viewForm(heading string) string {
	var b strings.Builder
	b.WriteString(m.styles.label.Render(heading))
	b.WriteString("\n")
	if m.formError != "" {
		b.WriteString(m.styles.errText.Render(m.formError))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.form != nil {
		b.WriteString(m.form.View())
	}
	return b.String()
}

func (m Model) viewHome() string {
	var b strings.Builder
	b.WriteString(m.styles.value.Render(fmt.Sprintf("Hello, %s.", m.session.DisplayName())))
	b.WriteString("\n")
	b.WriteString(m.styles.faint.Render(time.Now().Format("Monday, 2 January 2006")))
	b.WriteString("\n\n")
	b.WriteString(m.field("Entries", fmt.Sprintf("%d", len(m.entries))))

	today := time.Now().Format(constants.DateFormat)
	log, err := m.store.GetHealthLog(m.session.UserID, today)
	if err == nil && (log.WaterML > 0 || log.ExerciseKM > 0 || log.SleepHours > 0) {
		b.WriteString(m.field("Water today", fmt.Sprintf("%d ml", log.WaterML)))
		b.WriteString(m.field("Exercise today", fmt.Sprintf("%g km", log.ExerciseKM)))
		b.WriteString(m.field("Sleep last night", fmt.Sprintf("%g h", log.SleepHours)))
	} else {
		b.WriteString(m.field("Health today", "not logged yet"))
	}
	return b.String()
}

func (m Model) viewEntries() string {
	if len(m.entries) == 0 {
		return m.styles.faint.Render("No entries yet. Switch to the Write tab to add one.")
	}
	var b strings.Builder
	b.WriteString(m.entryTable.View())
	b.WriteString("\n")
	b.WriteString(m.styles.faint.Render("enter: read  d: delete"))
	return b.String()
}

func (m Model) viewEntry() string {
	e := m.currentEntry
	var b strings.Builder
	title := e.Title
	if title == "" {
		title = "(untitled)"
	}
	if e.Important {
		title = m.styles.star.Render("★ ") + title
	}
	b.WriteString(m.styles.label.Render(title))
	b.WriteString("\n")
	b.WriteString(m.styles.faint.Render(e.CreatedAt.Format("Monday, 2 January 2006 15:04")))
	if e.Mood != "" {
		b.WriteString(m.styles.faint.Render("  ·  " + e.Mood))
	}
	b.WriteString("\n\n")
	b.WriteString(e.Content)
	b.WriteString("\n\n")
	b.WriteString(m.styles.faint.Render("esc: back"))
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	var preview string
	for _, sum := range m.entries {
		if sum.ID == m.entryToDelete {
			preview = sum.Preview
			break
		}
	}
	var b strings.Builder
	b.WriteString(m.styles.errText.Render("Delete this entry?"))
	b.WriteString("\n\n")
	if preview != "" {
		b.WriteString(m.styles.faint.Render(preview))
		b.WriteString("\n\n")
	}
	b.WriteString("y: delete  n: keep")
	return b.String()
}

func (m Model) viewWeather() string {
	var b strings.Builder

	if m.fetching {
		b.WriteString(m.styles.faint.Render("Fetching weather..."))
		return b.String()
	}

	if m.weatherErr != "" || m.snapshot == nil {
		// A failed fetch never leaves stale readings on screen.
		if m.weatherErr != "" {
			b.WriteString(m.styles.errText.Render(m.weatherErr))
			b.WriteString("\n\n")
		}
		b.WriteString(m.field("City", "-"))
		b.WriteString(m.field("Temperature", "-"))
		b.WriteString(m.field("Feels like", "-"))
		b.WriteString(m.field("Conditions", "unavailable"))
		b.WriteString(m.field("Humidity", "-"))
		b.WriteString(m.field("Wind", "-"))
		return b.String()
	}

	snap := m.snapshot
	place := snap.City
	if snap.Country != "" {
		place += ", " + snap.Country
	}
	b.WriteString(m.field("City", place))
	b.WriteString(m.field("Temperature", fmt.Sprintf("%.1f °C", snap.Temperature)))
	b.WriteString(m.field("Feels like", fmt.Sprintf("%.1f °C", snap.FeelsLike)))
	b.WriteString(m.field("Conditions", snap.Description))
	b.WriteString(m.field("Humidity", fmt.Sprintf("%d%%", snap.Humidity)))
	b.WriteString(m.field("Wind", fmt.Sprintf("%.1f m/s", snap.WindSpeed)))
	if m.suggestion != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.value.Render(m.suggestion))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.faint.Render(fmt.Sprintf("Updated %s  ·  r: refresh", snap.FetchedAt.Format("15:04:05"))))
	return b.String()
}

func (m Model) field(label, value string) string {
	return m.styles.label.Render(fmt.Sprintf("%-18s", label)) + m.styles.value.Render(value) + "\n"
}
