package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"pocketpet/internal/pet"
)

// moodColors mirrors the device's RGB LED palette.
var moodColors = map[pet.Mood]lipgloss.Color{
	pet.MoodHappy:    lipgloss.Color("#4ade80"),
	pet.MoodContent:  lipgloss.Color("#60a5fa"),
	pet.MoodHungry:   lipgloss.Color("#fbbf24"),
	pet.MoodSad:      lipgloss.Color("#f87171"),
	pet.MoodSleeping: lipgloss.Color("#818cf8"),
}

var styles = struct {
	title  lipgloss.Style
	face   lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	status lipgloss.Style
	help   lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#e0e0ff")).
		Padding(0, 1),

	face: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF6B6B")),

	label: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#808099")).
		Width(8),

	value: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e0e0ff")),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e0e0ff")),

	help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#808099")),
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		if m.shuttingDown {
			return "Powering down... state saved.\n"
		}
		return "See you soon!\n"
	}

	st := m.sim.State()

	title := styles.title.Render(fmt.Sprintf("%s — day %d", st.Name, st.AgeDays))
	face := styles.face.Render(Face(st, m.frame))
	mood := lipgloss.NewStyle().
		Bold(true).
		Foreground(moodColors[st.Mood]).
		Render(st.Mood.String())

	bars := strings.Join([]string{
		statBar("Hunger", st.Hunger, moodColors[pet.MoodHungry]),
		statBar("Happy", st.Happiness, moodColors[pet.MoodHappy]),
		statBar("Energy", st.Energy, moodColors[pet.MoodSleeping]),
	}, "\n")

	var status string
	switch {
	case st.OwnerPresent:
		status = "I see you! :)"
	case st.Sleeping:
		status = "Hold [L] to power off"
	default:
		status = "[F] feed · [P] pet · [L] sleep"
	}

	sections := []string{title, face, mood, "", bars, "", styles.status.Render(status)}

	if m.message != "" && time.Now().Before(m.messageExpires) {
		sections = append(sections, styles.status.Render(m.message))
	}

	sections = append(sections, "",
		styles.help.Render("f feed · p pet · l hold · o presence · q quit"))

	return strings.Join(sections, "\n")
}

func statBar(label string, value int, color lipgloss.Color) string {
	filled := value / 10
	var b strings.Builder
	for i := 0; i < 10; i++ {
		if i < filled {
			b.WriteString("█")
		} else {
			b.WriteString("░")
		}
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(b.String())
	return fmt.Sprintf("%s%s %s", styles.label.Render(label),
		bar, styles.value.Render(fmt.Sprintf("%3d", value)))
}
