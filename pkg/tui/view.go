package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/reflect/pkg/day"
)

var appStyle = lipgloss.NewStyle().Padding(0, 1)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	e := m.session.Entry()

	var b strings.Builder
	header := m.theme.Header.Badge.Render("Reflect") + m.theme.Header.Date.Render(m.session.Date().Long())
	if e.Mood != day.MoodNone {
		header += "  " + e.Mood.Symbol()
	}
	b.WriteString(header + "\n\n")

	b.WriteString(m.theme.Header.Section.Render("How was your day?") + "\n")
	b.WriteString(m.box(focusNote).Render(m.note.View()) + "\n")

	b.WriteString(m.theme.Header.Section.Render("Actions") + "\n")
	b.WriteString(m.box(focusAction).Render(m.action.View()) + "\n")
	b.WriteString(m.box(focusList).Render(m.actionsView(e.Actions)) + "\n")

	b.WriteString(m.moodsView(e.Mood) + "\n")
	b.WriteString(m.theme.Footer.Status.Render(m.status))
	return appStyle.Render(b.String())
}

func (m Model) box(f focus) lipgloss.Style {
	if m.focus == f {
		return m.theme.Panel.Focused
	}
	return m.theme.Panel.Blurred
}

func (m Model) actionsView(actions []string) string {
	if len(actions) == 0 {
		return m.theme.Panel.Faint.Render("no actions yet")
	}
	lines := make([]string, 0, len(actions))
	for i, a := range actions {
		line := fmt.Sprintf("%d. %s", i+1, a)
		if m.focus == focusList && i == m.selected {
			line = m.theme.Panel.Selected.Render("› " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) moodsView(current day.Mood) string {
	parts := make([]string, 0, len(day.Moods()))
	for _, mood := range day.Moods() {
		label := fmt.Sprintf("%d %s", int(mood), mood.Symbol())
		if mood == current {
			label = m.theme.Footer.Picked.Render(label)
		} else {
			label = m.theme.Footer.Mood.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "   ")
}
