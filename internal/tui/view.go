package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/exercise"
	"github.com/mindtrackhq/mindtrack/internal/insights"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case constants.StateAddMood, constants.StateAddTrigger, constants.StateAddGratitude,
		constants.StateAddGoal, constants.StateAddVaultEntry, constants.StateVaultUnlock:
		if m.form != nil {
			return docStyle.Render(m.form.View())
		}
		return ""
	case constants.StateActivation:
		return m.viewActivation()
	case constants.StateRelaxation:
		return m.viewRelaxation()
	case constants.StateConfirmDelete:
		return m.viewConfirmDelete()
	}

	var body string
	switch m.state {
	case constants.StateMoods:
		body = m.moodList.View()
	case constants.StateTriggers:
		body = m.triggerList.View()
	case constants.StateGratitude:
		body = m.gratitudeList.View()
	case constants.StateGoals:
		body = m.goalList.View()
	case constants.StateVault:
		if m.vaultUnlocked {
			body = m.vaultList.View()
		} else {
			body = subtleStyle.Render("The vault is locked. Press enter to unlock.")
		}
	case constants.StateExercises:
		body = m.exerciseList.View()
	case constants.StateInsights:
		body = m.viewInsights()
	}

	sections := []string{m.viewTabs(), body}
	if m.statusMsg != "" {
		sections = append(sections, dangerStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m))
	return docStyle.Render(strings.Join(sections, "\n\n"))
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(tabOrder))
	for _, state := range tabOrder {
		if state == m.state {
			tabs = append(tabs, activeTabStyle.Render(tabTitle(state)))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tabTitle(state)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmDelete() string {
	question := fmt.Sprintf("Delete %q? (y/n)", m.pendingDelete.Heading)
	dialog := dangerStyle.Render(question)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return dialog
}

func (m Model) viewRelaxation() string {
	r := m.relaxation
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(phaseStyle.Render("Progressive Muscle Relaxation"))
	b.WriteString("\n\n")

	if r.Phase() == exercise.RelaxComplete {
		b.WriteString(fmt.Sprintf("All %d muscle groups done in %ds.\n\n", r.GroupCount(), r.SessionSeconds()))
		b.WriteString(subtleStyle.Render("enter save · r restart · esc discard"))
		return docStyle.Render(b.String())
	}

	group, ok := r.Group()
	if ok {
		b.WriteString(fmt.Sprintf("Group %d of %d: %s\n", r.Index()+1, r.GroupCount(), group.Name))
		b.WriteString(subtleStyle.Render(group.Cue))
		b.WriteString("\n\n")
	}

	var remaining int
	switch r.Phase() {
	case exercise.RelaxTensing:
		remaining = constants.RelaxTenseSeconds - r.PhaseSeconds()
	case exercise.RelaxReleasing:
		remaining = constants.RelaxReleaseSeconds - r.PhaseSeconds()
	}
	b.WriteString(phaseStyle.Render(r.Phase().String()))
	if remaining > 0 {
		b.WriteString(fmt.Sprintf("  %ds", remaining))
	}
	b.WriteString(fmt.Sprintf("\nSession: %ds\n\n", r.SessionSeconds()))
	b.WriteString(subtleStyle.Render("space skip phase · r restart · esc cancel"))
	return docStyle.Render(b.String())
}

func (m Model) viewActivation() string {
	var b strings.Builder
	b.WriteString(phaseStyle.Render("Behavioral Activation"))
	b.WriteString("\n\n")
	if m.activation != nil {
		for _, a := range m.activation.Activities() {
			b.WriteString(fmt.Sprintf("  [%s] %s\n", a.State.String(), a.Title))
		}
		b.WriteString("\n")
	}
	if m.form != nil {
		b.WriteString(m.form.View())
	}
	if m.statusMsg != "" {
		b.WriteString("\n" + dangerStyle.Render(m.statusMsg))
	}
	return docStyle.Render(b.String())
}

func (m Model) viewInsights() string {
	var b strings.Builder

	moods, err := m.store.GetMoodEntries()
	if err == nil {
		trend := insights.ClassifyTrend(moods)
		b.WriteString(phaseStyle.Render("Mood trend"))
		b.WriteString("\n" + trend.Message() + "\n")
		recent := moods
		if len(recent) > constants.TrendWindow {
			recent = recent[:constants.TrendWindow]
		}
		if len(recent) > 0 {
			b.WriteString(fmt.Sprintf("Recent average: %.1f over %d entries\n", insights.AverageMood(recent), len(recent)))
		}
	}

	triggers, err := m.store.GetTriggerEntries()
	if err == nil && len(triggers) > 0 {
		b.WriteString("\n" + phaseStyle.Render("Top trigger categories") + "\n")
		for i, kc := range insights.CategoryCounts(triggers) {
			if i >= 5 {
				break
			}
			b.WriteString(fmt.Sprintf("  %-20s %d\n", kc.Key, kc.Count))
		}
		b.WriteString("\n" + phaseStyle.Render("Coping strategies that helped") + "\n")
		for i, kc := range insights.CopingStrategyCounts(triggers) {
			if i >= 5 {
				break
			}
			b.WriteString(fmt.Sprintf("  %-20s %d\n", kc.Key, kc.Count))
		}
	}

	if b.Len() == 0 {
		return subtleStyle.Render("Not enough data yet. Log a few moods and triggers first.")
	}
	return b.String()
}
