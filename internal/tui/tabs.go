package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/exercise"
	"github.com/mindtrackhq/mindtrack/internal/insights"
	"github.com/mindtrackhq/mindtrack/internal/logger"
	"github.com/mindtrackhq/mindtrack/internal/tui/components/entrylist"
	"github.com/mindtrackhq/mindtrack/internal/utils"
)

func tabTitle(state constants.SessionState) string {
	switch state {
	case constants.StateMoods:
		return "Moods"
	case constants.StateTriggers:
		return "Triggers"
	case constants.StateGratitude:
		return "Gratitude"
	case constants.StateGoals:
		return "Goals"
	case constants.StateVault:
		return "Vault"
	case constants.StateExercises:
		return "Exercises"
	case constants.StateInsights:
		return "Insights"
	default:
		return ""
	}
}

func favPrefix(fav bool) string {
	if fav {
		return "★ "
	}
	return ""
}

func (m *Model) refreshAll() {
	m.refreshMoods()
	m.refreshTriggers()
	m.refreshGratitude()
	m.refreshGoals()
	m.refreshVault()
	m.refreshExercises()
}

func (m *Model) refreshMoods() {
	entries, err := m.store.GetMoodEntries()
	if err != nil {
		logger.Warn("loading mood entries", "error", err)
		return
	}
	if !m.moodShowAll {
		entries = insights.VisibleMoodEntries(entries, insights.Query{}, m.today)
		m.moodList.SetTitle("Moods (today)")
	} else {
		m.moodList.SetTitle("Moods (all)")
	}
	items := make([]entrylist.Item, 0, len(entries))
	for _, e := range entries {
		detail := fmt.Sprintf("%s %s", e.Date, e.Time)
		if e.Note != "" {
			detail += " · " + e.Note
		}
		if len(e.Activities) > 0 {
			detail += " · " + strings.Join(e.Activities, ", ")
		}
		items = append(items, entrylist.Item{
			ID:       e.ID,
			Heading:  fmt.Sprintf("%s%+d", favPrefix(e.IsFavorite), e.Mood),
			Detail:   detail,
			Keywords: strings.Join(e.SearchFields(), " "),
		})
	}
	m.moodList.SetItems(items)
}

func (m *Model) refreshTriggers() {
	entries, err := m.store.GetTriggerEntries()
	if err != nil {
		logger.Warn("loading trigger entries", "error", err)
		return
	}
	items := make([]entrylist.Item, 0, len(entries))
	for _, e := range entries {
		detail := fmt.Sprintf("intensity %d · %s", e.Intensity, e.Date)
		if e.Category != "" {
			detail += " · " + e.Category
		}
		if e.CopingStrategy != "" {
			detail += " · coped: " + e.CopingStrategy
		}
		items = append(items, entrylist.Item{
			ID:       e.ID,
			Heading:  favPrefix(e.IsFavorite) + e.Description,
			Detail:   detail,
			Keywords: strings.Join(e.SearchFields(), " "),
		})
	}
	m.triggerList.SetItems(items)
}

func (m *Model) refreshGratitude() {
	entries, err := m.store.GetGratitudeEntries()
	if err != nil {
		logger.Warn("loading gratitude entries", "error", err)
		return
	}
	items := make([]entrylist.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, entrylist.Item{
			ID:      e.ID,
			Heading: favPrefix(e.IsFavorite) + e.Text,
			Detail:  e.Date,
		})
	}
	m.gratitudeList.SetItems(items)
}

func (m *Model) refreshGoals() {
	goals, err := m.store.GetGoals()
	if err != nil {
		logger.Warn("loading goals", "error", err)
		return
	}
	now := time.Now()
	items := make([]entrylist.Item, 0, len(goals))
	for _, g := range goals {
		detail := fmt.Sprintf("%d%%", g.StepProgress())
		if len(g.Steps) > 0 {
			done := 0
			for _, s := range g.Steps {
				if s.Done {
					done++
				}
			}
			detail += fmt.Sprintf(" · %d/%d steps", done, len(g.Steps))
		}
		if g.TargetDate != "" {
			if countdown, err := utils.FormatCountdown(g.TargetDate, now); err == nil {
				detail += " · " + countdown
			}
		}
		if g.CompletedAt != nil {
			detail += " · completed"
		}
		items = append(items, entrylist.Item{
			ID:       g.ID,
			Heading:  favPrefix(g.IsFavorite) + g.Title,
			Detail:   detail,
			Keywords: strings.Join(g.SearchFields(), " "),
		})
	}
	m.goalList.SetItems(items)
}

func (m *Model) refreshVault() {
	if !m.vaultUnlocked {
		m.vaultList.SetItems(nil)
		return
	}
	entries, err := m.store.GetVaultEntries()
	if err != nil {
		logger.Warn("loading vault entries", "error", err)
		return
	}
	items := make([]entrylist.Item, 0, len(entries))
	for _, e := range entries {
		detail := e.Content
		if e.Category != "" {
			detail = e.Category + " · " + detail
		}
		items = append(items, entrylist.Item{
			ID:       e.ID,
			Heading:  favPrefix(e.IsFavorite) + e.Title,
			Detail:   detail,
			Keywords: strings.Join(e.SearchFields(), " "),
		})
	}
	m.vaultList.SetItems(items)
}

func (m *Model) refreshExercises() {
	if m.exerciseShowHistory {
		m.exerciseList.SetTitle("Exercise history")
		history, err := m.store.GetExerciseHistory()
		if err != nil {
			logger.Warn("loading exercise history", "error", err)
			return
		}
		items := make([]entrylist.Item, 0, len(history))
		for _, h := range history {
			name := h.TechniqueID
			if tech, ok := exercise.TechniqueByID(h.TechniqueID); ok {
				name = tech.Name
			}
			detail := h.Date
			if h.Duration > 0 {
				detail += fmt.Sprintf(" · %ds", h.Duration)
			}
			if before, ok := h.Extra["mood_before"]; ok {
				detail += fmt.Sprintf(" · mood %d → %d", before, h.Extra["mood_after"])
			}
			items = append(items, entrylist.Item{
				ID:      h.ID,
				Heading: name,
				Detail:  detail,
			})
		}
		m.exerciseList.SetItems(items)
		return
	}

	m.exerciseList.SetTitle("Exercises")
	favorites := map[string]bool{}
	if favs, err := m.store.GetTechniqueFavorites(); err == nil {
		for _, id := range favs {
			favorites[id] = true
		}
	}
	counts, err := m.store.GetCompletionCounts()
	if err != nil {
		counts = map[string]int{}
	}
	techniques := exercise.Techniques()
	items := make([]entrylist.Item, 0, len(techniques))
	for _, t := range techniques {
		detail := fmt.Sprintf("%s · %s", strings.ToUpper(string(t.Kind)), t.Summary)
		if n := counts[t.ID]; n > 0 {
			detail += fmt.Sprintf(" · completed %dx", n)
		}
		items = append(items, entrylist.Item{
			StrID:    t.ID,
			Heading:  favPrefix(favorites[t.ID]) + t.Name,
			Detail:   detail,
			Keywords: t.Name + " " + t.Summary,
		})
	}
	m.exerciseList.SetItems(items)
}
