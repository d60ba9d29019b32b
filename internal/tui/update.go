package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/exercise"
	"github.com/mindtrackhq/mindtrack/internal/logger"
	"github.com/mindtrackhq/mindtrack/internal/models"
	"github.com/mindtrackhq/mindtrack/internal/tui/components/entrylist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		listWidth := msg.Width - h
		listHeight := msg.Height - v - 4
		m.moodList.SetSize(listWidth, listHeight)
		m.triggerList.SetSize(listWidth, listHeight)
		m.gratitudeList.SetSize(listWidth, listHeight)
		m.goalList.SetSize(listWidth, listHeight)
		m.vaultList.SetSize(listWidth, listHeight)
		m.exerciseList.SetSize(listWidth, listHeight)
		return m, nil

	case relaxTickMsg:
		if m.state != constants.StateRelaxation || m.relaxation == nil {
			return m, nil
		}
		m.relaxation.Tick()
		if m.relaxation.Phase() == exercise.RelaxComplete {
			return m, nil
		}
		return m, relaxTick()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.state {
		case constants.StateAddMood, constants.StateAddTrigger, constants.StateAddGratitude,
			constants.StateAddGoal, constants.StateAddVaultEntry, constants.StateVaultUnlock:
			return m.updateForm(msg)
		case constants.StateActivation:
			return m.updateActivation(msg)
		case constants.StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		case constants.StateRelaxation:
			return m.updateRelaxation(msg)
		}

		return m.updateTab(msg)
	}

	// Non-key messages keep forms animating
	switch m.state {
	case constants.StateAddMood, constants.StateAddTrigger, constants.StateAddGratitude,
		constants.StateAddGoal, constants.StateAddVaultEntry, constants.StateVaultUnlock:
		return m.updateForm(msg)
	case constants.StateActivation:
		return m.updateActivation(msg)
	}
	return m, nil
}

// updateTab handles keys while one of the collection tabs is focused.
func (m Model) updateTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		m.state = nextTab(m.state, 1)
		return m.enterTab()

	case key.Matches(msg, m.keys.ShiftTab):
		m.state = nextTab(m.state, -1)
		return m.enterTab()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Add):
		return m.startAdd()

	case key.Matches(msg, m.keys.Delete):
		return m.startDelete()

	case key.Matches(msg, m.keys.Favorite):
		m.toggleFavorite()
		return m, nil

	case key.Matches(msg, m.keys.History):
		switch m.state {
		case constants.StateMoods:
			m.moodShowAll = !m.moodShowAll
			m.refreshMoods()
		case constants.StateExercises:
			m.exerciseShowHistory = !m.exerciseShowHistory
			m.refreshExercises()
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.state == constants.StateExercises && !m.exerciseShowHistory {
			return m.startExercise()
		}
		if m.state == constants.StateVault && !m.vaultUnlocked {
			return m.enterTab()
		}
	}

	// Everything else scrolls the focused list
	var cmd tea.Cmd
	switch m.state {
	case constants.StateMoods:
		m.moodList, cmd = m.moodList.Update(msg)
	case constants.StateTriggers:
		m.triggerList, cmd = m.triggerList.Update(msg)
	case constants.StateGratitude:
		m.gratitudeList, cmd = m.gratitudeList.Update(msg)
	case constants.StateGoals:
		m.goalList, cmd = m.goalList.Update(msg)
	case constants.StateVault:
		m.vaultList, cmd = m.vaultList.Update(msg)
	case constants.StateExercises:
		m.exerciseList, cmd = m.exerciseList.Update(msg)
	}
	return m, cmd
}

func nextTab(state constants.SessionState, delta int) constants.SessionState {
	for i, s := range tabOrder {
		if s == state {
			return tabOrder[(i+delta+len(tabOrder))%len(tabOrder)]
		}
	}
	return tabOrder[0]
}

// enterTab runs the entry hook for the newly focused tab. Switching to a
// locked vault detours through the unlock form first.
func (m Model) enterTab() (tea.Model, tea.Cmd) {
	if m.state == constants.StateVault && !m.vaultUnlocked {
		m.previousState = m.state
		m.state = constants.StateVaultUnlock
		m.form = m.newUnlockForm()
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) startAdd() (tea.Model, tea.Cmd) {
	m.previousState = m.state
	switch m.state {
	case constants.StateMoods:
		m.state = constants.StateAddMood
		m.form = m.newMoodForm()
	case constants.StateTriggers:
		m.state = constants.StateAddTrigger
		m.form = m.newTriggerForm()
	case constants.StateGratitude:
		m.state = constants.StateAddGratitude
		m.form = m.newGratitudeForm()
	case constants.StateGoals:
		m.state = constants.StateAddGoal
		m.form = m.newGoalForm()
	case constants.StateVault:
		if !m.vaultUnlocked {
			return m.enterTab()
		}
		m.state = constants.StateAddVaultEntry
		m.form = m.newVaultForm()
	default:
		return m, nil
	}
	return m, m.form.Init()
}

func (m Model) startDelete() (tea.Model, tea.Cmd) {
	var item entrylist.Item
	var ok bool
	switch m.state {
	case constants.StateMoods:
		item, ok = m.moodList.Selected()
	case constants.StateTriggers:
		item, ok = m.triggerList.Selected()
	case constants.StateGratitude:
		item, ok = m.gratitudeList.Selected()
	case constants.StateGoals:
		item, ok = m.goalList.Selected()
	case constants.StateVault:
		if !m.vaultUnlocked {
			return m, nil
		}
		item, ok = m.vaultList.Selected()
	case constants.StateExercises:
		if !m.exerciseShowHistory {
			return m, nil
		}
		item, ok = m.exerciseList.Selected()
	default:
		return m, nil
	}
	if !ok {
		return m, nil
	}
	m.pendingDelete = item
	m.previousState = m.state
	m.state = constants.StateConfirmDelete
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		var err error
		switch m.previousState {
		case constants.StateMoods:
			err = m.store.DeleteMoodEntry(m.pendingDelete.ID)
		case constants.StateTriggers:
			err = m.store.DeleteTriggerEntry(m.pendingDelete.ID)
		case constants.StateGratitude:
			err = m.store.DeleteGratitudeEntry(m.pendingDelete.ID)
		case constants.StateGoals:
			err = m.store.DeleteGoal(m.pendingDelete.ID)
		case constants.StateVault:
			err = m.store.DeleteVaultEntry(m.pendingDelete.ID)
		case constants.StateExercises:
			err = m.store.DeleteExerciseHistory(m.pendingDelete.ID)
		}
		if err != nil {
			logger.Error("deleting entry", "error", err)
			m.statusMsg = "Delete failed: " + err.Error()
		}
		m.state = m.previousState
		m.refreshAll()
		return m, nil
	case "n", "N", "esc":
		m.state = m.previousState
		return m, nil
	}
	return m, nil
}

func (m *Model) toggleFavorite() {
	var err error
	switch m.state {
	case constants.StateMoods:
		if item, ok := m.moodList.Selected(); ok {
			err = m.store.ToggleMoodFavorite(item.ID)
		}
	case constants.StateTriggers:
		if item, ok := m.triggerList.Selected(); ok {
			err = m.store.ToggleTriggerFavorite(item.ID)
		}
	case constants.StateGratitude:
		if item, ok := m.gratitudeList.Selected(); ok {
			err = m.store.ToggleGratitudeFavorite(item.ID)
		}
	case constants.StateGoals:
		if item, ok := m.goalList.Selected(); ok {
			err = m.store.ToggleGoalFavorite(item.ID)
		}
	case constants.StateExercises:
		if item, ok := m.exerciseList.Selected(); ok && item.StrID != "" {
			err = m.store.ToggleTechniqueFavorite(item.StrID)
		}
	}
	if err != nil {
		logger.Error("toggling favorite", "error", err)
		m.statusMsg = "Favorite failed: " + err.Error()
	}
	m.refreshAll()
}

// startExercise opens the guided flow for the selected technique. Techniques
// without a guided flow just record a completion.
func (m Model) startExercise() (tea.Model, tea.Cmd) {
	item, ok := m.exerciseList.Selected()
	if !ok || item.StrID == "" {
		return m, nil
	}
	m.previousState = m.state
	switch item.StrID {
	case "tech-relaxation":
		m.relaxation = exercise.NewRelaxation(exercise.MuscleGroups())
		m.relaxation.Start()
		m.state = constants.StateRelaxation
		return m, relaxTick()
	case "tech-activation":
		m.activation = exercise.NewActivation()
		m.actStage = activationAdd
		m.state = constants.StateActivation
		m.form = m.newActivityAddForm()
		return m, m.form.Init()
	default:
		if err := m.recordExercise(item.StrID, 0, nil); err != nil {
			m.statusMsg = "Recording failed: " + err.Error()
		} else {
			m.statusMsg = "Recorded a completion of " + item.Heading
		}
		m.refreshExercises()
		return m, nil
	}
}

func (m Model) updateRelaxation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.relaxation = nil
		m.state = m.previousState
		return m, nil
	case "r":
		m.relaxation.Reset()
		m.relaxation.Start()
		return m, relaxTick()
	case " ":
		switch m.relaxation.Phase() {
		case exercise.RelaxTensing:
			m.relaxation.Relax()
		case exercise.RelaxReleasing:
			m.relaxation.CompleteGroup()
		}
		return m, nil
	case "enter":
		if m.relaxation.Phase() != exercise.RelaxComplete {
			return m, nil
		}
		result := m.relaxation.Finish()
		if err := m.recordExercise("tech-relaxation", result.SessionSeconds, nil); err != nil {
			logger.Error("recording relaxation session", "error", err)
			m.statusMsg = "Recording failed: " + err.Error()
		} else {
			m.statusMsg = "Relaxation session saved"
		}
		m.relaxation = nil
		m.state = m.previousState
		m.refreshExercises()
		return m, nil
	}
	return m, nil
}

func (m Model) updateActivation(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.activation = nil
		m.form = nil
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.advanceActivation()
	case huh.StateAborted:
		m.activation = nil
		m.form = nil
		m.state = m.previousState
		return m, nil
	}
	return m, cmd
}

func (m Model) advanceActivation() (tea.Model, tea.Cmd) {
	switch m.actStage {
	case activationAdd:
		title := strings.TrimSpace(m.actDraft.Title)
		if title != "" {
			m.activation.Add(title)
			m.form = m.newActivityAddForm()
			return m, m.form.Init()
		}
		if len(m.activation.Activities()) == 0 {
			m.activation = nil
			m.form = nil
			m.state = m.previousState
			return m, nil
		}
		m.actStage = activationSelect
		m.form = m.newActivitySelectForm()
		return m, m.form.Init()

	case activationSelect:
		if m.actDraft.ActivityID == activationFinishValue {
			if !m.activation.CanFinalize() {
				m.statusMsg = "Complete at least one activity before finishing"
				m.form = m.newActivitySelectForm()
				return m, m.form.Init()
			}
			completed := m.activation.Completed()
			for _, a := range completed {
				extra := map[string]int{"mood_before": a.MoodBefore, "mood_after": a.MoodAfter}
				if err := m.recordExercise("tech-activation", 0, extra); err != nil {
					logger.Error("recording activation session", "error", err)
				}
			}
			m.statusMsg = "Activation session saved"
			m.activation = nil
			m.form = nil
			m.state = m.previousState
			m.refreshExercises()
			return m, nil
		}
		id, err := strconv.ParseInt(m.actDraft.ActivityID, 10, 64)
		if err != nil {
			m.form = m.newActivitySelectForm()
			return m, m.form.Init()
		}
		m.activation.MarkDone(id)
		m.actStage = activationMoods
		m.form = m.newActivityMoodsForm()
		return m, m.form.Init()

	case activationMoods:
		id, _ := strconv.ParseInt(m.actDraft.ActivityID, 10, 64)
		before, _ := strconv.Atoi(strings.TrimSpace(m.actDraft.MoodBefore))
		after, _ := strconv.Atoi(strings.TrimSpace(m.actDraft.MoodAfter))
		m.activation.SubmitMoods(id, before, after)
		m.actStage = activationSelect
		m.form = m.newActivitySelectForm()
		return m, m.form.Init()
	}
	return m, nil
}

// updateForm routes messages to the active huh form and persists on completion.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.saveForm(); err != nil {
			logger.Error("saving entry", "error", err)
			m.statusMsg = "Save failed: " + err.Error()
		}
		m.form = nil
		m.state = m.previousState
		m.refreshAll()
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.state = m.previousState
		return m, nil
	}
	return m, cmd
}

func (m *Model) saveForm() error {
	now := time.Now()
	switch m.state {
	case constants.StateAddMood:
		mood, _ := strconv.Atoi(strings.TrimSpace(m.moodDraft.Mood))
		entry := models.MoodEntry{
			ID:        models.NewEntryID(),
			Mood:      mood,
			Note:      strings.TrimSpace(m.moodDraft.Note),
			Date:      m.today,
			Time:      now.Format(constants.TimeFormat),
			CreatedAt: now,
		}
		for _, a := range strings.Split(m.moodDraft.Activities, ",") {
			if a = strings.TrimSpace(a); a != "" {
				entry.Activities = append(entry.Activities, a)
			}
		}
		return m.store.AddMoodEntry(entry)

	case constants.StateAddTrigger:
		intensity, _ := strconv.Atoi(strings.TrimSpace(m.triggerDraft.Intensity))
		return m.store.AddTriggerEntry(models.TriggerEntry{
			ID:             models.NewEntryID(),
			Description:    strings.TrimSpace(m.triggerDraft.Description),
			Category:       m.triggerDraft.Category,
			Intensity:      intensity,
			CopingStrategy: strings.TrimSpace(m.triggerDraft.CopingStrategy),
			Date:           m.today,
			Time:           now.Format(constants.TimeFormat),
			CreatedAt:      now,
		})

	case constants.StateAddGratitude:
		return m.store.AddGratitudeEntry(models.GratitudeEntry{
			ID:        models.NewEntryID(),
			Text:      strings.TrimSpace(m.gratitudeDraft.Text),
			Date:      m.today,
			CreatedAt: now,
		})

	case constants.StateAddGoal:
		goal := models.Goal{
			ID:          models.NewEntryID(),
			Title:       strings.TrimSpace(m.goalDraft.Title),
			Description: strings.TrimSpace(m.goalDraft.Description),
			TargetDate:  strings.TrimSpace(m.goalDraft.TargetDate),
			Steps:       []models.GoalStep{},
			CreatedAt:   now,
		}
		for _, s := range strings.Split(m.goalDraft.Steps, ",") {
			if s = strings.TrimSpace(s); s != "" {
				goal.Steps = append(goal.Steps, models.GoalStep{ID: "step-" + uuid.NewString(), Text: s})
			}
		}
		return m.store.AddGoal(goal)

	case constants.StateAddVaultEntry:
		return m.store.AddVaultEntry(models.VaultEntry{
			ID:        models.NewEntryID(),
			Title:     strings.TrimSpace(m.vaultDraft.Title),
			Content:   m.vaultDraft.Content,
			Category:  m.vaultDraft.Category,
			CreatedAt: now,
			UpdatedAt: now,
		})

	case constants.StateVaultUnlock:
		stored, err := m.store.GetVaultPassword()
		if err != nil {
			return err
		}
		if m.unlockDraft.Password != stored {
			m.statusMsg = "Wrong vault password"
			return nil
		}
		m.vaultUnlocked = true
		m.refreshVault()
		return nil
	}
	return nil
}

func (m *Model) recordExercise(techniqueID string, durationSec int, extra map[string]int) error {
	entry := models.ExerciseHistoryEntry{
		ID:          models.NewEntryID(),
		TechniqueID: techniqueID,
		Date:        m.today,
		Duration:    durationSec,
		Extra:       extra,
		CreatedAt:   time.Now(),
	}
	if err := m.store.AddExerciseHistory(entry); err != nil {
		return err
	}
	return m.store.IncrementCompletionCount(techniqueID)
}
