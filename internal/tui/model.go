package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/exercise"
	"github.com/mindtrackhq/mindtrack/internal/storage"
	"github.com/mindtrackhq/mindtrack/internal/tui/components/entrylist"
	"github.com/mindtrackhq/mindtrack/internal/utils"
)

// tabOrder is the cycle walked by tab / shift+tab.
var tabOrder = []constants.SessionState{
	constants.StateMoods,
	constants.StateTriggers,
	constants.StateGratitude,
	constants.StateGoals,
	constants.StateVault,
	constants.StateExercises,
	constants.StateInsights,
}

type activationStage int

const (
	activationAdd activationStage = iota
	activationSelect
	activationMoods
)

type Model struct {
	store storage.Provider

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	width         int
	height        int
	today         string
	quitting      bool
	statusMsg     string

	moodList      entrylist.Model
	triggerList   entrylist.Model
	gratitudeList entrylist.Model
	goalList      entrylist.Model
	vaultList     entrylist.Model
	exerciseList  entrylist.Model

	moodShowAll         bool
	exerciseShowHistory bool

	form           *huh.Form
	moodDraft      moodDraft
	triggerDraft   triggerDraft
	gratitudeDraft gratitudeDraft
	goalDraft      goalDraft
	vaultDraft     vaultDraft
	unlockDraft    unlockDraft

	vaultUnlocked bool
	pendingDelete entrylist.Item

	relaxation *exercise.Relaxation
	activation *exercise.Activation
	actStage   activationStage
	actDraft   activationDraft
}

func NewModel(store storage.Provider) Model {
	m := Model{
		store: store,
		state: constants.StateMoods,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		today: time.Now().Format(constants.DateFormat),
	}

	if settings, err := store.GetSettings(); err == nil {
		if today, err := utils.GetTodayFromSettings(settings); err == nil {
			m.today = today
		}
	}

	m.moodList = entrylist.New("Moods (today)", 0, 0)
	m.triggerList = entrylist.New("Triggers", 0, 0)
	m.gratitudeList = entrylist.New("Gratitude", 0, 0)
	m.goalList = entrylist.New("Goals", 0, 0)
	m.vaultList = entrylist.New("Vault", 0, 0)
	m.exerciseList = entrylist.New("Exercises", 0, 0)

	// The vault stays open when no password has been set
	if pw, err := store.GetVaultPassword(); err == nil && pw == "" {
		m.vaultUnlocked = true
	}

	m.refreshAll()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Add, m.keys.Delete, m.keys.Favorite, m.keys.Quit}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Up, m.keys.Down},
		{m.keys.Add, m.keys.Delete, m.keys.Favorite, m.keys.History},
		{m.keys.Enter, m.keys.Help, m.keys.Quit},
	}
}

// relaxTickMsg drives the relaxation session clock once per second.
type relaxTickMsg time.Time

func relaxTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return relaxTickMsg(t)
	})
}
