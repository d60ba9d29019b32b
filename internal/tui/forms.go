package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/logger"
	"github.com/mindtrackhq/mindtrack/internal/utils"
)

type moodDraft struct {
	Mood       string
	Note       string
	Activities string
}

type triggerDraft struct {
	Description    string
	Category       string
	Intensity      string
	CopingStrategy string
}

type gratitudeDraft struct {
	Text string
}

type goalDraft struct {
	Title       string
	Description string
	TargetDate  string
	Steps       string
}

type vaultDraft struct {
	Title    string
	Content  string
	Category string
}

type unlockDraft struct {
	Password string
}

type activationDraft struct {
	Title      string
	ActivityID string
	MoodBefore string
	MoodAfter  string
}

func validateIntInRange(min, max int, label string) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%s must be a number", label)
		}
		if n < min || n > max {
			return fmt.Errorf("%s must be between %d and %d", label, min, max)
		}
		return nil
	}
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := utils.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	return nil
}

func validateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func (m *Model) newMoodForm() *huh.Form {
	m.moodDraft = moodDraft{}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Mood (%d to %d)", constants.MoodMin, constants.MoodMax)).
				Value(&m.moodDraft.Mood).
				Validate(validateIntInRange(constants.MoodMin, constants.MoodMax, "mood")),
			huh.NewInput().
				Title("Note (optional)").
				Value(&m.moodDraft.Note),
			huh.NewInput().
				Title("Activities (comma separated, optional)").
				Value(&m.moodDraft.Activities),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m *Model) newTriggerForm() *huh.Form {
	m.triggerDraft = triggerDraft{}
	options := []huh.Option[string]{huh.NewOption("(none)", "")}
	if categories, err := m.store.GetTriggerCategories(); err == nil {
		for _, c := range categories {
			options = append(options, huh.NewOption(c.Name, c.Name))
		}
	} else {
		logger.Warn("loading trigger categories", "error", err)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What happened?").
				Value(&m.triggerDraft.Description).
				Validate(validateRequired("description")),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&m.triggerDraft.Category),
			huh.NewInput().
				Title(fmt.Sprintf("Intensity (%d-%d)", constants.IntensityMin, constants.IntensityMax)).
				Value(&m.triggerDraft.Intensity).
				Validate(validateIntInRange(constants.IntensityMin, constants.IntensityMax, "intensity")),
			huh.NewInput().
				Title("What helped? (optional)").
				Value(&m.triggerDraft.CopingStrategy),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m *Model) newGratitudeForm() *huh.Form {
	m.gratitudeDraft = gratitudeDraft{}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What are you grateful for?").
				Value(&m.gratitudeDraft.Text).
				Validate(validateRequired("text")),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m *Model) newGoalForm() *huh.Form {
	m.goalDraft = goalDraft{}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal title").
				Value(&m.goalDraft.Title).
				Validate(validateRequired("title")),
			huh.NewInput().
				Title("Description (optional)").
				Value(&m.goalDraft.Description),
			huh.NewInput().
				Title("Target date (YYYY-MM-DD, optional)").
				Value(&m.goalDraft.TargetDate).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Steps (comma separated, optional)").
				Value(&m.goalDraft.Steps),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m *Model) newVaultForm() *huh.Form {
	m.vaultDraft = vaultDraft{}
	options := []huh.Option[string]{huh.NewOption("(none)", "")}
	if categories, err := m.store.GetVaultCategories(); err == nil {
		for _, c := range categories {
			options = append(options, huh.NewOption(c.Name, c.Name))
		}
	} else {
		logger.Warn("loading vault categories", "error", err)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.vaultDraft.Title).
				Validate(validateRequired("title")),
			huh.NewText().
				Title("Content").
				Value(&m.vaultDraft.Content),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&m.vaultDraft.Category),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m *Model) newUnlockForm() *huh.Form {
	m.unlockDraft = unlockDraft{}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Vault password").
				EchoMode(huh.EchoModePassword).
				Value(&m.unlockDraft.Password),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m *Model) newActivityAddForm() *huh.Form {
	m.actDraft.Title = ""
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Add an activity (leave empty to stop adding)").
				Value(&m.actDraft.Title),
		),
	).WithTheme(huh.ThemeDracula())
}

const activationFinishValue = "__finish__"

func (m *Model) newActivitySelectForm() *huh.Form {
	m.actDraft.ActivityID = ""
	options := []huh.Option[string]{}
	for _, a := range m.activation.Activities() {
		label := a.Title + " (" + a.State.String() + ")"
		options = append(options, huh.NewOption(label, strconv.FormatInt(a.ID, 10)))
	}
	options = append(options, huh.NewOption("Finish session", activationFinishValue))
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Mark an activity done").
				Options(options...).
				Value(&m.actDraft.ActivityID),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m *Model) newActivityMoodsForm() *huh.Form {
	m.actDraft.MoodBefore = ""
	m.actDraft.MoodAfter = ""
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mood before (1-10)").
				Value(&m.actDraft.MoodBefore).
				Validate(validateIntInRange(1, 10, "mood")),
			huh.NewInput().
				Title("Mood after (1-10)").
				Value(&m.actDraft.MoodAfter).
				Validate(validateIntInRange(1, 10, "mood")),
		),
	).WithTheme(huh.ThemeDracula())
}
