package exercise

import "github.com/mindtrackhq/mindtrack/internal/models"

// MuscleGroup is one step of the progressive relaxation sequence.
type MuscleGroup struct {
	ID   string
	Name string
	Cue  string
}

// MuscleGroups returns the relaxation sequence in the order it is practiced.
func MuscleGroups() []MuscleGroup {
	return []MuscleGroup{
		{ID: "grp-hands", Name: "Hands", Cue: "Clench both fists tightly"},
		{ID: "grp-arms", Name: "Arms", Cue: "Tense biceps and forearms"},
		{ID: "grp-shoulders", Name: "Shoulders", Cue: "Raise shoulders toward your ears"},
		{ID: "grp-neck", Name: "Neck", Cue: "Press your head gently back"},
		{ID: "grp-face", Name: "Face", Cue: "Scrunch your forehead and jaw"},
		{ID: "grp-chest", Name: "Chest", Cue: "Take a deep breath and hold it"},
		{ID: "grp-abdomen", Name: "Abdomen", Cue: "Tighten your stomach muscles"},
		{ID: "grp-back", Name: "Back", Cue: "Arch your lower back slightly"},
		{ID: "grp-legs", Name: "Legs", Cue: "Tense thighs and calves"},
		{ID: "grp-feet", Name: "Feet", Cue: "Curl your toes downward"},
	}
}

// Techniques returns the built-in CBT and DBT skill catalogue.
func Techniques() []models.Technique {
	return []models.Technique{
		{
			ID:      "tech-stop",
			Name:    "STOP",
			Kind:    models.TechniqueDBT,
			Summary: "Pause before reacting to an intense urge.",
			Steps: []string{
				"Stop. Freeze, do not act on the urge.",
				"Take a step back from the situation.",
				"Observe what is happening inside and around you.",
				"Proceed mindfully with what works.",
			},
		},
		{
			ID:      "tech-tipp",
			Name:    "TIPP",
			Kind:    models.TechniqueDBT,
			Summary: "Change your body chemistry to ride out overwhelming emotion.",
			Steps: []string{
				"Temperature: hold something cold or splash cold water on your face.",
				"Intense exercise: move hard for a few minutes.",
				"Paced breathing: exhale longer than you inhale.",
				"Paired muscle relaxation: tense and release while breathing out.",
			},
		},
		{
			ID:      "tech-opposite-action",
			Name:    "Opposite Action",
			Kind:    models.TechniqueDBT,
			Summary: "Act opposite to an emotion's urge when the emotion does not fit the facts.",
			Steps: []string{
				"Name the emotion and its action urge.",
				"Check whether the emotion fits the facts.",
				"If it does not, do the opposite of the urge, all the way.",
			},
		},
		{
			ID:      "tech-ground-54321",
			Name:    "5-4-3-2-1 Grounding",
			Kind:    models.TechniqueDBT,
			Summary: "Anchor attention in the present using the senses.",
			Steps: []string{
				"Name 5 things you can see.",
				"Name 4 things you can feel.",
				"Name 3 things you can hear.",
				"Name 2 things you can smell.",
				"Name 1 thing you can taste.",
			},
		},
		{
			ID:      "tech-reframe",
			Name:    "Thought Reframing",
			Kind:    models.TechniqueCBT,
			Summary: "Catch an automatic thought and test a more balanced alternative.",
			Steps: []string{
				"Write down the automatic thought.",
				"Rate how strongly you believe it.",
				"List evidence for and against it.",
				"Write a balanced alternative thought.",
				"Re-rate your belief in the original thought.",
			},
		},
		{
			ID:      "tech-evidence",
			Name:    "Examining the Evidence",
			Kind:    models.TechniqueCBT,
			Summary: "Treat a distressing belief as a hypothesis and weigh the facts.",
			Steps: []string{
				"State the belief as a testable claim.",
				"Collect facts that support it.",
				"Collect facts that contradict it.",
				"Draw a conclusion from the full picture.",
			},
		},
		{
			ID:      "tech-activation",
			Name:    "Behavioral Activation",
			Kind:    models.TechniqueCBT,
			Summary: "Schedule small rewarding activities and track mood before and after.",
		},
		{
			ID:      "tech-relaxation",
			Name:    "Progressive Muscle Relaxation",
			Kind:    models.TechniqueCBT,
			Summary: "Tense and release each muscle group in turn to lower physical tension.",
		},
	}
}

// TechniqueByID looks up a catalogue technique, reporting whether it exists.
func TechniqueByID(id string) (models.Technique, bool) {
	for _, t := range Techniques() {
		if t.ID == id {
			return t, true
		}
	}
	return models.Technique{}, false
}
