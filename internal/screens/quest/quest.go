package quest

import (
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"

	"github.com/finlit/spellbook/internal/game"
	"github.com/finlit/spellbook/internal/quiz"
	"github.com/finlit/spellbook/internal/router"
	"github.com/finlit/spellbook/internal/scoring"
	"github.com/finlit/spellbook/internal/screen"
	"github.com/finlit/spellbook/internal/screens/summary"
	"github.com/finlit/spellbook/internal/topics"
	"github.com/finlit/spellbook/internal/ui/components"
	"github.com/finlit/spellbook/internal/ui/layout"
)

// QuestScreen runs one quiz quest: it owns the run state and translates
// key presses into select, submit, and advance operations.
type QuestScreen struct {
	state   *game.State
	choices components.ChoiceList // multiple choice and true/false
	input   components.TextInput  // fill in the blank

	// dropdown questions: one selected option per blank
	blankSel []int
	blankCur int

	lastAward      int
	confirmingQuit bool
}

var _ screen.Screen = (*QuestScreen)(nil)
var _ screen.KeyHintProvider = (*QuestScreen)(nil)
var _ screen.StatsProvider = (*QuestScreen)(nil)

// New starts a quest for the given topic. A nil rng gets a time-seeded one.
func New(bank *quiz.Bank, cfg scoring.Config, topic topics.Topic, rng *rand.Rand) *QuestScreen {
	q := &QuestScreen{
		state: game.NewState(bank, cfg, topic, rng),
	}
	q.syncInputs()
	return q
}

func (q *QuestScreen) Init() tea.Cmd {
	if q.state.GameOver {
		return q.finish()
	}
	if current := q.state.CurrentQuestion; current != nil && current.Type == quiz.FillInTheBlank {
		return q.input.Init()
	}
	return nil
}

func (q *QuestScreen) Title() string {
	return topics.Label(q.state.Topic) + " Quest"
}

// Stats feeds the header's points and streak display.
func (q *QuestScreen) Stats() (points, streak int) {
	return q.state.Points, q.state.Streak
}

func (q *QuestScreen) KeyHints() []layout.KeyHint {
	if q.confirmingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End quest"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if q.state.IsAnswered {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Cast"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (q *QuestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return q.handleKey(kmsg)
	}

	// Forward non-key messages to the text input (cursor blink etc).
	if current := q.state.CurrentQuestion; current != nil && current.Type == quiz.FillInTheBlank && !q.state.IsAnswered {
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}

	return q, nil
}

func (q *QuestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.confirmingQuit {
		switch key {
		case "y", "Y":
			q.confirmingQuit = false
			return q, q.finish()
		case "n", "N", "esc":
			q.confirmingQuit = false
		}
		return q, nil
	}

	if q.state.GameOver {
		return q, q.finish()
	}

	// Feedback showing: any key advances.
	if q.state.IsAnswered {
		game.NextQuestion(q.state)
		if q.state.GameOver {
			return q, q.finish()
		}
		q.syncInputs()
		if q.state.CurrentQuestion.Type == quiz.FillInTheBlank {
			return q, q.input.Init()
		}
		return q, nil
	}

	switch key {
	case "esc":
		q.confirmingQuit = true
		return q, nil
	case "enter":
		q.submit()
		return q, nil
	}

	current := q.state.CurrentQuestion
	if current == nil {
		return q, nil
	}

	switch current.Type {
	case quiz.MultipleChoice, quiz.TrueFalse:
		q.choices, _ = q.choices.Update(msg)

	case quiz.Dropdown:
		q.handleDropdownKey(key, current)

	case quiz.FillInTheBlank:
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}

	return q, nil
}

// handleDropdownKey moves between blanks with left/right and cycles the
// active blank's options with up/down.
func (q *QuestScreen) handleDropdownKey(key string, current *quiz.Question) {
	switch key {
	case "left", "shift+tab":
		if q.blankCur > 0 {
			q.blankCur--
		}
	case "right", "tab":
		if q.blankCur < len(current.Blanks)-1 {
			q.blankCur++
		}
	case "up", "k":
		n := len(current.Blanks[q.blankCur].Options)
		if n > 0 {
			q.blankSel[q.blankCur] = (q.blankSel[q.blankCur] + n - 1) % n
		}
	case "down", "j":
		n := len(current.Blanks[q.blankCur].Options)
		if n > 0 {
			q.blankSel[q.blankCur] = (q.blankSel[q.blankCur] + 1) % n
		}
	}
}

// submit locks in the answer built from the active input widget.
func (q *QuestScreen) submit() {
	current := q.state.CurrentQuestion
	if current == nil {
		return
	}

	var a quiz.Answer
	switch current.Type {
	case quiz.MultipleChoice:
		a = quiz.ChoiceAnswer(q.choices.Selected)
	case quiz.TrueFalse:
		a = quiz.BoolAnswer(q.choices.Selected == 0)
	case quiz.FillInTheBlank:
		if q.input.Value() == "" {
			return
		}
		a = quiz.TextAnswer(q.input.Value())
	case quiz.Dropdown:
		values := make([]string, len(current.Blanks))
		for i, b := range current.Blanks {
			values[i] = b.Options[q.blankSel[i]]
		}
		a = quiz.BlanksAnswer(values...)
	}

	before := q.state.Points
	game.SelectAnswer(q.state, a)
	if !game.SubmitAnswer(q.state) {
		return
	}
	q.lastAward = q.state.Points - before

	switch current.Type {
	case quiz.MultipleChoice, quiz.TrueFalse:
		q.choices.Locked = true
	case quiz.FillInTheBlank:
		q.input.Submit(q.state.LastAnswerCorrect)
	}
}

// syncInputs rebuilds the input widgets for the freshly loaded question.
func (q *QuestScreen) syncInputs() {
	current := q.state.CurrentQuestion
	if current == nil {
		return
	}

	q.lastAward = 0
	q.blankSel = nil
	q.blankCur = 0

	switch current.Type {
	case quiz.MultipleChoice:
		options := make([]string, len(current.Choices))
		for i, c := range current.Choices {
			options[i] = c.Text
		}
		q.choices = components.NewChoiceList(options)

	case quiz.TrueFalse:
		q.choices = components.NewChoiceList([]string{"True", "False"})

	case quiz.FillInTheBlank:
		q.input = components.NewTextInput("Whisper the missing words...", 60)

	case quiz.Dropdown:
		q.blankSel = make([]int, len(current.Blanks))
	}
}

// finish swaps this screen for the end-of-quest summary.
func (q *QuestScreen) finish() tea.Cmd {
	sum := game.BuildSummary(q.state)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}
