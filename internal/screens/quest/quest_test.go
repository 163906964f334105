package quest

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/finlit/spellbook/internal/quiz"
	"github.com/finlit/spellbook/internal/router"
	"github.com/finlit/spellbook/internal/scoring"
	"github.com/finlit/spellbook/internal/topics"
)

func testBank(n int) *quiz.Bank {
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{
			ID:         fmt.Sprintf("mc-%d", i),
			Type:       quiz.MultipleChoice,
			Category:   quiz.CategorySaving,
			Difficulty: quiz.Easy,
			Prompt:     "Which jar grows fastest?",
			Choices: []quiz.Choice{
				{Text: "Under the bed", IsCorrect: false},
				{Text: "A savings account", IsCorrect: true},
			},
		}
	}
	return quiz.NewBank(qs)
}

func testConfig() scoring.Config {
	c := scoring.DefaultConfig()
	c.MasteryThresholds = [quiz.NumDifficulties]int{100, 100, 100}
	return c
}

func newTestQuest(n int) *QuestScreen {
	return New(testBank(n), testConfig(), topics.Saving, rand.New(rand.NewPCG(5, 9)))
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestQuestScreen_Title(t *testing.T) {
	q := newTestQuest(5)
	if q.Title() != "Saving Quest" {
		t.Errorf("Title = %q, want %q", q.Title(), "Saving Quest")
	}
}

func TestQuestScreen_SubmitAndAdvance(t *testing.T) {
	q := newTestQuest(5)

	// Move the cursor to the correct option and cast.
	q.Update(key(tea.KeyDown))
	q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !q.state.IsAnswered {
		t.Fatal("enter should submit the selected answer")
	}
	if !q.state.LastAnswerCorrect {
		t.Error("the second option is the correct one")
	}
	if q.state.Points == 0 {
		t.Error("a correct answer should award gold")
	}

	view := q.View(80, 24)
	if !strings.Contains(view, "Correct!") {
		t.Error("feedback view should celebrate a correct answer")
	}

	// Any key advances to the next question.
	q.Update(key('x'))
	if q.state.IsAnswered {
		t.Error("advancing should load a fresh, unanswered question")
	}
	if q.state.QuestionsAnswered != 1 {
		t.Errorf("QuestionsAnswered = %d, want 1", q.state.QuestionsAnswered)
	}
}

func TestQuestScreen_WrongAnswerShowsCorrection(t *testing.T) {
	q := newTestQuest(5)

	// Cursor starts on the wrong option.
	q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if q.state.LastAnswerCorrect {
		t.Fatal("the first option is wrong")
	}
	view := q.View(80, 24)
	if !strings.Contains(view, "Not quite") {
		t.Error("feedback view should show the miss")
	}
	if !strings.Contains(view, "A savings account") {
		t.Error("feedback view should reveal the correct answer")
	}
}

func TestQuestScreen_EmptyBankFinishesImmediately(t *testing.T) {
	q := New(quiz.NewBank(nil), testConfig(), topics.Saving, rand.New(rand.NewPCG(1, 2)))

	cmd := q.Init()
	if cmd == nil {
		t.Fatal("an empty bank should end the quest on init")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected a replace to the summary screen")
	}
}

func TestQuestScreen_QuitConfirm(t *testing.T) {
	q := newTestQuest(5)

	q.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !q.confirmingQuit {
		t.Fatal("esc should open the quit confirmation")
	}
	if !strings.Contains(q.View(80, 24), "End this quest early?") {
		t.Error("quit confirmation should be visible")
	}

	// N keeps playing.
	q.Update(key('n'))
	if q.confirmingQuit {
		t.Error("n should dismiss the confirmation")
	}

	// Y ends the quest.
	q.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := q.Update(key('y'))
	if cmd == nil {
		t.Fatal("y should end the quest")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected a replace to the summary screen")
	}
}

func TestQuestScreen_StatsFeedHeader(t *testing.T) {
	q := newTestQuest(5)

	q.Update(key(tea.KeyDown))
	q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	points, streak := q.Stats()
	if points != 10 || streak != 1 {
		t.Errorf("Stats() = (%d, %d), want (10, 1)", points, streak)
	}
}

func TestQuestScreen_NumberKeySelects(t *testing.T) {
	q := newTestQuest(5)

	q.Update(key('2'))
	q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !q.state.LastAnswerCorrect {
		t.Error("pressing 2 should select the second option")
	}
}
