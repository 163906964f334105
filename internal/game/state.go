package game

import (
	"math/rand/v2"
	"time"

	"github.com/finlit/spellbook/internal/quiz"
	"github.com/finlit/spellbook/internal/scoring"
	"github.com/finlit/spellbook/internal/topics"
)

// State tracks one quest run. It is owned exclusively by the caller and
// mutated only through the operations in this package; nothing here is
// process-wide, so concurrent runs never interfere.
type State struct {
	// RunID is the UUID for this run.
	RunID string

	// Topic is the chosen topic, fixed for the run.
	Topic topics.Topic

	// AllowedCategories is derived from Topic at creation, fixed for the run.
	AllowedCategories []quiz.Category

	// CurrentCategory is the category of the question being shown.
	CurrentCategory quiz.Category

	// CurrentDifficulty is the active tier; promotion walks easy to hard.
	CurrentDifficulty quiz.Difficulty

	// CurrentQuestion is the active question, or nil once the run ends.
	CurrentQuestion *quiz.Question

	// SelectedAnswer is the ungraded response; zero value means none.
	SelectedAnswer quiz.Answer

	// IsAnswered is true once the current question has been graded.
	IsAnswered bool

	// LastAnswerCorrect is the grading result of the latest submission.
	LastAnswerCorrect bool

	// Points is the cumulative score. It never decreases.
	Points int

	// Streak counts consecutive correct answers; any miss resets it to 0.
	Streak int

	// BestStreak is the longest streak reached this run.
	BestStreak int

	// QuestionsAnswered and QuestionsCorrect are run totals.
	QuestionsAnswered int
	QuestionsCorrect  int

	// CorrectByDifficulty tallies correct answers per tier. Counts are
	// kept through promotion.
	CorrectByDifficulty [quiz.NumDifficulties]int

	// UsedQuestionIDs holds ids already retired this run. The active
	// question joins the set only when it is replaced, so an almost-empty
	// pool can re-serve it instead of spinning.
	UsedQuestionIDs map[string]bool

	// GameOver is terminal: no further loads or submissions are accepted.
	GameOver bool

	// StartTime is when the run began.
	StartTime time.Time

	bank *quiz.Bank
	cfg  scoring.Config
	rng  *rand.Rand
}

// Progress returns the normalized mastery progress for a tier.
func (s *State) Progress(d quiz.Difficulty) float64 {
	return scoring.Progress(s.CorrectByDifficulty[d], s.cfg.Threshold(d))
}

// MasteryPair returns the correct count and the needed count for a tier,
// for current/needed display.
func (s *State) MasteryPair(d quiz.Difficulty) (correct, needed int) {
	return s.CorrectByDifficulty[d], s.cfg.Threshold(d)
}

// Mastered reports whether a tier's threshold has been reached.
// Open-ended tiers are never mastered.
func (s *State) Mastered(d quiz.Difficulty) bool {
	return !s.cfg.OpenEnded(d) && s.CorrectByDifficulty[d] >= s.cfg.Threshold(d)
}

// Config returns the scoring rules the run was created with.
func (s *State) Config() scoring.Config {
	return s.cfg
}
