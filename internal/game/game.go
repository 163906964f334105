// Package game implements the quiz progression state machine: question
// selection, answer grading, scoring, and tier promotion for one run.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/finlit/spellbook/internal/quiz"
	"github.com/finlit/spellbook/internal/scoring"
	"github.com/finlit/spellbook/internal/topics"
)

// maxRepeatRetries bounds the rejection sampling that avoids serving the
// just-answered question again. When the pool is down to one question the
// repeat is accepted rather than spinning.
const maxRepeatRetries = 5

// NewState starts a run for a topic: random starting category, easy tier,
// zeroed counters, first question loaded. If the bank has nothing for the
// topic at easy, the run begins already over. A nil rng gets a fresh
// time-seeded generator; tests pass a fixed one.
func NewState(bank *quiz.Bank, cfg scoring.Config, topic topics.Topic, rng *rand.Rand) *State {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := &State{
		RunID:             uuid.New().String(),
		Topic:             topic,
		AllowedCategories: topics.Categories(topic),
		CurrentDifficulty: quiz.Easy,
		UsedQuestionIDs:   make(map[string]bool),
		StartTime:         time.Now(),
		bank:              bank,
		cfg:               cfg,
		rng:               rng,
	}
	s.CurrentCategory = topics.RandomCategory(topic, rng)

	loadQuestion(s)
	return s
}

// SelectAnswer records an ungraded response. Silently ignored once the
// question is graded, after game over, or with no question on screen.
// The answer's shape is not validated here; grading handles mismatches.
func SelectAnswer(s *State, a quiz.Answer) {
	if s.GameOver || s.CurrentQuestion == nil || s.IsAnswered {
		return
	}
	s.SelectedAnswer = a
}

// SubmitAnswer grades the stored answer and updates the counters.
// Returns false without touching state when the submission is not
// acceptable: game over, no question, nothing selected, or already graded.
func SubmitAnswer(s *State) bool {
	if s.GameOver || s.CurrentQuestion == nil || s.IsAnswered || !s.SelectedAnswer.IsSet() {
		return false
	}

	correct := quiz.Grade(*s.CurrentQuestion, s.SelectedAnswer)
	s.IsAnswered = true
	s.LastAnswerCorrect = correct
	s.QuestionsAnswered++

	if correct {
		s.QuestionsCorrect++
		s.CorrectByDifficulty[s.CurrentDifficulty]++
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
		s.Points += s.cfg.Award(s.CurrentDifficulty, s.Streak)
	} else {
		s.Streak = 0
	}

	return true
}

// NextQuestion advances the run: checks mastery of the current tier,
// promotes or ends the run, then loads a fresh question. No-op until the
// current question has been submitted, and after game over.
func NextQuestion(s *State) {
	if s.GameOver || !s.IsAnswered {
		return
	}

	if s.Mastered(s.CurrentDifficulty) {
		next, ok := s.CurrentDifficulty.Next()
		if !ok {
			// Hard mastered: the quest is complete.
			if s.CurrentQuestion != nil {
				s.UsedQuestionIDs[s.CurrentQuestion.ID] = true
			}
			s.CurrentQuestion = nil
			s.GameOver = true
			return
		}
		s.CurrentDifficulty = next
	}

	loadQuestion(s)
}

// loadQuestion draws the next question for the run's constraints. The
// just-answered question stays in the draw pool until replaced, so the
// repeat-avoidance loop can fall back to it when the pool is exhausted.
// An empty pool ends the run gracefully.
func loadQuestion(s *State) {
	prev := s.CurrentQuestion

	q, ok := s.bank.Random(s.rng, s.AllowedCategories, s.CurrentDifficulty, s.UsedQuestionIDs)
	if !ok {
		s.CurrentQuestion = nil
		s.GameOver = true
		return
	}

	if prev != nil {
		for attempt := 0; attempt < maxRepeatRetries && q.ID == prev.ID; attempt++ {
			q, _ = s.bank.Random(s.rng, s.AllowedCategories, s.CurrentDifficulty, s.UsedQuestionIDs)
		}
		s.UsedQuestionIDs[prev.ID] = true
	}

	s.CurrentQuestion = &q
	s.CurrentCategory = q.Category
	s.SelectedAnswer = quiz.Answer{}
	s.IsAnswered = false
	s.LastAnswerCorrect = false
}
