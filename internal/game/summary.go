package game

import (
	"time"

	"github.com/finlit/spellbook/internal/quiz"
	"github.com/finlit/spellbook/internal/topics"
)

// Summary is the end-of-quest recap shown when a run finishes.
type Summary struct {
	Topic             topics.Topic
	Points            int
	QuestionsAnswered int
	QuestionsCorrect  int
	Accuracy          float64
	BestStreak        int
	MasteredTiers     []quiz.Difficulty
	Duration          time.Duration
}

// BuildSummary captures a run's final stats.
func BuildSummary(s *State) Summary {
	sum := Summary{
		Topic:             s.Topic,
		Points:            s.Points,
		QuestionsAnswered: s.QuestionsAnswered,
		QuestionsCorrect:  s.QuestionsCorrect,
		BestStreak:        s.BestStreak,
		Duration:          time.Since(s.StartTime),
	}
	if s.QuestionsAnswered > 0 {
		sum.Accuracy = float64(s.QuestionsCorrect) / float64(s.QuestionsAnswered)
	}
	for _, d := range quiz.AllDifficulties() {
		if s.Mastered(d) {
			sum.MasteredTiers = append(sum.MasteredTiers, d)
		}
	}
	return sum
}
