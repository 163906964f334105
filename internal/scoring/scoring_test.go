package scoring

import (
	"testing"

	"github.com/finlit/spellbook/internal/quiz"
)

func TestAward_ScalesWithDifficultyAndStreak(t *testing.T) {
	c := DefaultConfig()

	tests := []struct {
		d      quiz.Difficulty
		streak int
		want   int
	}{
		{quiz.Easy, 1, 10},   // first correct: no bonus
		{quiz.Easy, 2, 15},   // one stack
		{quiz.Easy, 3, 20},   // two stacks
		{quiz.Easy, 6, 35},   // five stacks
		{quiz.Easy, 7, 35},   // bonus caps at five stacks
		{quiz.Easy, 100, 35}, // still capped
		{quiz.Medium, 1, 20}, // base scales with tier
		{quiz.Medium, 4, 35},
		{quiz.Hard, 1, 30},
		{quiz.Hard, 10, 55},
	}

	for _, tt := range tests {
		if got := c.Award(tt.d, tt.streak); got != tt.want {
			t.Errorf("Award(%s, streak=%d) = %d, want %d", tt.d.Label(), tt.streak, got, tt.want)
		}
	}
}

func TestAward_MonotonicInDifficulty(t *testing.T) {
	c := DefaultConfig()
	if !(c.BasePoints[quiz.Easy] < c.BasePoints[quiz.Medium] &&
		c.BasePoints[quiz.Medium] < c.BasePoints[quiz.Hard]) {
		t.Errorf("base points must strictly increase with difficulty: %v", c.BasePoints)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		correct, threshold int
		want               float64
	}{
		{0, 5, 0},
		{2, 5, 0.4},
		{5, 5, 1},
		{9, 5, 1}, // clamped
		{3, 0, 0}, // degenerate threshold
	}

	for _, tt := range tests {
		if got := Progress(tt.correct, tt.threshold); got != tt.want {
			t.Errorf("Progress(%d, %d) = %v, want %v", tt.correct, tt.threshold, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	good := DefaultConfig()
	if err := good.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	flat := DefaultConfig()
	flat.BasePoints = [quiz.NumDifficulties]int{10, 10, 30}
	if err := flat.Validate(); err == nil {
		t.Error("non-increasing base points should fail validation")
	}

	zero := DefaultConfig()
	zero.MasteryThresholds[quiz.Medium] = 0
	if err := zero.Validate(); err == nil {
		t.Error("zero mastery threshold should fail validation")
	}

	open := DefaultConfig()
	open.MasteryThresholds[quiz.Hard] = OpenEndedThreshold
	if err := open.Validate(); err != nil {
		t.Errorf("open-ended hard tier is a legal configuration: %v", err)
	}
	if !open.OpenEnded(quiz.Hard) {
		t.Error("9999 threshold should report as open-ended")
	}
}

func TestFormatThreshold(t *testing.T) {
	if got := FormatThreshold(5); got != "5" {
		t.Errorf("FormatThreshold(5) = %q, want \"5\"", got)
	}
	if got := FormatThreshold(OpenEndedThreshold); got != "∞" {
		t.Errorf("FormatThreshold(open-ended) = %q, want the infinity symbol", got)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvBasePointsHard, "50")
	t.Setenv(EnvMasteryHard, "9999")

	c, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if c.BasePoints[quiz.Hard] != 50 {
		t.Errorf("hard base points = %d, want 50", c.BasePoints[quiz.Hard])
	}
	if !c.OpenEnded(quiz.Hard) {
		t.Error("hard tier should be open-ended after override")
	}
	if c.BasePoints[quiz.Easy] != 10 {
		t.Errorf("easy base points = %d, want default 10", c.BasePoints[quiz.Easy])
	}
}

func TestFromEnv_RejectsGarbage(t *testing.T) {
	t.Setenv(EnvStreakBonusUnit, "lots")
	if _, err := FromEnv(); err == nil {
		t.Error("non-numeric override should fail")
	}
}
