package scoring

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/finlit/spellbook/internal/quiz"
)

// Environment variable names for scoring overrides.
const (
	EnvBasePointsEasy   = "SPELLBOOK_BASE_POINTS_EASY"
	EnvBasePointsMedium = "SPELLBOOK_BASE_POINTS_MEDIUM"
	EnvBasePointsHard   = "SPELLBOOK_BASE_POINTS_HARD"
	EnvStreakBonusUnit  = "SPELLBOOK_STREAK_BONUS"
	EnvMasteryEasy      = "SPELLBOOK_MASTERY_EASY"
	EnvMasteryMedium    = "SPELLBOOK_MASTERY_MEDIUM"
	EnvMasteryHard      = "SPELLBOOK_MASTERY_HARD"
)

// FromEnv returns DefaultConfig with any SPELLBOOK_* overrides applied.
// A .env file in the working directory is loaded first if present.
// Set a mastery threshold to 9999 or above to make that tier open-ended.
func FromEnv() (Config, error) {
	_ = godotenv.Load() // a missing .env file is not an error

	c := DefaultConfig()

	overrides := []struct {
		key string
		dst *int
	}{
		{EnvBasePointsEasy, &c.BasePoints[quiz.Easy]},
		{EnvBasePointsMedium, &c.BasePoints[quiz.Medium]},
		{EnvBasePointsHard, &c.BasePoints[quiz.Hard]},
		{EnvStreakBonusUnit, &c.StreakBonusUnit},
		{EnvMasteryEasy, &c.MasteryThresholds[quiz.Easy]},
		{EnvMasteryMedium, &c.MasteryThresholds[quiz.Medium]},
		{EnvMasteryHard, &c.MasteryThresholds[quiz.Hard]},
	}
	for _, o := range overrides {
		raw := os.Getenv(o.key)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s=%q: %w", o.key, raw, err)
		}
		*o.dst = v
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("scoring config: %w", err)
	}
	return c, nil
}
