// Package scoring holds the point and mastery policy. Everything here is
// a pure, total function over the closed difficulty enumeration.
package scoring

import (
	"fmt"

	"github.com/finlit/spellbook/internal/quiz"
)

// OpenEndedThreshold marks a tier that can never be mastered through
// normal play. Displayed as an infinity symbol.
const OpenEndedThreshold = 9999

// maxStreakStacks caps the streak bonus multiplier.
const maxStreakStacks = 5

// Config holds the tunable scoring and mastery constants.
type Config struct {
	// BasePoints per correct answer, indexed by difficulty. Must be
	// strictly increasing with difficulty.
	BasePoints [quiz.NumDifficulties]int

	// StreakBonusUnit is the points added per streak stack.
	StreakBonusUnit int

	// MasteryThresholds is the correct-answer count that completes each
	// tier. OpenEndedThreshold makes a tier unmasterable.
	MasteryThresholds [quiz.NumDifficulties]int
}

// DefaultConfig returns the standard scoring rules: 10/20/30 base points,
// 5-point streak stacks, five correct answers to master every tier.
// Hard has a finite threshold, so mastering it ends the game.
func DefaultConfig() Config {
	return Config{
		BasePoints:        [quiz.NumDifficulties]int{10, 20, 30},
		StreakBonusUnit:   5,
		MasteryThresholds: [quiz.NumDifficulties]int{5, 5, 5},
	}
}

// Validate checks the config invariants.
func (c Config) Validate() error {
	if c.BasePoints[quiz.Easy] <= 0 {
		return fmt.Errorf("base points must be positive, got %d", c.BasePoints[quiz.Easy])
	}
	for d := quiz.Medium; d <= quiz.Hard; d++ {
		if c.BasePoints[d] <= c.BasePoints[d-1] {
			return fmt.Errorf("base points must increase with difficulty: %s=%d, %s=%d",
				(d - 1).Label(), c.BasePoints[d-1], d.Label(), c.BasePoints[d])
		}
	}
	if c.StreakBonusUnit < 0 {
		return fmt.Errorf("streak bonus unit must be non-negative, got %d", c.StreakBonusUnit)
	}
	for _, d := range quiz.AllDifficulties() {
		if c.MasteryThresholds[d] <= 0 {
			return fmt.Errorf("%s mastery threshold must be positive, got %d",
				d.Label(), c.MasteryThresholds[d])
		}
	}
	return nil
}

// Award computes the points for a correct answer. streak is the
// consecutive-correct count including this answer, so the first correct
// answer of a streak earns no bonus.
func (c Config) Award(d quiz.Difficulty, streak int) int {
	return c.BasePoints[d] + StreakBonus(streak, c.StreakBonusUnit)
}

// Threshold returns the mastery threshold for a tier.
func (c Config) Threshold(d quiz.Difficulty) int {
	return c.MasteryThresholds[d]
}

// OpenEnded reports whether a tier is configured as unmasterable.
func (c Config) OpenEnded(d quiz.Difficulty) bool {
	return c.MasteryThresholds[d] >= OpenEndedThreshold
}

// StreakBonus returns the bonus for the given post-increment streak,
// capped at maxStreakStacks stacks.
func StreakBonus(streak, unit int) int {
	stacks := streak - 1
	if stacks < 0 {
		stacks = 0
	}
	if stacks > maxStreakStacks {
		stacks = maxStreakStacks
	}
	return stacks * unit
}

// Progress returns normalized mastery progress in [0, 1].
func Progress(correct, threshold int) float64 {
	if threshold <= 0 {
		return 0
	}
	p := float64(correct) / float64(threshold)
	if p > 1 {
		return 1
	}
	return p
}

// FormatThreshold renders a threshold for display, using the infinity
// symbol for open-ended tiers.
func FormatThreshold(threshold int) string {
	if threshold >= OpenEndedThreshold {
		return "∞"
	}
	return fmt.Sprintf("%d", threshold)
}
