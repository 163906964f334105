package topics

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/finlit/spellbook/internal/quiz"
)

// Topic is a player-facing grouping of question categories.
type Topic string

const (
	Income         Topic = "income"
	Budgeting      Topic = "budgeting"
	Saving         Topic = "saving"
	Investing      Topic = "investing"
	DebtManagement Topic = "debt-management"
	RiskManagement Topic = "risk-management"
)

// All returns the six topics in display order.
func All() []Topic {
	return []Topic{
		Income,
		Budgeting,
		Saving,
		Investing,
		DebtManagement,
		RiskManagement,
	}
}

// Label returns the display name for a topic.
func Label(t Topic) string {
	switch t {
	case Income:
		return "Income"
	case Budgeting:
		return "Budgeting"
	case Saving:
		return "Saving"
	case Investing:
		return "Investing"
	case DebtManagement:
		return "Debt Management"
	case RiskManagement:
		return "Risk Management"
	default:
		return string(t)
	}
}

// Parse resolves a user-supplied topic name. The enumeration is closed:
// anything outside the six topics is an error, never a fallback.
func Parse(raw string) (Topic, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "-")
	for _, t := range All() {
		if s == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown topic %q", raw)
}

// Categories returns the ordered category set a topic draws from.
// Every topic maps to a non-empty set.
func Categories(t Topic) []quiz.Category {
	switch t {
	case Income:
		return []quiz.Category{quiz.CategoryIncome, quiz.CategoryBanking, quiz.CategoryTaxes}
	case Budgeting:
		return []quiz.Category{quiz.CategoryBudgeting}
	case Saving:
		return []quiz.Category{quiz.CategorySaving}
	case Investing:
		return []quiz.Category{quiz.CategoryInvesting}
	case DebtManagement:
		return []quiz.Category{quiz.CategoryDebt, quiz.CategoryCredit}
	case RiskManagement:
		return []quiz.Category{quiz.CategoryRisk, quiz.CategoryInsurance, quiz.CategoryFraud}
	default:
		return nil
	}
}

// RandomCategory picks uniformly among the topic's categories.
func RandomCategory(t Topic, rng *rand.Rand) quiz.Category {
	cats := Categories(t)
	return cats[rng.IntN(len(cats))]
}
