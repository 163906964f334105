package quiz

import "strings"

// Category is a domain tag carried by every question.
type Category string

const (
	CategoryIncome    Category = "income"
	CategoryBanking   Category = "banking"
	CategoryTaxes     Category = "taxes"
	CategoryBudgeting Category = "budgeting"
	CategorySaving    Category = "saving"
	CategoryInvesting Category = "investing"
	CategoryDebt      Category = "debt"
	CategoryCredit    Category = "credit"
	CategoryRisk      Category = "risk-management"
	CategoryInsurance Category = "insurance"
	CategoryFraud     Category = "fraud"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryIncome,
		CategoryBanking,
		CategoryTaxes,
		CategoryBudgeting,
		CategorySaving,
		CategoryInvesting,
		CategoryDebt,
		CategoryCredit,
		CategoryRisk,
		CategoryInsurance,
		CategoryFraud,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryIncome:
		return "Income"
	case CategoryBanking:
		return "Banking"
	case CategoryTaxes:
		return "Taxes"
	case CategoryBudgeting:
		return "Budgeting"
	case CategorySaving:
		return "Saving"
	case CategoryInvesting:
		return "Investing"
	case CategoryDebt:
		return "Debt"
	case CategoryCredit:
		return "Credit"
	case CategoryRisk:
		return "Risk Management"
	case CategoryInsurance:
		return "Insurance"
	case CategoryFraud:
		return "Fraud"
	default:
		return string(c)
	}
}

// categoryAliases maps dataset spellings onto canonical categories.
var categoryAliases = map[string]Category{
	"debt management": CategoryDebt,
	"risk management": CategoryRisk,
}

// ParseCategory normalizes a free-form dataset string to a Category.
// Returns false for anything outside the closed set.
func ParseCategory(raw string) (Category, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if c, ok := categoryAliases[s]; ok {
		return c, true
	}
	for _, c := range AllCategories() {
		if s == string(c) {
			return c, true
		}
	}
	return "", false
}

// Difficulty is a question's tier. Ordering matters: promotion walks
// Easy -> Medium -> Hard.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// NumDifficulties is the size of per-difficulty tally arrays.
const NumDifficulties = 3

// AllDifficulties returns the tiers in promotion order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Label returns the display label for a difficulty.
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Next returns the next tier, or the same tier and false at the top.
func (d Difficulty) Next() (Difficulty, bool) {
	switch d {
	case Easy:
		return Medium, true
	case Medium:
		return Hard, true
	default:
		return d, false
	}
}

// ParseDifficulty normalizes a free-form dataset string to a Difficulty.
func ParseDifficulty(raw string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	}
	return 0, false
}

// QuestionType tags the question variant.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	TrueFalse      QuestionType = "true-false"
	FillInTheBlank QuestionType = "fill-in-the-blank"
	Dropdown       QuestionType = "dropdown"
)

// AllowedTypes returns the question types eligible at a tier. Hard swaps
// the dropdown fill-ins for free-response blanks.
func AllowedTypes(d Difficulty) []QuestionType {
	if d == Hard {
		return []QuestionType{MultipleChoice, TrueFalse, FillInTheBlank}
	}
	return []QuestionType{MultipleChoice, TrueFalse, Dropdown}
}

// Choice is one option of a multiple-choice question.
type Choice struct {
	Text      string
	IsCorrect bool
}

// Blank is one slot of a dropdown question: the answer plus the option
// set shown to the player.
type Blank struct {
	CorrectAnswer string
	Options       []string
}

// Question is the tagged variant stored in the bank. Type selects which
// payload fields are meaningful; the rest stay zero.
type Question struct {
	ID         string
	Type       QuestionType
	Category   Category
	Difficulty Difficulty

	// Prompt is the question text, or the statement for true/false.
	Prompt string

	Choices       []Choice // MultipleChoice
	IsTrue        bool     // TrueFalse
	CorrectAnswer string   // FillInTheBlank
	Blanks        []Blank  // Dropdown
}
