package quiz

// AnswerKind tags the shape of a submitted answer.
type AnswerKind int

const (
	AnswerNone   AnswerKind = iota // nothing selected yet
	AnswerChoice                   // a choice index (also 0/1 for true/false)
	AnswerBool                     // an explicit boolean
	AnswerText                     // free text
	AnswerBlanks                   // ordered per-blank strings
)

// Answer is the player's ungraded response. The zero value means no
// answer has been selected.
type Answer struct {
	Kind   AnswerKind
	Index  int
	Bool   bool
	Text   string
	Blanks []string
}

// ChoiceAnswer builds an answer carrying a choice index.
func ChoiceAnswer(index int) Answer {
	return Answer{Kind: AnswerChoice, Index: index}
}

// BoolAnswer builds an answer carrying a boolean.
func BoolAnswer(v bool) Answer {
	return Answer{Kind: AnswerBool, Bool: v}
}

// TextAnswer builds an answer carrying free text.
func TextAnswer(text string) Answer {
	return Answer{Kind: AnswerText, Text: text}
}

// BlanksAnswer builds an answer carrying per-blank selections.
func BlanksAnswer(values ...string) Answer {
	return Answer{Kind: AnswerBlanks, Blanks: values}
}

// IsSet reports whether the player has selected anything.
func (a Answer) IsSet() bool {
	return a.Kind != AnswerNone
}
