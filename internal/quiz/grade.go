package quiz

import "strings"

// Grade evaluates an answer against a question. It is total: malformed
// or mismatched answers grade as incorrect, never as an error.
func Grade(q Question, a Answer) bool {
	switch q.Type {
	case MultipleChoice:
		if a.Kind != AnswerChoice {
			return false
		}
		if a.Index < 0 || a.Index >= len(q.Choices) {
			return false
		}
		return q.Choices[a.Index].IsCorrect

	case TrueFalse:
		v, ok := boolFromAnswer(a)
		if !ok {
			return false
		}
		return v == q.IsTrue

	case FillInTheBlank:
		if a.Kind != AnswerText {
			return false
		}
		return normalize(a.Text) == normalize(q.CorrectAnswer)

	case Dropdown:
		if a.Kind != AnswerBlanks {
			return false
		}
		if len(a.Blanks) != len(q.Blanks) {
			return false
		}
		for i, b := range q.Blanks {
			if normalize(a.Blanks[i]) != normalize(b.CorrectAnswer) {
				return false
			}
		}
		return true
	}

	return false
}

// boolFromAnswer coerces the answer variants a true/false response may
// arrive in: an explicit bool, a 0/1 index, or the text "true"/"false".
func boolFromAnswer(a Answer) (bool, bool) {
	switch a.Kind {
	case AnswerBool:
		return a.Bool, true
	case AnswerChoice:
		switch a.Index {
		case 1:
			return true, true
		case 0:
			return false, true
		}
	case AnswerText:
		switch normalize(a.Text) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
