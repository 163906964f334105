package quiz

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// The four static datasets. Category and difficulty arrive as free-form
// strings and are normalized against the closed enumerations at load.
var (
	//go:embed data/questions.json
	multipleChoiceData []byte

	//go:embed data/questions_tf.json
	trueFalseData []byte

	//go:embed data/questions_fb.json
	fillInData []byte

	//go:embed data/questions_dropdown.json
	dropdownData []byte
)

// Bank is the immutable question collection. Once loaded it never
// mutates, so a single Bank is safely shared across sessions.
type Bank struct {
	questions []Question
	rejected  int
}

// NewBank builds a bank directly from questions (used by tests and the
// bank inspection command).
func NewBank(questions []Question) *Bank {
	return &Bank{questions: questions}
}

// Load parses and validates the embedded datasets. Records that fail
// schema validation or carry an unknown category/difficulty are dropped,
// not fatal; only an unreadable dataset is an error.
func Load() (*Bank, error) {
	b := &Bank{}

	if err := b.loadMultipleChoice(multipleChoiceData); err != nil {
		return nil, fmt.Errorf("load multiple-choice dataset: %w", err)
	}
	if err := b.loadTrueFalse(trueFalseData); err != nil {
		return nil, fmt.Errorf("load true/false dataset: %w", err)
	}
	if err := b.loadFillIn(fillInData); err != nil {
		return nil, fmt.Errorf("load fill-in dataset: %w", err)
	}
	if err := b.loadDropdown(dropdownData); err != nil {
		return nil, fmt.Errorf("load dropdown dataset: %w", err)
	}

	return b, nil
}

// Len returns the number of questions accepted at load.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Rejected returns the number of records dropped at load.
func (b *Bank) Rejected() int {
	return b.rejected
}

// Questions returns all questions. Callers must not mutate the slice.
func (b *Bank) Questions() []Question {
	return b.questions
}

// Matching returns the questions whose category is in cats, whose
// difficulty matches, whose type is eligible at that tier, and whose id
// is not in exclude. A nil exclude set excludes nothing.
func (b *Bank) Matching(cats []Category, d Difficulty, exclude map[string]bool) []Question {
	allowed := make(map[QuestionType]bool)
	for _, t := range AllowedTypes(d) {
		allowed[t] = true
	}

	var out []Question
	for _, q := range b.questions {
		if q.Difficulty != d || !allowed[q.Type] || exclude[q.ID] {
			continue
		}
		for _, c := range cats {
			if q.Category == c {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

// Random draws a question uniformly in two stages: first a question type
// among the eligible types that still have questions, then a question of
// that type. Returns false if nothing matches.
func (b *Bank) Random(rng *rand.Rand, cats []Category, d Difficulty, exclude map[string]bool) (Question, bool) {
	pool := b.Matching(cats, d, exclude)
	if len(pool) == 0 {
		return Question{}, false
	}

	byType := make(map[QuestionType][]Question)
	for _, q := range pool {
		byType[q.Type] = append(byType[q.Type], q)
	}

	var available []QuestionType
	for _, t := range AllowedTypes(d) {
		if len(byType[t]) > 0 {
			available = append(available, t)
		}
	}

	ofType := byType[available[rng.IntN(len(available))]]
	return ofType[rng.IntN(len(ofType))], true
}

// CountByCategory tallies accepted questions per category.
func (b *Bank) CountByCategory() map[Category]int {
	out := make(map[Category]int)
	for _, q := range b.questions {
		out[q.Category]++
	}
	return out
}

// CountByDifficulty tallies accepted questions per tier.
func (b *Bank) CountByDifficulty() map[Difficulty]int {
	out := make(map[Difficulty]int)
	for _, q := range b.questions {
		out[q.Difficulty]++
	}
	return out
}

// CountByType tallies accepted questions per question type.
func (b *Bank) CountByType() map[QuestionType]int {
	out := make(map[QuestionType]int)
	for _, q := range b.questions {
		out[q.Type]++
	}
	return out
}

type mcRecord struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Question   string `json:"question"`
	Choices    []struct {
		Text      string `json:"text"`
		IsCorrect bool   `json:"isCorrect"`
	} `json:"choices"`
}

func (b *Bank) loadMultipleChoice(data []byte) error {
	raws, err := validRecords(data, multipleChoiceSchema, &b.rejected)
	if err != nil {
		return err
	}
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		var rec mcRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			b.rejected++
			continue
		}
		cat, d, ok := normalizeTags(rec.Category, rec.Difficulty)
		if !ok {
			b.rejected++
			continue
		}
		choices := make([]Choice, len(rec.Choices))
		for j, c := range rec.Choices {
			choices[j] = Choice{Text: c.Text, IsCorrect: c.IsCorrect}
		}
		b.questions = append(b.questions, Question{
			ID:         fmt.Sprintf("mc-%d", i),
			Type:       MultipleChoice,
			Category:   cat,
			Difficulty: d,
			Prompt:     rec.Question,
			Choices:    choices,
		})
	}
	return nil
}

type tfRecord struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Statement  string `json:"statement"`
	IsTrue     bool   `json:"isTrue"`
}

func (b *Bank) loadTrueFalse(data []byte) error {
	raws, err := validRecords(data, trueFalseSchema, &b.rejected)
	if err != nil {
		return err
	}
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		var rec tfRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			b.rejected++
			continue
		}
		cat, d, ok := normalizeTags(rec.Category, rec.Difficulty)
		if !ok {
			b.rejected++
			continue
		}
		b.questions = append(b.questions, Question{
			ID:         fmt.Sprintf("tf-%d", i),
			Type:       TrueFalse,
			Category:   cat,
			Difficulty: d,
			Prompt:     rec.Statement,
			IsTrue:     rec.IsTrue,
		})
	}
	return nil
}

type fbRecord struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

func (b *Bank) loadFillIn(data []byte) error {
	raws, err := validRecords(data, fillInSchema, &b.rejected)
	if err != nil {
		return err
	}
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		var rec fbRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			b.rejected++
			continue
		}
		cat, d, ok := normalizeTags(rec.Category, rec.Difficulty)
		if !ok {
			b.rejected++
			continue
		}
		b.questions = append(b.questions, Question{
			ID:            fmt.Sprintf("fb-%d", i),
			Type:          FillInTheBlank,
			Category:      cat,
			Difficulty:    d,
			Prompt:        rec.Question,
			CorrectAnswer: rec.Answer,
		})
	}
	return nil
}

type ddRecord struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Question   string `json:"question"`
	Blanks     []struct {
		CorrectAnswer string   `json:"correctAnswer"`
		Options       []string `json:"options"`
	} `json:"blanks"`
}

func (b *Bank) loadDropdown(data []byte) error {
	raws, err := validRecords(data, dropdownSchema, &b.rejected)
	if err != nil {
		return err
	}
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		var rec ddRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			b.rejected++
			continue
		}
		cat, d, ok := normalizeTags(rec.Category, rec.Difficulty)
		if !ok {
			b.rejected++
			continue
		}
		blanks := make([]Blank, len(rec.Blanks))
		for j, bl := range rec.Blanks {
			blanks[j] = Blank{CorrectAnswer: bl.CorrectAnswer, Options: bl.Options}
		}
		b.questions = append(b.questions, Question{
			ID:         fmt.Sprintf("dd-%d", i),
			Type:       Dropdown,
			Category:   cat,
			Difficulty: d,
			Prompt:     rec.Question,
			Blanks:     blanks,
		})
	}
	return nil
}

func normalizeTags(category, difficulty string) (Category, Difficulty, bool) {
	cat, ok := ParseCategory(category)
	if !ok {
		return "", 0, false
	}
	d, ok := ParseDifficulty(difficulty)
	if !ok {
		return "", 0, false
	}
	return cat, d, true
}

// recordSchema pairs a schema name with its JSON definition.
type recordSchema struct {
	Name       string
	Definition map[string]any
}

// compile builds the jsonschema validator for a record schema.
func (rs *recordSchema) compile() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(rs.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", rs.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}

// validRecords unmarshals a dataset and returns the records that pass
// schema validation, bumping rejected for each dropped record. Dropped
// slots stay nil so dataset indices (and thus question IDs) are stable.
func validRecords(data []byte, rs *recordSchema, rejected *int) ([]json.RawMessage, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	compiled, err := rs.compile()
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", rs.Name, err)
	}

	out := make([]json.RawMessage, len(raws))
	for i, raw := range raws {
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			*rejected++
			continue
		}
		if err := compiled.Validate(parsed); err != nil {
			*rejected++
			continue
		}
		out[i] = raw
	}
	return out, nil
}
