package quiz

import (
	"math/rand/v2"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestLoad_EmbeddedDatasets(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if b.Len() == 0 {
		t.Fatal("expected a non-empty bank")
	}
	if b.Rejected() != 0 {
		t.Errorf("embedded datasets should be clean, got %d rejected records", b.Rejected())
	}

	// Every question carries a canonical category and a valid tier.
	seen := make(map[string]bool)
	for _, q := range b.Questions() {
		if seen[q.ID] {
			t.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if _, ok := ParseCategory(string(q.Category)); !ok {
			t.Errorf("question %s has non-canonical category %q", q.ID, q.Category)
		}
		if q.Difficulty < Easy || q.Difficulty > Hard {
			t.Errorf("question %s has invalid difficulty %v", q.ID, q.Difficulty)
		}
	}

	// All four types must be present.
	byType := b.CountByType()
	for _, qt := range []QuestionType{MultipleChoice, TrueFalse, FillInTheBlank, Dropdown} {
		if byType[qt] == 0 {
			t.Errorf("no questions of type %s", qt)
		}
	}
}

func TestLoad_DropsMalformedRecords(t *testing.T) {
	b := &Bank{}

	// Second record misses "choices", third has an unknown category,
	// fourth has an unknown difficulty.
	data := []byte(`[
		{"category": "saving", "difficulty": "easy", "question": "ok?",
		 "choices": [{"text": "yes", "isCorrect": true}, {"text": "no", "isCorrect": false}]},
		{"category": "saving", "difficulty": "easy", "question": "broken?"},
		{"category": "cryptocurrency", "difficulty": "easy", "question": "odd?",
		 "choices": [{"text": "yes", "isCorrect": true}, {"text": "no", "isCorrect": false}]},
		{"category": "saving", "difficulty": "extreme", "question": "odd?",
		 "choices": [{"text": "yes", "isCorrect": true}, {"text": "no", "isCorrect": false}]}
	]`)

	if err := b.loadMultipleChoice(data); err != nil {
		t.Fatalf("loadMultipleChoice error: %v", err)
	}
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
	if b.Rejected() != 3 {
		t.Errorf("Rejected = %d, want 3", b.Rejected())
	}
	if b.Len() == 1 && b.questions[0].ID != "mc-0" {
		t.Errorf("surviving question id = %q, want mc-0 (dataset indices stay stable)", b.questions[0].ID)
	}
}

func TestLoad_UnreadableDatasetFails(t *testing.T) {
	b := &Bank{}
	if err := b.loadTrueFalse([]byte("not json")); err == nil {
		t.Error("expected an error for an unreadable dataset")
	}
}

func TestMatching_TypeGating(t *testing.T) {
	b := NewBank([]Question{
		{ID: "dd-1", Type: Dropdown, Category: CategorySaving, Difficulty: Hard,
			Blanks: []Blank{{CorrectAnswer: "x", Options: []string{"x", "y"}}}},
		{ID: "fb-1", Type: FillInTheBlank, Category: CategorySaving, Difficulty: Hard, CorrectAnswer: "x"},
		{ID: "fb-2", Type: FillInTheBlank, Category: CategorySaving, Difficulty: Easy, CorrectAnswer: "x"},
		{ID: "mc-1", Type: MultipleChoice, Category: CategorySaving, Difficulty: Easy,
			Choices: []Choice{{Text: "x", IsCorrect: true}}},
	})

	cats := []Category{CategorySaving}

	hard := b.Matching(cats, Hard, nil)
	if len(hard) != 1 || hard[0].ID != "fb-1" {
		t.Errorf("hard pool = %v, want only fb-1 (dropdown gated out)", ids(hard))
	}

	easy := b.Matching(cats, Easy, nil)
	if len(easy) != 1 || easy[0].ID != "mc-1" {
		t.Errorf("easy pool = %v, want only mc-1 (fill-in gated out)", ids(easy))
	}
}

func TestMatching_CategoryAndExclusion(t *testing.T) {
	b := NewBank([]Question{
		{ID: "mc-1", Type: MultipleChoice, Category: CategorySaving, Difficulty: Easy},
		{ID: "mc-2", Type: MultipleChoice, Category: CategoryFraud, Difficulty: Easy},
		{ID: "mc-3", Type: MultipleChoice, Category: CategorySaving, Difficulty: Easy},
	})

	got := b.Matching([]Category{CategorySaving}, Easy, map[string]bool{"mc-1": true})
	if len(got) != 1 || got[0].ID != "mc-3" {
		t.Errorf("pool = %v, want only mc-3", ids(got))
	}
}

func TestRandom_EmptyPool(t *testing.T) {
	b := NewBank(nil)
	if _, ok := b.Random(testRNG(), []Category{CategorySaving}, Easy, nil); ok {
		t.Error("expected no draw from an empty bank")
	}
}

func TestRandom_DrawsFromEligiblePool(t *testing.T) {
	b := NewBank([]Question{
		{ID: "mc-1", Type: MultipleChoice, Category: CategorySaving, Difficulty: Easy},
		{ID: "tf-1", Type: TrueFalse, Category: CategorySaving, Difficulty: Easy},
		{ID: "fb-1", Type: FillInTheBlank, Category: CategorySaving, Difficulty: Easy},
	})

	rng := testRNG()
	for i := 0; i < 50; i++ {
		q, ok := b.Random(rng, []Category{CategorySaving}, Easy, nil)
		if !ok {
			t.Fatal("expected a draw")
		}
		if q.Type == FillInTheBlank {
			t.Fatal("fill-in question drawn at easy tier")
		}
	}
}

func ids(qs []Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}
