package card_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/quadflash/backend/internal/domain/card"
	"github.com/quadflash/backend/internal/domain/question"
	"github.com/quadflash/backend/internal/grader"
)

func q1() question.Question {
	return question.Question{Question: "Q1", Options: []string{"A", "B"}, Answer: "A"}
}

func manyOptions(n int) question.Question {
	q := question.Question{Question: "Pick one"}
	for i := 0; i < n; i++ {
		q.Options = append(q.Options, fmt.Sprintf("opt-%02d", i))
	}
	q.Answer = q.Options[0]
	return q
}

func TestNew_StartsUnanswered(t *testing.T) {
	c := card.New(q1(), nil)

	if c.State() != card.StateUnanswered {
		t.Errorf("expected unanswered, got %s", c.State())
	}
	v := c.View()
	if v.Revealed {
		t.Error("expected reveal to start false")
	}
	if v.Selected != nil {
		t.Error("expected no selection")
	}
}

func TestSelect_AnswerIsCorrect(t *testing.T) {
	c := card.New(q1(), grader.Exact{})

	state, err := c.Select("A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != card.StateCorrect {
		t.Errorf("expected %s, got %s", card.StateCorrect, state)
	}
}

func TestSelect_OtherOptionIsIncorrect(t *testing.T) {
	q := manyOptions(6)
	for _, opt := range q.Options[1:] {
		c := card.New(q, grader.Exact{})
		state, err := c.Select(opt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state != card.StateIncorrect {
			t.Errorf("select %q: expected %s, got %s", opt, card.StateIncorrect, state)
		}
	}
}

func TestSelect_SameOptionTwiceDoesNotToggleOff(t *testing.T) {
	c := card.New(q1(), nil)
	c.Select("B")
	state, _ := c.Select("B")

	if state != card.StateIncorrect {
		t.Errorf("expected selection to stay, got %s", state)
	}
	if sel := c.View().Selected; sel == nil || *sel != "B" {
		t.Errorf("expected B selected, got %v", sel)
	}
}

func TestSelect_IgnoredWhileRevealed(t *testing.T) {
	c := card.New(q1(), nil)
	c.ToggleReveal()

	state, err := c.Select("B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != card.StateUnanswered {
		t.Errorf("expected select to be ignored, got %s", state)
	}
}

func TestSelect_UnknownOption(t *testing.T) {
	c := card.New(q1(), nil)
	if _, err := c.Select("Z"); err != card.ErrUnknownOption {
		t.Errorf("expected ErrUnknownOption, got %v", err)
	}
	if c.State() != card.StateUnanswered {
		t.Error("expected state unchanged after unknown option")
	}
}

func TestSelect_ExactMatchIsCaseSensitive(t *testing.T) {
	q := question.Question{Question: "Q", Options: []string{"put", "POST"}, Answer: "PUT"}

	exact := card.New(q, grader.Exact{})
	if state, _ := exact.Select("put"); state != card.StateIncorrect {
		t.Errorf("exact: expected incorrect, got %s", state)
	}

	normalized := card.New(q, grader.Normalized{})
	if state, _ := normalized.Select("put"); state != card.StateCorrect {
		t.Errorf("normalized: expected correct, got %s", state)
	}
}

func TestToggleReveal_KeepsSelection(t *testing.T) {
	c := card.New(q1(), nil)
	c.Select("B")

	if !c.ToggleReveal() {
		t.Fatal("expected reveal on")
	}
	if c.State() != card.StateIncorrect {
		t.Errorf("expected correctness kept, got %s", c.State())
	}
	if c.ToggleReveal() {
		t.Error("expected reveal off after second toggle")
	}
}

func TestView_IncorrectThenReveal(t *testing.T) {
	c := card.New(q1(), nil)
	c.Select("B")
	c.ToggleReveal()

	v := c.View()
	if v.Answer == nil || *v.Answer != "A" {
		t.Fatalf("expected revealed answer A, got %v", v.Answer)
	}

	marks := map[string]card.Mark{}
	for _, o := range v.Options {
		marks[o.Text] = o.Mark
	}
	if marks["A"] != card.MarkAnswer {
		t.Errorf("expected A marked as answer, got %q", marks["A"])
	}
	if marks["B"] != card.MarkIncorrect {
		t.Errorf("expected B marked incorrect, got %q", marks["B"])
	}
}

func TestView_RevealWithoutSelection(t *testing.T) {
	c := card.New(q1(), nil)
	c.ToggleReveal()

	for _, o := range c.View().Options {
		want := card.MarkNone
		if o.Text == "A" {
			want = card.MarkAnswer
		}
		if o.Mark != want {
			t.Errorf("option %q: expected mark %q, got %q", o.Text, want, o.Mark)
		}
	}
}

func TestView_HidesAnswerUntilRevealed(t *testing.T) {
	c := card.New(q1(), nil)
	if c.View().Answer != nil {
		t.Error("expected answer hidden before reveal")
	}
}

func TestSync_AnnotationChangesKeepState(t *testing.T) {
	q := manyOptions(8)
	c := card.New(q, nil)
	order := optionTexts(c.View())
	c.Select(q.Options[3])
	c.ToggleReveal()

	annotated := q
	annotated.IsDoubt = true
	annotated.IsImportant = true
	annotated.Note = "tricky"

	if c.Sync(annotated) {
		t.Fatal("expected no reset for annotation changes")
	}
	v := c.View()
	if v.Selected == nil || *v.Selected != q.Options[3] {
		t.Errorf("expected selection kept, got %v", v.Selected)
	}
	if !v.Revealed {
		t.Error("expected reveal kept")
	}
	if !equal(order, optionTexts(v)) {
		t.Error("expected option order kept")
	}
}

func TestSync_ContentChangeResets(t *testing.T) {
	c := card.New(q1(), nil)
	c.Select("A")
	c.ToggleReveal()

	changed := question.Question{Question: "Q1", Options: []string{"A", "B", "C"}, Answer: "C"}
	if !c.Sync(changed) {
		t.Fatal("expected reset for content change")
	}
	v := c.View()
	if v.State != card.StateUnanswered || v.Revealed || v.Selected != nil {
		t.Errorf("expected fresh card, got %+v", v)
	}
	if len(v.Options) != 3 {
		t.Errorf("expected 3 options, got %d", len(v.Options))
	}
	if c.Sync(changed) {
		t.Error("expected card bound to the new content")
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	qs := []question.Question{
		q1(),
		manyOptions(10),
		{Question: "dupes", Options: []string{"x", "x", "y"}, Answer: "x"},
		{Question: "single", Options: []string{"only"}, Answer: "only"},
		{Question: "none", Options: []string{}, Answer: ""},
	}

	for _, q := range qs {
		for i := 0; i < 20; i++ {
			got := shuffled(q)
			if !sameMultiset(q.Options, got) {
				t.Fatalf("%s: %v is not a permutation of %v", q.Question, got, q.Options)
			}
		}
	}
}

func TestShuffle_Randomizes(t *testing.T) {
	q := manyOptions(12)
	first := shuffled(q)

	for i := 0; i < 10; i++ {
		if !equal(first, shuffled(q)) {
			return
		}
	}
	t.Error("expected option order to vary across cards")
}

func TestShuffle_EveryPositionReachable(t *testing.T) {
	q := question.Question{Question: "Q", Options: []string{"A", "B", "C"}, Answer: "A"}
	seen := map[string]bool{}

	for i := 0; i < 500; i++ {
		seen[shuffled(q)[0]] = true
	}
	for _, opt := range q.Options {
		if !seen[opt] {
			t.Errorf("option %q never shuffled into first position", opt)
		}
	}
}

func optionTexts(v card.View) []string {
	out := make([]string, len(v.Options))
	for i, o := range v.Options {
		out[i] = o.Text
	}
	return out
}

func shuffled(q question.Question) []string {
	return optionTexts(card.New(q, nil).View())
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameMultiset(a, b []string) bool {
	x := append([]string(nil), a...)
	y := append([]string(nil), b...)
	sort.Strings(x)
	sort.Strings(y)
	return equal(x, y)
}
