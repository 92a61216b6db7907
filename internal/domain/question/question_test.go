package question_test

import (
	"testing"

	"github.com/quadflash/backend/internal/domain/question"
)

func sampleQuestions() []question.Question {
	return []question.Question{
		{Question: "Q1", Options: []string{"A", "B"}, Answer: "A", IsDoubt: true},
		{Question: "Q2", Options: []string{"C", "D"}, Answer: "D", IsImportant: true},
		{Question: "Q3", Options: []string{"E", "F"}, Answer: "E", IsDoubt: true, IsImportant: true},
		{Question: "Q4", Options: []string{"G", "H"}, Answer: "H"},
	}
}

func TestContentKey_IgnoresAnnotations(t *testing.T) {
	q := question.Question{Question: "Q1", Options: []string{"A", "B"}, Answer: "A"}
	annotated := q
	annotated.IsDoubt = true
	annotated.IsImportant = true
	annotated.Note = "remember this"

	if q.ContentKey() != annotated.ContentKey() {
		t.Error("expected annotations not to change the content key")
	}
}

func TestContentKey_ChangesWithContent(t *testing.T) {
	base := question.Question{Question: "Q1", Options: []string{"A", "B"}, Answer: "A"}

	variants := []question.Question{
		{Question: "Q2", Options: []string{"A", "B"}, Answer: "A"},
		{Question: "Q1", Options: []string{"B", "A"}, Answer: "A"},
		{Question: "Q1", Options: []string{"A", "B", "C"}, Answer: "A"},
		{Question: "Q1", Options: []string{"A", "B"}, Answer: "B"},
		{Question: "Q1", Options: []string{"AB"}, Answer: "A"},
	}

	for _, v := range variants {
		if v.ContentKey() == base.ContentKey() {
			t.Errorf("expected %+v to have a different key from %+v", v, base)
		}
	}
}

func TestToggle(t *testing.T) {
	q := question.Question{Question: "Q1", Options: []string{"A"}, Answer: "A"}

	if err := q.Toggle(question.FlagDoubt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.IsDoubt || q.IsImportant {
		t.Errorf("expected only doubt set, got %+v", q)
	}

	if err := q.Toggle(question.FlagDoubt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.IsDoubt {
		t.Error("expected doubt to flip back to false")
	}

	if err := q.Toggle(question.Flag("starred")); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestParseTab(t *testing.T) {
	for _, s := range []string{"all", "doubt", "important"} {
		if _, err := question.ParseTab(s); err != nil {
			t.Errorf("ParseTab(%q): unexpected error %v", s, err)
		}
	}
	if _, err := question.ParseTab("All"); err == nil {
		t.Error("expected tabs to be case-sensitive")
	}
}

func TestFilter(t *testing.T) {
	qs := sampleQuestions()

	tests := []struct {
		tab     question.Tab
		indices []int
	}{
		{question.TabAll, []int{0, 1, 2, 3}},
		{question.TabDoubt, []int{0, 2}},
		{question.TabImportant, []int{1, 2}},
	}

	for _, tt := range tests {
		got := question.Filter(qs, tt.tab)
		if len(got) != len(tt.indices) {
			t.Fatalf("tab %s: expected %d records, got %d", tt.tab, len(tt.indices), len(got))
		}
		for i, item := range got {
			if item.Index != tt.indices[i] {
				t.Errorf("tab %s: position %d expected index %d, got %d", tt.tab, i, tt.indices[i], item.Index)
			}
			if item.Question.Question != qs[item.Index].Question {
				t.Errorf("tab %s: index %d maps to wrong record %q", tt.tab, item.Index, item.Question.Question)
			}
		}
	}
}

func TestCount(t *testing.T) {
	c := question.Count(sampleQuestions())
	if c.All != 4 || c.Doubt != 2 || c.Important != 2 {
		t.Errorf("unexpected counts %+v", c)
	}
}

func TestCloneAll_DoesNotAliasOptions(t *testing.T) {
	qs := sampleQuestions()
	clone := question.CloneAll(qs)
	clone[0].Options[0] = "changed"

	if qs[0].Options[0] != "A" {
		t.Error("expected clone to own its options slice")
	}
}
