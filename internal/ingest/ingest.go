// Package ingest turns raw JSON text into a validated list of questions.
// A rejected input never yields a partial list.
package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quadflash/backend/internal/domain/question"
)

var (
	ErrEmptyInput   = errors.New("please enter some JSON data first")
	ErrMalformed    = errors.New("invalid JSON syntax")
	ErrInvalidShape = errors.New("JSON must be an array of questions or a single question object; each item must have 'question', 'options' (array), and 'answer'")
)

// Result is an accepted question list plus non-fatal findings about it.
type Result struct {
	Questions []question.Question
	Warnings  []string
}

// Parse validates raw text from the paste box or an uploaded file.
func Parse(raw []byte) (Result, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Result{}, ErrEmptyInput
	}
	if !json.Valid(trimmed) {
		var v any
		err := json.Unmarshal(trimmed, &v)
		return Result{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return validate(trimmed)
}

// ValidateValue validates an already-decoded structure, such as a drop
// payload decoded by the caller.
func ValidateValue(v any) (Result, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	return validate(raw)
}

func validate(raw []byte) (Result, error) {
	switch raw[0] {
	case '[':
		return validateList(raw)
	case '{':
		return validateSingle(raw)
	}
	return Result{}, ErrInvalidShape
}

func validateList(raw []byte) (Result, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return Result{}, ErrInvalidShape
	}

	questions := make([]question.Question, 0, len(items))
	for _, item := range items {
		fields, ok := decodeObject(item)
		if !ok {
			return Result{}, ErrInvalidShape
		}
		_, hasQuestion := fields["question"]
		_, hasAnswer := fields["answer"]
		if !hasQuestion || !hasAnswer || !isArray(fields["options"]) {
			return Result{}, ErrInvalidShape
		}
		q, err := decodeQuestion(item)
		if err != nil {
			return Result{}, err
		}
		questions = append(questions, q)
	}

	return Result{Questions: questions, Warnings: lint(questions)}, nil
}

// validateSingle accepts a lone question object when question, options and
// answer are all present and truthy, and wraps it in a one-element list.
func validateSingle(raw []byte) (Result, error) {
	fields, ok := decodeObject(raw)
	if !ok {
		return Result{}, ErrInvalidShape
	}
	for _, key := range []string{"question", "options", "answer"} {
		if !truthy(fields[key]) {
			return Result{}, ErrInvalidShape
		}
	}
	q, err := decodeQuestion(raw)
	if err != nil {
		return Result{}, err
	}
	questions := []question.Question{q}
	return Result{Questions: questions, Warnings: lint(questions)}, nil
}

func decodeObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

// decodeQuestion maps a shape-checked object onto a Question. Values of the
// wrong JSON type are shape errors.
func decodeQuestion(raw json.RawMessage) (question.Question, error) {
	var q question.Question
	if err := json.Unmarshal(raw, &q); err != nil {
		return question.Question{}, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	if q.Options == nil {
		q.Options = []string{}
	}
	return q, nil
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

func truthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	switch string(raw) {
	case "null", "false", `""`:
		return false
	}
	if raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9') {
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil && n == 0 {
			return false
		}
	}
	return true
}

// lint reports records that will behave oddly in practice without rejecting
// them.
func lint(qs []question.Question) []string {
	var warnings []string
	for i, q := range qs {
		if q.Question == "" {
			warnings = append(warnings, fmt.Sprintf("item %d: question is empty", i))
		}
		if len(q.Options) == 0 {
			warnings = append(warnings, fmt.Sprintf("item %d: options is empty", i))
			continue
		}
		if !q.HasOption(q.Answer) {
			warnings = append(warnings, fmt.Sprintf("item %d: answer %q does not exactly match any option", i, q.Answer))
		}
	}
	return warnings
}
