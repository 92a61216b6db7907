package ingest

import (
	_ "embed"
	"encoding/json"

	"github.com/quadflash/backend/internal/domain/question"
)

//go:embed sample.json
var sampleJSON []byte

// Sample returns a fresh copy of the bundled demo set.
func Sample() []question.Question {
	var qs []question.Question
	if err := json.Unmarshal(sampleJSON, &qs); err != nil {
		panic("ingest: bundled sample.json is invalid: " + err.Error())
	}
	return qs
}
