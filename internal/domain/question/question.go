package question

import (
	"encoding/binary"
	"errors"

	"github.com/google/uuid"
)

// contentNamespace scopes content keys so they never collide with other
// name-based UUIDs.
var contentNamespace = uuid.MustParse("6f1c9a52-7c1e-4c4b-9a53-2f0d6a0e51d4")

var (
	ErrUnknownFlag = errors.New("unknown flag: must be doubt or important")
	ErrUnknownTab  = errors.New("unknown tab: must be all, doubt, or important")
)

// Question is one study record. Options and Answer are opaque strings.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	IsDoubt     bool     `json:"isDoubt,omitempty"`
	IsImportant bool     `json:"isImportant,omitempty"`
	Note        string   `json:"note,omitempty"`
}

// ContentKey identifies the study content of a record: question, options and
// answer. Annotations (flags, note) do not contribute.
func (q Question) ContentKey() uuid.UUID {
	var buf []byte
	buf = appendField(buf, q.Question)
	buf = binary.AppendUvarint(buf, uint64(len(q.Options)))
	for _, opt := range q.Options {
		buf = appendField(buf, opt)
	}
	buf = appendField(buf, q.Answer)
	return uuid.NewSHA1(contentNamespace, buf)
}

func appendField(buf []byte, s string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

// HasOption reports whether opt is one of the options, by exact match.
func (q Question) HasOption(opt string) bool {
	for _, o := range q.Options {
		if o == opt {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot alias the options slice.
func (q Question) Clone() Question {
	c := q
	if q.Options != nil {
		c.Options = make([]string, len(q.Options))
		copy(c.Options, q.Options)
	}
	return c
}

// CloneAll deep-copies a list of records.
func CloneAll(qs []Question) []Question {
	if qs == nil {
		return nil
	}
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}

// Flag is a boolean annotation kind.
type Flag string

const (
	FlagDoubt     Flag = "doubt"
	FlagImportant Flag = "important"
)

func ParseFlag(s string) (Flag, error) {
	switch f := Flag(s); f {
	case FlagDoubt, FlagImportant:
		return f, nil
	}
	return "", ErrUnknownFlag
}

// Toggle flips the given flag on q.
func (q *Question) Toggle(f Flag) error {
	switch f {
	case FlagDoubt:
		q.IsDoubt = !q.IsDoubt
	case FlagImportant:
		q.IsImportant = !q.IsImportant
	default:
		return ErrUnknownFlag
	}
	return nil
}
