package question

// Tab selects which records the practice view shows.
type Tab string

const (
	TabAll       Tab = "all"
	TabDoubt     Tab = "doubt"
	TabImportant Tab = "important"
)

func ParseTab(s string) (Tab, error) {
	switch t := Tab(s); t {
	case TabAll, TabDoubt, TabImportant:
		return t, nil
	}
	return "", ErrUnknownTab
}

// Matches reports whether q is visible under tab t.
func (t Tab) Matches(q Question) bool {
	switch t {
	case TabDoubt:
		return q.IsDoubt
	case TabImportant:
		return q.IsImportant
	default:
		return true
	}
}

// Indexed pairs a record with its position in the full list. Index is the
// identity used for mutations, so it survives filtering.
type Indexed struct {
	Index    int
	Question Question
}

// Filter returns the records visible under t in their original order.
func Filter(qs []Question, t Tab) []Indexed {
	out := make([]Indexed, 0, len(qs))
	for i, q := range qs {
		if t.Matches(q) {
			out = append(out, Indexed{Index: i, Question: q})
		}
	}
	return out
}

// Counts holds the number of records per tab.
type Counts struct {
	All       int `json:"all"`
	Doubt     int `json:"doubt"`
	Important int `json:"important"`
}

func Count(qs []Question) Counts {
	c := Counts{All: len(qs)}
	for _, q := range qs {
		if q.IsDoubt {
			c.Doubt++
		}
		if q.IsImportant {
			c.Important++
		}
	}
	return c
}
