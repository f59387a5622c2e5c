package glossary

import (
	"strings"

	"golang.org/x/text/cases"
)

// Record is one glossary entry, one row in the glossary CSV. The
// normalized Topic is the unique key; the invariant is enforced by the
// selector's seen-set check at collection time, not by the file format.
type Record struct {
	DateAdded  string
	Category   string
	Topic      string
	Definition string
	URL        string
}

// Store is the durable destination and de-duplication memory for records.
type Store interface {
	SeenTopics() (map[string]struct{}, error)
	Append(record Record) error
}

// NormalizeTopic produces the canonical de-duplication key for a topic:
// trimmed and case-folded.
func NormalizeTopic(topic string) string {
	return cases.Fold().String(strings.TrimSpace(topic))
}
