package store

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/Jeffin03/DevDigest/app/glossary"
)

var glossaryHeader = []string{"date_added", "category", "topic", "definition", "url"}

// GlossaryStore is the append-only CSV holding glossary entries. Unlike
// the news file it carries a named header, written exactly once when the
// file is missing or zero-length, and doubles as the de-duplication
// memory for the selector.
type GlossaryStore struct {
	path string
}

func NewGlossaryStore(path string) *GlossaryStore {
	return &GlossaryStore{path: path}
}

var _ glossary.Store = (*GlossaryStore)(nil)

func (s *GlossaryStore) Append(record glossary.Record) error {
	needHeader := false
	if info, err := os.Stat(s.path); os.IsNotExist(err) {
		needHeader = true
	} else if err != nil {
		return fmt.Errorf("failed to stat glossary file: %w", err)
	} else if info.Size() == 0 {
		needHeader = true
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open glossary file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(glossaryHeader); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	row := []string{
		record.DateAdded,
		record.Category,
		record.Topic,
		record.Definition,
		record.URL,
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush rows: %w", err)
	}

	return nil
}

// Load reads every data row from the glossary file. A missing file yields
// an empty result; malformed rows are skipped.
func (s *GlossaryStore) Load() ([]glossary.Record, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open glossary file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read glossary file: %w", err)
	}

	records := make([]glossary.Record, 0, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) > 0 && row[0] == glossaryHeader[0] {
			continue
		}
		if len(row) < 5 {
			continue
		}

		records = append(records, glossary.Record{
			DateAdded:  row[0],
			Category:   row[1],
			Topic:      row[2],
			Definition: row[3],
			URL:        row[4],
		})
	}

	return records, nil
}

// SeenTopics rebuilds the de-duplication set from the glossary file: the
// normalized form of every prior topic. The set is derived state, rebuilt
// on each run and never persisted separately.
func (s *GlossaryStore) SeenTopics() (map[string]struct{}, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		if record.Topic == "" {
			continue
		}
		seen[glossary.NormalizeTopic(record.Topic)] = struct{}{}
	}

	return seen, nil
}
