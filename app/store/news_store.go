package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/Jeffin03/DevDigest/app/news"
)

// NewsStore is the append-only CSV holding collected stories. Columns are
// positional with no header: date, source, title, url, score. No file
// locking; at most one writer per invocation is assumed.
type NewsStore struct {
	path string
}

func NewNewsStore(path string) *NewsStore {
	return &NewsStore{path: path}
}

var _ news.Store = (*NewsStore)(nil)

func (s *NewsStore) Append(records []news.Record) error {
	if len(records) == 0 {
		return nil
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open news file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, record := range records {
		row := []string{
			record.Date,
			record.Source,
			record.Title,
			record.URL,
			strconv.Itoa(record.Score),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush rows: %w", err)
	}

	return nil
}

// Load reads every row from the news file. A missing file yields an empty
// result; malformed rows are skipped.
func (s *NewsStore) Load() ([]news.Record, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open news file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read news file: %w", err)
	}

	records := make([]news.Record, 0, len(rows))
	for _, row := range rows {
		if len(row) < 5 {
			continue
		}

		score, _ := strconv.Atoi(row[4])
		records = append(records, news.Record{
			Date:   row[0],
			Source: row[1],
			Title:  row[2],
			URL:    row[3],
			Score:  score,
		})
	}

	return records, nil
}
