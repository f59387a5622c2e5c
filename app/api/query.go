package api

import (
	"sort"

	"github.com/Jeffin03/DevDigest/app/news"
	"github.com/gin-gonic/gin"
)

const (
	SortScoreDesc = "score_desc"
	SortScoreAsc  = "score_asc"
	SortDateDesc  = "date_desc"
	SortDateAsc   = "date_asc"
)

var validSorts = map[string]bool{
	SortScoreDesc: true,
	SortScoreAsc:  true,
	SortDateDesc:  true,
	SortDateAsc:   true,
}

// Query holds the user-chosen filters and sort key for the story list.
type Query struct {
	Date    string
	Sources []string
	Sort    string
}

func ParseQuery(c *gin.Context) Query {
	q := Query{
		Date:    c.Query("date"),
		Sources: c.QueryArray("source"),
		Sort:    c.DefaultQuery("sort", SortDateDesc),
	}

	if !validSorts[q.Sort] {
		q.Sort = SortDateDesc
	}

	return q
}

// ApplyQuery filters and sorts records in memory. The input slice is not
// modified.
func ApplyQuery(records []news.Record, q Query) []news.Record {
	result := make([]news.Record, 0, len(records))

	sources := make(map[string]bool, len(q.Sources))
	for _, source := range q.Sources {
		sources[source] = true
	}

	for _, record := range records {
		if q.Date != "" && record.Date != q.Date {
			continue
		}
		if len(sources) > 0 && !sources[record.Source] {
			continue
		}
		result = append(result, record)
	}

	sort.SliceStable(result, func(i, j int) bool {
		switch q.Sort {
		case SortScoreDesc:
			return result[i].Score > result[j].Score
		case SortScoreAsc:
			return result[i].Score < result[j].Score
		case SortDateAsc:
			return result[i].Date < result[j].Date
		default: // SortDateDesc
			return result[i].Date > result[j].Date
		}
	})

	return result
}

// Stats summarizes the filtered story list for the dashboard metrics row.
type Stats struct {
	TotalStories int `json:"total_stories"`
	AverageScore int `json:"average_score"`
	SourceCount  int `json:"source_count"`
}

func Summarize(records []news.Record) Stats {
	stats := Stats{TotalStories: len(records)}

	if len(records) == 0 {
		return stats
	}

	total := 0
	sources := make(map[string]bool)
	for _, record := range records {
		total += record.Score
		sources[record.Source] = true
	}

	stats.AverageScore = total / len(records)
	stats.SourceCount = len(sources)

	return stats
}

// DistinctDates returns the distinct dates across all records, newest
// first, for the dashboard date filter control.
func DistinctDates(records []news.Record) []string {
	seen := make(map[string]bool)
	var dates []string
	for _, record := range records {
		if record.Date != "" && !seen[record.Date] {
			seen[record.Date] = true
			dates = append(dates, record.Date)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// DistinctSources returns the distinct sources across all records, sorted.
func DistinctSources(records []news.Record) []string {
	seen := make(map[string]bool)
	var sources []string
	for _, record := range records {
		if record.Source != "" && !seen[record.Source] {
			seen[record.Source] = true
			sources = append(sources, record.Source)
		}
	}

	sort.Strings(sources)
	return sources
}
