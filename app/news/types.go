package news

const (
	SourceHackerNews = "Hacker News"
	SourceTechNews   = "Tech News"
)

// Record is one collected story, one row in the news CSV.
// Identity is implicit: duplicates across runs are accepted.
type Record struct {
	Date   string
	Source string
	Title  string
	URL    string
	Score  int
}

// Store is the destination for collected records.
type Store interface {
	Append(records []Record) error
}
