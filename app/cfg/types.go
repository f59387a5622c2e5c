package cfg

import "time"

type Cfg struct {
	// Data files
	NewsFile       string
	GlossaryFile   string
	CategoriesFile string

	// Collection configuration
	StoryLimit   int
	TechFeedURL  string
	MaxAttempts  int
	AttemptDelay int
	HTTPTimeout  int

	// Dashboard configuration
	Port string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}

// GetHTTPTimeout returns the per-request timeout as time.Duration
func (c *Cfg) GetHTTPTimeout() time.Duration {
	if c.HTTPTimeout <= 0 {
		return 10 * time.Second // default 10 seconds
	}
	return time.Duration(c.HTTPTimeout) * time.Second
}

// GetAttemptDelay returns the politeness delay between selector attempts
func (c *Cfg) GetAttemptDelay() time.Duration {
	if c.AttemptDelay < 0 {
		return 0
	}
	return time.Duration(c.AttemptDelay) * time.Second
}
