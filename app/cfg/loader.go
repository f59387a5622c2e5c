package cfg

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "unknown"
}

type rawCfg struct {
	// Data files
	NewsFile       string `long:"news-file" env:"NEWS_FILE" default:"NewsData.csv" description:"Path to the news CSV file"`
	GlossaryFile   string `long:"glossary-file" env:"GLOSSARY_FILE" default:"CS_Glossary.csv" description:"Path to the glossary CSV file"`
	CategoriesFile string `long:"categories-file" env:"CATEGORIES_FILE" default:"categories.yml" description:"Path to the Wikipedia categories file (optional)"`

	// Collection configuration
	StoryLimit   int    `long:"story-limit" env:"STORY_LIMIT" default:"5" description:"Maximum stories to collect per source"`
	TechFeedURL  string `long:"tech-feed-url" env:"TECH_FEED_URL" default:"https://hnrss.org/frontpage" description:"RSS feed URL for the tech news source"`
	MaxAttempts  int    `long:"max-attempts" env:"MAX_ATTEMPTS" default:"10" description:"Attempt cap for the glossary selector loop"`
	AttemptDelay int    `long:"attempt-delay" env:"ATTEMPT_DELAY" default:"1" description:"Delay between failed selector attempts in seconds"`
	HTTPTimeout  int    `long:"http-timeout" env:"HTTP_TIMEOUT" default:"10" description:"Per-request HTTP timeout in seconds"`

	// Dashboard configuration
	Port string `long:"port" env:"PORT" default:"8080" description:"Dashboard HTTP server port"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"DevDigest/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		NewsFile:       raw.NewsFile,
		GlossaryFile:   raw.GlossaryFile,
		CategoriesFile: raw.CategoriesFile,
		StoryLimit:     raw.StoryLimit,
		TechFeedURL:    raw.TechFeedURL,
		MaxAttempts:    raw.MaxAttempts,
		AttemptDelay:   raw.AttemptDelay,
		HTTPTimeout:    raw.HTTPTimeout,
		Port:           raw.Port,
		UserAgent:      raw.UserAgent,
		Timezone:       raw.Timezone,
		Debug:          raw.Debug,
		Version:        GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
