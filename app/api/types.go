package api

import (
	"github.com/Jeffin03/DevDigest/app/glossary"
	"github.com/Jeffin03/DevDigest/app/news"
	"github.com/Jeffin03/DevDigest/app/store"
)

type NewsSource interface {
	Load() ([]news.Record, error)
}

type GlossarySource interface {
	Load() ([]glossary.Record, error)
}

var _ NewsSource = (*store.NewsStore)(nil)
var _ GlossarySource = (*store.GlossaryStore)(nil)

type Handler struct {
	newsSource     NewsSource
	glossarySource GlossarySource
}
