// Package generic is the language-neutral bundle: numeric and ISO 8601
// forms only, no word dictionaries. It backs the "und" locale and is
// the safe choice for text of unknown language.
package generic

import (
	"time"

	"github.com/olivr70/nldates-obsidian-sub000/grammar"
	"github.com/olivr70/nldates-obsidian-sub000/isopatch"
	"github.com/olivr70/nldates-obsidian-sub000/locale"
)

// New builds the generic definition.
func New() *locale.Definition {
	cfg := grammar.Casual("und")
	isopatch.Register(cfg)
	return &locale.Definition{
		Tag:       "und",
		Config:    cfg,
		WeekStart: time.Monday,
	}
}
