// Package translit adapts gosimple's slug and unidecode packages to the
// Slugger and Transliterator ports.
package translit

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gosimple/slug"
	"github.com/gosimple/unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Dr-Obek/textfilter/internal/ports"
)

const defaultLanguage = "en"

var (
	// gosimple substitutes "&" and "@" with words; slugs here treat them as
	// plain separators.
	separatorSub = map[rune]string{
		'&': " ",
		'@': " ",
	}

	nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)
)

// stripMarks drops combining marks so decomposed input ("e" + U+0301)
// transliterates the same way as its precomposed form.
func stripMarks(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

type Unidecoder struct{}

func NewUnidecoder() *Unidecoder {
	return &Unidecoder{}
}

var _ ports.Transliterator = (*Unidecoder)(nil)

// Transliterate returns the closest plain-ASCII approximation of text.
func (u *Unidecoder) Transliterate(text string) string {
	return unidecode.Unidecode(stripMarks(text))
}

type Slugger struct {
	lang string
}

type Option func(*Slugger)

// WithLanguage selects gosimple's language-specific substitutions
// (e.g. "de" turns "ä" into "ae").
func WithLanguage(lang string) Option {
	return func(s *Slugger) {
		if lang != "" {
			s.lang = lang
		}
	}
}

func NewSlugger(opts ...Option) *Slugger {
	s := &Slugger{lang: defaultLanguage}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.Slugger = (*Slugger)(nil)

// Slugify produces a lowercase ASCII slug where every run of
// non-alphanumeric characters becomes a single "-".
func (s *Slugger) Slugify(text string) string {
	out := slug.MakeLang(slug.SubstituteRune(norm.NFC.String(text), separatorSub), s.lang)
	out = nonSlugRuns.ReplaceAllString(strings.ToLower(out), "-")
	return strings.Trim(out, "-")
}
