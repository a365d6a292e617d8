// Package i18n holds the console's message catalog and the locale aware
// number and date formatting used by the templates.
package i18n

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	PortugueseBR = language.BrazilianPortuguese
	English      = language.AmericanEnglish

	supported = []language.Tag{PortugueseBR, English}
	matcher   = language.NewMatcher(supported)
)

// Match picks the supported language that best fits an Accept-Language
// header, falling back to fallback (a BCP 47 tag) when nothing matches.
func Match(acceptLanguage, fallback string) language.Tag {
	def := Parse(fallback)
	if strings.TrimSpace(acceptLanguage) == "" {
		return def
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return def
	}
	return supported[idx]
}

// Parse maps a configured tag to a supported language; unknown tags become
// Brazilian Portuguese.
func Parse(tag string) language.Tag {
	t, err := language.Parse(tag)
	if err != nil {
		return PortugueseBR
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return PortugueseBR
	}
	return supported[idx]
}

// Translator renders catalog keys and numbers for one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

func New(tag language.Tag) *Translator {
	return &Translator{tag: tag, printer: message.NewPrinter(tag)}
}

func (t *Translator) Tag() language.Tag { return t.tag }

// Lang is the value of the html lang attribute.
func (t *Translator) Lang() string { return t.tag.String() }

// T translates key; keys missing from the catalog are printed as they are.
func (t *Translator) T(key string, args ...interface{}) string {
	return t.printer.Sprintf(key, args...)
}

// Number formats v with two decimals and the locale's separators.
func (t *Translator) Number(v float64) string {
	return t.printer.Sprintf("%.2f", v)
}

func (t *Translator) Integer(v uint64) string {
	return t.printer.Sprintf("%d", v)
}

func (t *Translator) Date(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	if t.tag == English {
		return v.Format("01/02/2006")
	}
	return v.Format("02/01/2006")
}
