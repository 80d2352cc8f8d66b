// Package i18n holds the static en/bn string table and resolves the active
// locale of a request.
package i18n

import (
	"maps"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Locale identifies one of the supported UI languages.
type Locale string

const (
	English Locale = "en"
	Bengali Locale = "bn"
)

// Supported lists the available locales in display order.
var Supported = []Locale{English, Bengali}

func (l Locale) String() string { return string(l) }

// IsValid returns true if the locale has a string table.
func (l Locale) IsValid() bool {
	_, ok := tables[l]
	return ok
}

// Tag returns the BCP 47 tag used for formatting.
func (l Locale) Tag() language.Tag {
	if l == Bengali {
		return language.MustParse("bn-BD")
	}
	return language.AmericanEnglish
}

// Parse converts a raw language code such as "bn" or "en-US" to a Locale.
func Parse(s string) (Locale, bool) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	l := Locale(base.String())
	return l, l.IsValid()
}

var cat = buildCatalog()

// buildCatalog registers every table under its locale tag. All locales must
// define exactly the English key set.
func buildCatalog() *catalog.Builder {
	keys := Keys()
	b := catalog.NewBuilder(catalog.Fallback(English.Tag()))
	for l, table := range tables {
		if !slices.Equal(keys, slices.Sorted(maps.Keys(table))) {
			panic("i18n: locale " + l.String() + " does not match the English key set")
		}
		for key, s := range table {
			if err := b.SetString(l.Tag(), key, s); err != nil {
				panic("i18n: " + err.Error())
			}
		}
	}
	return b
}

// Lookup returns the catalog string for key in locale l. Unknown locales
// fall back to English; unknown keys return the key itself. Table strings
// take no arguments, so they must not contain formatting verbs.
func Lookup(l Locale, key string) string {
	return Printer(l).Sprintf(key)
}

// Strings returns a copy of the whole table for locale l.
func Strings(l Locale) map[string]string {
	table, ok := tables[l]
	if !ok {
		table = tables[English]
	}
	return maps.Clone(table)
}

// Keys returns the sorted key set shared by every locale.
func Keys() []string {
	return slices.Sorted(maps.Keys(tables[English]))
}

// Printer returns a message printer bound to the locale's catalog.
func Printer(l Locale) *message.Printer {
	if !l.IsValid() {
		l = English
	}
	return message.NewPrinter(l.Tag(), message.Catalog(cat))
}

// FormatNumber renders n with the locale's grouping and digits.
func FormatNumber(l Locale, n int64) string {
	return Printer(l).Sprintf("%d", n)
}
