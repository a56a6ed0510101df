// Package i18n holds the English and Portuguese copy of the site and the
// two-state language switch that picks between them.
package i18n

import "golang.org/x/text/language"

// Lang is a supported page language.
type Lang string

const (
	EN Lang = "en"
	PT Lang = "pt"
)

// StorageKey names the persisted language preference.
const StorageKey = "jg-lang"

// Parse maps a stored or requested value to a Lang. Anything that is not
// exactly "pt" is English.
func Parse(s string) Lang {
	if Lang(s) == PT {
		return PT
	}
	return EN
}

// Other returns the language a toggle switches to.
func (l Lang) Other() Lang {
	if l == PT {
		return EN
	}
	return PT
}

// Tag returns the BCP 47 tag written to the document's lang attribute.
func (l Lang) Tag() language.Tag {
	if l == PT {
		return language.Portuguese
	}
	return language.English
}

func (l Lang) String() string { return string(l) }
