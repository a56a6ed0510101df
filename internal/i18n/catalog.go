package i18n

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Locale is the copy for one language.
type Locale struct {
	Flag    string            `yaml:"flag"`
	Code    string            `yaml:"code"`
	Phrases []string          `yaml:"phrases"`
	Strings map[string]string `yaml:"strings"`
}

// Element is a piece of markup tagged with a translation key.
type Element struct {
	Key     string
	Content string
}

// Label is what a toggle button shows: the flag and code of the language
// it would switch to.
type Label struct {
	Flag string `json:"f"`
	Code string `json:"c"`
}

// Catalog holds every Locale.
type Catalog struct {
	locales map[Lang]*Locale
}

// LoadCatalog parses the embedded locale files.
func LoadCatalog() (*Catalog, error) {
	c := &Catalog{locales: make(map[Lang]*Locale)}
	for _, l := range []Lang{EN, PT} {
		raw, err := localeFS.ReadFile("locales/" + string(l) + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", l, err)
		}
		loc := &Locale{}
		if err := yaml.Unmarshal(raw, loc); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", l, err)
		}
		c.locales[l] = loc
	}
	return c, nil
}

// NewCatalog builds a catalog from in-memory locales.
func NewCatalog(locales map[Lang]*Locale) *Catalog {
	return &Catalog{locales: locales}
}

func (c *Catalog) locale(l Lang) *Locale {
	if loc, ok := c.locales[l]; ok {
		return loc
	}
	return &Locale{}
}

// Lookup returns the string for key in l.
func (c *Catalog) Lookup(l Lang, key string) (string, bool) {
	s, ok := c.locale(l).Strings[key]
	return s, ok
}

// Apply rewrites the content of every element whose key exists in l.
// Elements with unknown keys keep their current content.
func (c *Catalog) Apply(l Lang, elems []Element) {
	for i := range elems {
		if s, ok := c.Lookup(l, elems[i].Key); ok {
			elems[i].Content = s
		}
	}
}

// Strings returns a copy of the dictionary for l.
func (c *Catalog) Strings(l Lang) map[string]string {
	src := c.locale(l).Strings
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Phrases returns the typed-text phrases for l, falling back to English.
func (c *Catalog) Phrases(l Lang) []string {
	if p := c.locale(l).Phrases; len(p) > 0 {
		return p
	}
	return c.locale(EN).Phrases
}

// ToggleLabel returns what both toggle buttons show while l is active.
func (c *Catalog) ToggleLabel(l Lang) Label {
	other := c.locale(l.Other())
	return Label{Flag: other.Flag, Code: other.Code}
}
