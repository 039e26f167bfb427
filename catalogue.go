package carto2pdf

import (
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
)

// JSON keys read from each catalogue entry.
const (
	keyData         = "data"
	keyName         = "name"
	keyAddress      = "address.customFormatedAddress"
	keyTelephone    = "telephone"
	keyEmail        = "email"
	keyURL          = "url"
	keyDetails      = "details"
	keyOpenHours    = "openHours"
	keySpecialHours = "detailshoraires"
)

// Text is an optional catalogue value.
// Valid is false when the key was absent or null in the source document.
type Text struct {
	Value string
	Valid bool
}

// Or returns the value, or fallback when the value was not provided.
func (t Text) Or(fallback string) string {
	if !t.Valid {
		return fallback
	}
	return t.Value
}

// OpeningHours is one weekday entry of an entity's opening hours.
type OpeningHours struct {
	Day   string // two-letter weekday code as found in the source ("Mo", "Tu", ...)
	Hours Text   // invalid when the value is null
}

// Entity is one catalogued place or organization.
type Entity struct {
	Name         Text
	Address      Text
	Telephone    Text
	Email        Text
	URL          Text
	Details      Text
	OpenHours    []OpeningHours // source order, not calendar order
	SpecialHours Text
}

// Catalogue is the ordered list of entities read from the input document.
type Catalogue struct {
	Entities []Entity
}

// LoadCatalogueFile reads and parses a catalogue file.
func LoadCatalogueFile(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogueRead, err)
	}
	return ParseCatalogue(data)
}

// LoadCatalogue reads a catalogue from r.
func LoadCatalogue(r io.Reader) (*Catalogue, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogueRead, err)
	}
	return ParseCatalogue(data)
}

// ParseCatalogue parses a JSON document with a top-level "data" array.
// A document without "data" yields an empty catalogue. Entities keep their
// input order and duplicates are preserved.
func ParseCatalogue(data []byte) (*Catalogue, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrCatalogueParse)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top-level value must be an object", ErrCatalogueParse)
	}

	list := root.Get(keyData)
	if !list.Exists() || list.Type == gjson.Null {
		return &Catalogue{}, nil
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: %q must be an array", ErrCatalogueParse, keyData)
	}

	items := list.Array()
	cat := &Catalogue{Entities: make([]Entity, 0, len(items))}
	for i, item := range items {
		if !item.IsObject() {
			return nil, fmt.Errorf("%w: %s[%d] is not an object", ErrCatalogueParse, keyData, i)
		}
		cat.Entities = append(cat.Entities, parseEntity(item))
	}
	return cat, nil
}

func parseEntity(obj gjson.Result) Entity {
	return Entity{
		Name:         textOf(obj.Get(keyName)),
		Address:      textOf(obj.Get(keyAddress)),
		Telephone:    textOf(obj.Get(keyTelephone)),
		Email:        textOf(obj.Get(keyEmail)),
		URL:          textOf(obj.Get(keyURL)),
		Details:      textOf(obj.Get(keyDetails)),
		OpenHours:    openHoursOf(obj.Get(keyOpenHours)),
		SpecialHours: textOf(obj.Get(keySpecialHours)),
	}
}

// textOf coerces any JSON value to its display text.
// Numbers and booleans keep their literal form, objects and arrays their raw JSON.
func textOf(r gjson.Result) Text {
	if !r.Exists() || r.Type == gjson.Null {
		return Text{}
	}
	return Text{Value: r.String(), Valid: true}
}

// openHoursOf walks the object in document order. Anything but an object
// counts as no opening hours.
func openHoursOf(r gjson.Result) []OpeningHours {
	if !r.IsObject() {
		return nil
	}
	var hours []OpeningHours
	r.ForEach(func(key, value gjson.Result) bool {
		hours = append(hours, OpeningHours{Day: key.String(), Hours: textOf(value)})
		return true
	})
	return hours
}
