package madlib

import (
	"strings"
)

// Placeholder names a fill-in-the-blank slot that a node template may reference.
type Placeholder string

const (
	Noun      Placeholder = "noun"
	Verb      Placeholder = "verb"
	Adjective Placeholder = "adjective"
	Adverb    Placeholder = "adverb"
)

// Placeholders lists the recognized slots in the order they are requested.
var Placeholders = []Placeholder{Noun, Verb, Adjective, Adverb}

// Token returns the literal form of the placeholder inside a template, e.g. "{noun}".
func (p Placeholder) Token() string {
	return "{" + string(p) + "}"
}

// Valid reports whether p is one of the recognized placeholders.
func (p Placeholder) Valid() bool {
	for _, known := range Placeholders {
		if p == known {
			return true
		}
	}
	return false
}

// Slots holds the words collected for one node.
type Slots map[Placeholder]string

// Clone returns an independent copy of the slots.
func (s Slots) Clone() Slots {
	if s == nil {
		return nil
	}
	out := make(Slots, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Scan returns the placeholders referenced by text, each at most once,
// in the fixed order of Placeholders.
func Scan(text string) []Placeholder {
	var found []Placeholder
	for _, p := range Placeholders {
		if strings.Contains(text, p.Token()) {
			found = append(found, p)
		}
	}
	return found
}

// Missing returns the placeholders referenced by text that have no stored word yet.
func Missing(text string, slots Slots) []Placeholder {
	var missing []Placeholder
	for _, p := range Scan(text) {
		if _, ok := slots[p]; !ok {
			missing = append(missing, p)
		}
	}
	return missing
}

// Render substitutes every occurrence of each placeholder token with its stored word.
// Slots without a stored word render as the empty string.
func Render(text string, slots Slots) string {
	referenced := Scan(text)
	if len(referenced) == 0 {
		return text
	}
	pairs := make([]string, 0, len(referenced)*2)
	for _, p := range referenced {
		pairs = append(pairs, p.Token(), slots[p])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Normalize trims surrounding whitespace from a user-supplied word.
// Content is otherwise accepted as-is.
func Normalize(word string) string {
	return strings.TrimSpace(word)
}
