package madlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Placeholder
	}{
		{name: "No placeholders", text: "Replace the battery.", want: nil},
		{name: "Fixed order", text: "Did you {verb} a {adjective} {noun}?", want: []Placeholder{Noun, Verb, Adjective}},
		{name: "Repeated token counted once", text: "{noun} and {noun}", want: []Placeholder{Noun}},
		{name: "Adverb", text: "You {adverb} ran", want: []Placeholder{Adverb}},
		{name: "Unknown token ignored", text: "{pronoun}", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Scan(tt.text))
		})
	}
}

func TestRender_Idempotent(t *testing.T) {
	slots := Slots{Verb: "jump", Adjective: "tall", Noun: "fence"}
	template := "Did you {verb} a {adjective} {noun}?"

	for i := 0; i < 3; i++ {
		assert.Equal(t, "Did you jump a tall fence?", Render(template, slots))
	}
}

func TestRender_EveryOccurrence(t *testing.T) {
	got := Render("{noun}, {noun}, {noun}!", Slots{Noun: "duck"})
	assert.Equal(t, "duck, duck, duck!", got)
}

func TestRender_UnfilledSlotIsEmpty(t *testing.T) {
	got := Render("sent to {noun}.", nil)
	assert.Equal(t, "sent to .", got)
}

func TestMissing(t *testing.T) {
	text := "Were you chased by a {adjective} {noun}?"
	assert.Equal(t, []Placeholder{Noun, Adjective}, Missing(text, nil))
	assert.Equal(t, []Placeholder{Adjective}, Missing(text, Slots{Noun: "goose"}))
	assert.Empty(t, Missing(text, Slots{Noun: "goose", Adjective: "angry"}))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "dragon", Normalize("  dragon \n"))
	assert.Equal(t, "two words", Normalize("\ttwo words "))
}

func TestPlaceholder_Token(t *testing.T) {
	assert.Equal(t, "{adverb}", Adverb.Token())
	assert.True(t, Verb.Valid())
	assert.False(t, Placeholder("pronoun").Valid())
}

func TestSlots_Clone(t *testing.T) {
	orig := Slots{Noun: "cat"}
	cp := orig.Clone()
	cp[Noun] = "dog"
	assert.Equal(t, "cat", orig[Noun])
	assert.Nil(t, Slots(nil).Clone())
}
