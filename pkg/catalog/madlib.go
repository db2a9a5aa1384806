package catalog

import "github.com/aretw0/crossroads/pkg/dsl"

// MadLibName is the registry name of the fill-in-the-blanks adventure.
const MadLibName = "madlib"

// MadLibIntro greets the player before the first fill-in prompt.
const MadLibIntro = "Welcome to Mad Libs!\nYou will be asked a series of questions to fill in the blanks for a story."

// MadLibTable is a branching story whose questions embed fill-in placeholders.
// Several branches share the same endings, so the topology is a DAG rather than a tree.
var MadLibTable = dsl.Table{
	Name: MadLibName,
	Root: "breakfast",
	Nodes: []dsl.NodeSpec{
		{Key: "breakfast", Text: "Did you ever {verb} a {adjective} {noun} before breakfast?"},
		{Key: "wizard", Text: "Did the wizard offer you a {noun} in return?"},
		{Key: "bicycle", Text: "Were you instead chased by a {adjective} {noun} on a bicycle?"},
		{Key: "secret-door", Text: "Did you accept the {noun} and use it to unlock a secret door?"},
		{Key: "football", Text: "Did you politely decline and invite the {noun} to a game of football?"},
		{Key: "riddle", Text: "Did the {noun} demand you answer a riddle about flowers?"},
		{Key: "sneak", Text: "Did you quietly sneak into a {noun}'s house instead?"},
		{Key: "portal", Text: "Did the correct answer to the riddle open a portal to {noun}?"},
		{Key: "crowned", Text: "THE END: You are crowned ruler of the land. Enjoy your reign!"},
		{Key: "talking", Text: "THE END: You are turned into a talking {noun}. Enjoy your new life!"},
		{Key: "spontaneous", Text: "Did your spontaneous decision {adverb} cause a {adjective} {noun} to unfold?"},
		{Key: "saved", Text: "THE END: You save the town, accidentally."},
		{Key: "blamed", Text: "THE END: You are blamed for everything and sent to {noun}."},
		{Key: "dusty", Text: "Did you find a dusty {noun} that spoke in riddles?"},
		{Key: "wishes", Text: "THE END: It grants you three oddly specific wishes."},
		{Key: "dream", Text: "THE END: You wake up. It was all a dream... or was it?"},
	},
	Edges: []dsl.EdgeSpec{
		{From: "breakfast", To: "wizard", Label: true},
		{From: "breakfast", To: "bicycle", Label: false},
		{From: "wizard", To: "secret-door", Label: true},
		{From: "wizard", To: "football", Label: false},
		{From: "bicycle", To: "riddle", Label: true},
		{From: "bicycle", To: "sneak", Label: false},
		{From: "secret-door", To: "portal", Label: true},
		{From: "secret-door", To: "spontaneous", Label: false},
		{From: "football", To: "spontaneous", Label: true},
		{From: "football", To: "dusty", Label: false},
		{From: "riddle", To: "portal", Label: true},
		{From: "riddle", To: "dusty", Label: false},
		{From: "sneak", To: "spontaneous", Label: true},
		{From: "sneak", To: "dusty", Label: false},
		{From: "portal", To: "crowned", Label: true},
		{From: "portal", To: "talking", Label: false},
		{From: "spontaneous", To: "saved", Label: true},
		{From: "spontaneous", To: "blamed", Label: false},
		{From: "dusty", To: "wishes", Label: true},
		{From: "dusty", To: "dream", Label: false},
	},
}
