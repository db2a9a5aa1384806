package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	`   ___ _ __ ___  ___ ___ _ __ ___   __ _  __| |___ `,
	`  / __| '__/ _ \/ __/ __| '__/ _ \ / _' |/ _' / __|`,
	` | (__| | | (_) \__ \__ \ | | (_) | (_| | (_| \__ \`,
	`  \___|_|  \___/|___/___/_|  \___/ \__,_|\__,_|___/`,
}

var bannerColors = []string{"#34d399", "#2dd4bf", "#22d3ee", "#38bdf8"}

// PrintBanner writes the crossroads banner followed by the tree name.
func PrintBanner(w io.Writer, tree string) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line).Foreground(p.Color(bannerColors[i])))
	}
	if tree != "" {
		fmt.Fprintln(w, termenv.String("  tree: "+tree).Faint())
	}
	fmt.Fprintln(w)
}

// SystemMessage styles a meta-message so it stands apart from node content.
func SystemMessage(msg string) string {
	p := termenv.ColorProfile()
	return termenv.String(">>> " + msg).Foreground(p.Color("#fbbf24")).String()
}
