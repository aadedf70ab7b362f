package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{" _  ___   _ ____  ___    _    _  _____ ____  _ ____  ", "#4ade80"},
	{"| |/ | | | |  _ \\|_ _|  / \\  | |/ /_ _|  _ \\/ / ___| ", "#34d399"},
	{"| ' / \\ V /| |_) || |  / _ \\ | ' / | || | | | \\___ \\ ", "#2dd4bf"},
	{"| . \\  | | |  _ < | | / ___ \\| . \\ | || |_| | |___) |", "#22d3ee"},
	{"|_|\\_\\ |_| |_| \\_\\___/_/   \\_\\_|\\_\\___|____/|_|____/ ", "#38bdf8"},
}

// PrintBanner writes the ASCII banner followed by the site tagline.
func PrintBanner(w io.Writer, tagline string) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if tagline != "" {
		fmt.Fprintln(w, termenv.String(" "+tagline).Faint())
	}
	fmt.Fprintln(w)
}
