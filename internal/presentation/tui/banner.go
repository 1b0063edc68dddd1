package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the menutree ASCII banner, colored when w supports it.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)

	// Teal to green gradient
	lines := []struct {
		text  string
		color string
	}{
		{"  _ __ ___   ___ _ __  _   _| |_ _ __ ___  ___ ", "#22d3ee"},
		{" | '_ ` _ \\ / _ \\ '_ \\| | | | __| '__/ _ \\/ _ \\", "#2dd4bf"},
		{" | | | | | |  __/ | | | |_| | |_| | |  __/  __/", "#34d399"},
		{" |_| |_| |_|\\___|_| |_|\\__,_|\\__|_|  \\___|\\___|", "#4ade80"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  " + version).Faint())
	fmt.Fprintln(w)
}
