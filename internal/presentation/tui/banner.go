package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the structdict banner to w using the given profile.
func PrintBanner(w io.Writer, profile termenv.Profile) {
	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	lines := []struct {
		text  string
		color string
	}{
		{"     _                   _      _ _      _   ", "#818cf8"},
		{" ___| |_ _ __ _   _  ___| |_ __| (_) ___| |_ ", "#a78bfa"},
		{"/ __| __| '__| | | |/ __| __/ _` | |/ __| __|", "#c084fc"},
		{"\\__ \\ |_| |  | |_| | (__| || (_| | | (__| |_ ", "#e879f9"},
		{"|___/\\__|_|   \\__,_|\\___|\\__\\__,_|_|\\___|\\__|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
