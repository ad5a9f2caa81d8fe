package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner shown on interactive startup.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Canopy-to-trunk gradient (lime down to deep green)
	s1 := termenv.String("      _                      ").Foreground(p.Color("#a3e635"))
	s2 := termenv.String("  ___| |_ ___ _ __ ___  ___  ").Foreground(p.Color("#84cc16"))
	s3 := termenv.String(" / __| __/ _ \\ '_ ` _ \\/ __| ").Foreground(p.Color("#4ade80"))
	s4 := termenv.String(" \\__ \\ ||  __/ | | | | \\__ \\ ").Foreground(p.Color("#22c55e"))
	s5 := termenv.String(" |___/\\__\\___|_| |_| |_|___/ ").Foreground(p.Color("#16a34a"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
	tag := fmt.Sprintf(" stem profile estimator %s", strings.TrimSpace(version))
	fmt.Println(termenv.String(tag).Faint())
	fmt.Println()
}
