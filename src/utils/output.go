package utils

import (
	"os"

	"golang.org/x/term"
)

// ColorEnabled checks if color output should be used for the given file
// Priority: 1. mode always/never -> 2. NO_COLOR env -> 3. Auto-detect
func ColorEnabled(mode string, out *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	// NO_COLOR env var (non-empty = disable)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Auto-detect: TTY + TERM support
	if out == nil || !term.IsTerminal(int(out.Fd())) {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}

// EmojiEnabled checks if emoji output should be used
// Emojis are disabled when turned off in config or TERM=dumb
func EmojiEnabled(configured bool) bool {
	if !configured {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

// IsInteractive reports whether f is a terminal
func IsInteractive(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
