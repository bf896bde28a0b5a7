package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestColorEnabledModes(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if !ColorEnabled("always", nil) {
		t.Error("always must win over NO_COLOR")
	}
	if ColorEnabled("never", nil) {
		t.Error("never must disable color")
	}
	if ColorEnabled("auto", nil) {
		t.Error("auto with NO_COLOR must disable color")
	}
}

func TestColorEnabledNotTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if ColorEnabled("auto", f) {
		t.Error("Expected no color when writing to a regular file")
	}
	if IsInteractive(f) {
		t.Error("A regular file is not interactive")
	}
}

func TestEmojiEnabled(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	if !EmojiEnabled(true) {
		t.Error("Expected emoji enabled")
	}
	if EmojiEnabled(false) {
		t.Error("Expected config to disable emoji")
	}

	t.Setenv("TERM", "dumb")
	if EmojiEnabled(true) {
		t.Error("Expected TERM=dumb to disable emoji")
	}
}
