// Package paths resolves the per-user directories and files used by the CLI
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	projectName = "cityweather"

	// SecretsFileName is the credential file looked up in the working directory first
	SecretsFileName = "secrets.ini"
)

// ConfigDir returns the CLI config directory
// ~/.config/cityweather/ (Unix) or %APPDATA%\cityweather\ (Windows)
func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), projectName)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, projectName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", projectName)
}

// CacheDir returns the CLI cache directory
// ~/.cache/cityweather/ (Unix) or %LOCALAPPDATA%\cityweather\cache\ (Windows)
func CacheDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), projectName, "cache")
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, projectName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", projectName)
}

// ConfigFile returns the CLI preferences file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "cli.yml")
}

// CacheFile returns the response cache file path
func CacheFile() string {
	return filepath.Join(CacheDir(), "responses.gob")
}

// SecretsCandidates lists where secrets.ini is looked for, in order.
// An explicit path always wins and is the only candidate.
func SecretsCandidates(explicit string) []string {
	if explicit != "" {
		return []string{explicit}
	}
	return []string{
		SecretsFileName,
		filepath.Join(ConfigDir(), SecretsFileName),
	}
}

// FindSecrets returns the first existing candidate, or the first candidate
// when none exist so callers can name the file they expected.
func FindSecrets(explicit string) string {
	candidates := SecretsCandidates(explicit)
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return candidates[0]
}

// EnsureFile creates the parent directory of path with private permissions
func EnsureFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}
	return nil
}
