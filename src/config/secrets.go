package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/apimgr/cityweather/src/paths"
)

const (
	secretsSection = "openweather"
	secretsKey     = "api_key"
)

var (
	// ErrSecretsNotFound is returned when the secrets file does not exist
	ErrSecretsNotFound = errors.New("secrets file not found")
	// ErrMissingSection is returned when [openweather] is absent
	ErrMissingSection = errors.New("missing [openweather] section")
	// ErrMissingKey is returned when api_key is absent or empty
	ErrMissingKey = errors.New("missing api_key")
)

// Secrets holds the credentials read from secrets.ini
type Secrets struct {
	Path string
	key  string
}

// LoadSecrets reads the [openweather] api_key entry from path
func LoadSecrets(path string) (*Secrets, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSecretsNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	section, err := file.GetSection(secretsSection)
	if err != nil {
		return nil, fmt.Errorf("%w in %s", ErrMissingSection, path)
	}

	if !section.HasKey(secretsKey) {
		return nil, fmt.Errorf("%w in [%s] of %s", ErrMissingKey, secretsSection, path)
	}
	key := strings.TrimSpace(section.Key(secretsKey).String())
	if key == "" {
		return nil, fmt.Errorf("%w in [%s] of %s", ErrMissingKey, secretsSection, path)
	}

	return &Secrets{Path: path, key: key}, nil
}

// APIKey returns the OpenWeather API key
func (s *Secrets) APIKey() (string, error) {
	if s == nil || s.key == "" {
		return "", ErrMissingKey
	}
	return s.key, nil
}

// EnvKeySource serves an API key taken from the environment
type EnvKeySource string

// APIKey returns the key or ErrMissingKey when empty
func (e EnvKeySource) APIKey() (string, error) {
	if strings.TrimSpace(string(e)) == "" {
		return "", ErrMissingKey
	}
	return strings.TrimSpace(string(e)), nil
}

// SaveAPIKey writes key into [openweather] of path, keeping any other sections
func SaveAPIKey(path, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrMissingKey
	}
	if err := paths.EnsureFile(path); err != nil {
		return err
	}

	file, err := ini.LooseLoad(path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	file.Section(secretsSection).Key(secretsKey).SetValue(key)

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	return nil
}

// FileKeySource reads the key from a secrets file each time it is asked
type FileKeySource string

// APIKey loads the file and returns its key
func (f FileKeySource) APIKey() (string, error) {
	secrets, err := LoadSecrets(string(f))
	if err != nil {
		return "", err
	}
	return secrets.APIKey()
}
