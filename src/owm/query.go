// Package owm talks to the OpenWeather current-weather endpoint
package owm

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the OpenWeather current-weather endpoint
const DefaultBaseURL = "http://api.openweathermap.org/data/2.5/weather"

// ErrEmptyCity is returned when no city words remain after trimming
var ErrEmptyCity = errors.New("city name is required")

// Units selects the temperature unit system requested from the API
type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

// UnitsFor maps the imperial flag to a units token
func UnitsFor(imperial bool) Units {
	if imperial {
		return Imperial
	}
	return Metric
}

// Symbol returns the temperature suffix for the unit system
func (u Units) Symbol() string {
	if u == Imperial {
		return "°F"
	}
	return "°C"
}

// KeySource supplies the API credential
type KeySource interface {
	APIKey() (string, error)
}

// Query is a single current-weather request
type Query struct {
	City   string
	Units  Units
	APIKey string
}

// BuildQuery joins city words and resolves the API key. Key lookup errors
// are returned unwrapped so callers can classify them.
func BuildQuery(city []string, imperial bool, keys KeySource) (Query, error) {
	words := make([]string, 0, len(city))
	for _, word := range city {
		words = append(words, strings.Fields(word)...)
	}
	if len(words) == 0 {
		return Query{}, ErrEmptyCity
	}

	key, err := keys.APIKey()
	if err != nil {
		return Query{}, err
	}

	return Query{
		City:   strings.Join(words, " "),
		Units:  UnitsFor(imperial),
		APIKey: key,
	}, nil
}

// URL serializes the query onto base (DefaultBaseURL when empty).
// Parameters are always emitted in q, units, appid order.
func (q Query) URL(base string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%sq=%s&units=%s&appid=%s",
		base, sep,
		url.QueryEscape(q.City),
		url.QueryEscape(string(q.Units)),
		url.QueryEscape(q.APIKey))
}

// CacheKey identifies the query independent of the credential
func (q Query) CacheKey() string {
	return string(q.Units) + "|" + strings.ToLower(q.City)
}

// RedactURL hides the appid parameter for logging
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	values := u.Query()
	if values.Get("appid") == "" {
		return raw
	}
	values.Set("appid", "REDACTED")
	u.RawQuery = values.Encode()
	return u.String()
}
