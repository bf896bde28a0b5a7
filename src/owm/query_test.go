package owm

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type staticKey string

func (k staticKey) APIKey() (string, error) { return string(k), nil }

type failingKey struct{ err error }

func (k failingKey) APIKey() (string, error) { return "", k.err }

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name     string
		city     []string
		imperial bool
		want     Query
	}{
		{
			name: "two words metric",
			city: []string{"New", "York"},
			want: Query{City: "New York", Units: Metric, APIKey: "KEY123"},
		},
		{
			name:     "imperial",
			city:     []string{"Paris"},
			imperial: true,
			want:     Query{City: "Paris", Units: Imperial, APIKey: "KEY123"},
		},
		{
			name: "extra whitespace collapses",
			city: []string{"  Rio ", "de", "", "Janeiro  "},
			want: Query{City: "Rio de Janeiro", Units: Metric, APIKey: "KEY123"},
		},
		{
			name: "quoted multi-word argument",
			city: []string{"San  Francisco"},
			want: Query{City: "San Francisco", Units: Metric, APIKey: "KEY123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildQuery(tt.city, tt.imperial, staticKey("KEY123"))
			if err != nil {
				t.Fatalf("BuildQuery() failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildQuery() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildQueryEmptyCity(t *testing.T) {
	if _, err := BuildQuery([]string{" ", ""}, false, staticKey("K")); !errors.Is(err, ErrEmptyCity) {
		t.Errorf("Expected ErrEmptyCity, got %v", err)
	}
}

func TestBuildQueryKeyErrorPropagates(t *testing.T) {
	keyErr := errors.New("no section")

	_, err := BuildQuery([]string{"Oslo"}, false, failingKey{err: keyErr})
	if !errors.Is(err, keyErr) {
		t.Errorf("Expected key error to propagate, got %v", err)
	}
}

func TestQueryURL(t *testing.T) {
	q, err := BuildQuery([]string{"New", "York"}, false, staticKey("KEY123"))
	if err != nil {
		t.Fatal(err)
	}

	got := q.URL("")
	want := "http://api.openweathermap.org/data/2.5/weather?q=New+York&units=metric&appid=KEY123"
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}

	q.Units = Imperial
	if !strings.Contains(q.URL(""), "units=imperial") {
		t.Errorf("Expected units=imperial in %s", q.URL(""))
	}
}

func TestQueryURLEncoding(t *testing.T) {
	q := Query{City: "São Paulo&x=1", Units: Metric, APIKey: "K"}

	u, err := url.Parse(q.URL("http://localhost/weather"))
	if err != nil {
		t.Fatalf("URL did not parse: %v", err)
	}
	if got := u.Query().Get("q"); got != "São Paulo&x=1" {
		t.Errorf("Expected city to round-trip, got %q", got)
	}
	if u.Query().Get("x") != "" {
		t.Error("City must not inject extra parameters")
	}
}

func TestQueryURLBaseWithQuery(t *testing.T) {
	q := Query{City: "Oslo", Units: Metric, APIKey: "K"}

	got := q.URL("http://localhost/weather?lang=en")
	if !strings.HasPrefix(got, "http://localhost/weather?lang=en&q=Oslo&") {
		t.Errorf("Expected parameters appended to existing query, got %s", got)
	}
}

func TestCacheKeyIgnoresCredential(t *testing.T) {
	a := Query{City: "Paris", Units: Metric, APIKey: "A"}
	b := Query{City: "paris", Units: Metric, APIKey: "B"}

	if a.CacheKey() != b.CacheKey() {
		t.Errorf("Expected equal keys, got %s and %s", a.CacheKey(), b.CacheKey())
	}
	if a.CacheKey() == (Query{City: "Paris", Units: Imperial}).CacheKey() {
		t.Error("Expected units to be part of the key")
	}
}

func TestRedactURL(t *testing.T) {
	got := RedactURL("http://h/w?q=Oslo&units=metric&appid=SECRET")
	if strings.Contains(got, "SECRET") {
		t.Errorf("Expected key to be redacted, got %s", got)
	}
	if !strings.Contains(got, "q=Oslo") {
		t.Errorf("Expected other params kept, got %s", got)
	}
}

func TestUnitsSymbol(t *testing.T) {
	if UnitsFor(true).Symbol() != "°F" {
		t.Error("Expected °F for imperial")
	}
	if UnitsFor(false).Symbol() != "°C" {
		t.Error("Expected °C for metric")
	}
}
