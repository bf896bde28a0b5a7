package owm

import (
	"errors"
	"testing"
)

func TestParseReport(t *testing.T) {
	report, err := ParseReport([]byte(parisJSON))
	if err != nil {
		t.Fatalf("ParseReport() failed: %v", err)
	}
	if report.CityName != "Paris" || report.ConditionCode != 800 {
		t.Errorf("Unexpected report: %+v", report)
	}
	if report.Description != "clear sky" || report.Temperature != 21.5 {
		t.Errorf("Unexpected report: %+v", report)
	}
}

func TestParseReportUsesFirstCondition(t *testing.T) {
	body := `{"name":"Leeds","weather":[{"id":501,"description":"moderate rain"},{"id":701,"description":"mist"}],"main":{"temp":9}}`

	report, err := ParseReport([]byte(body))
	if err != nil {
		t.Fatalf("ParseReport() failed: %v", err)
	}
	if report.ConditionCode != 501 || report.Description != "moderate rain" {
		t.Errorf("Expected weather[0], got %+v", report)
	}
}

func TestParseReportZeroValuesArePresent(t *testing.T) {
	body := `{"name":"","weather":[{"id":0,"description":""}],"main":{"temp":0}}`

	if _, err := ParseReport([]byte(body)); err != nil {
		t.Errorf("Zero values are present fields, got %v", err)
	}
}

func TestParseReportMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `oops`},
		{"missing name", `{"weather":[{"id":800,"description":"clear sky"}],"main":{"temp":1}}`},
		{"empty weather", `{"name":"X","weather":[],"main":{"temp":1}}`},
		{"missing id", `{"name":"X","weather":[{"description":"clear sky"}],"main":{"temp":1}}`},
		{"missing description", `{"name":"X","weather":[{"id":800}],"main":{"temp":1}}`},
		{"missing main", `{"name":"X","weather":[{"id":800,"description":"clear sky"}]}`},
		{"missing temp", `{"name":"X","weather":[{"id":800,"description":"clear sky"}],"main":{}}`},
		{"wrong type", `{"name":"X","weather":[{"id":"800","description":"clear sky"}],"main":{"temp":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseReport([]byte(tt.body)); !errors.Is(err, ErrUnexpectedFormat) {
				t.Errorf("Expected ErrUnexpectedFormat, got %v", err)
			}
		})
	}
}
