package owm

import (
	"encoding/json"
	"fmt"
)

// Report is the subset of the current-weather payload the CLI displays
type Report struct {
	CityName      string  `json:"name"`
	ConditionCode int     `json:"condition_code"`
	Description   string  `json:"description"`
	Temperature   float64 `json:"temperature"`
}

// currentResponse mirrors the OpenWeather /weather JSON.
// Pointers distinguish missing fields from zero values.
type currentResponse struct {
	Name    *string `json:"name"`
	Weather []struct {
		ID          *int    `json:"id"`
		Main        string  `json:"main"`
		Description *string `json:"description"`
		Icon        string  `json:"icon"`
	} `json:"weather"`
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike float64  `json:"feels_like"`
		Humidity  int      `json:"humidity"`
	} `json:"main"`
}

// ParseReport decodes body and checks required fields.
// Only weather[0] is consulted.
func ParseReport(body []byte) (*Report, error) {
	var raw currentResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}

	switch {
	case raw.Name == nil:
		return nil, fmt.Errorf("%w: missing name", ErrUnexpectedFormat)
	case len(raw.Weather) == 0:
		return nil, fmt.Errorf("%w: missing weather", ErrUnexpectedFormat)
	case raw.Weather[0].ID == nil || raw.Weather[0].Description == nil:
		return nil, fmt.Errorf("%w: incomplete weather[0]", ErrUnexpectedFormat)
	case raw.Main == nil || raw.Main.Temp == nil:
		return nil, fmt.Errorf("%w: missing main.temp", ErrUnexpectedFormat)
	}

	return &Report{
		CityName:      *raw.Name,
		ConditionCode: *raw.Weather[0].ID,
		Description:   *raw.Weather[0].Description,
		Temperature:   *raw.Main.Temp,
	}, nil
}
