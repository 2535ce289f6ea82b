package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verichain/coldchain/internal/config"
	"github.com/verichain/coldchain/internal/obs"
)

func newService(t *testing.T, baseURL string) *Service {
	t.Helper()
	obs.InitLogger()
	return New(config.Config{
		WeatherBaseURL: baseURL,
		WeatherAPIKey:  "test-key",
		WeatherTimeout: 2 * time.Second,
	})
}

func TestVerifyUpstreamSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Mumbai,IN", r.URL.Query().Get("q"))
		require.Equal(t, "test-key", r.URL.Query().Get("appid"))
		require.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"main":{"temp":30.37,"humidity":74},"weather":[{"description":"haze"}],"name":"Mumbai"}`))
	}))
	defer srv.Close()

	s := newService(t, srv.URL)
	reading, err := s.Verify(context.Background(), "Mumbai", 5.0)
	require.NoError(t, err)
	require.Equal(t, 30.4, reading.Temperature)
	require.Equal(t, 74.0, reading.Humidity)
	require.Equal(t, "haze", reading.Conditions)
	require.Equal(t, "Mumbai", reading.Location)
	require.False(t, reading.Timestamp.IsZero())
}

func TestVerifyUpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := newService(t, srv.URL)
	_, err := s.Verify(context.Background(), "Mumbai", 5.0)
	require.Error(t, err)
}

func TestVerifyTransportFailureFallsBackToMock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	s := newService(t, srv.URL)
	reading, err := s.Verify(context.Background(), "Mumbai", 5.0)
	require.NoError(t, err)
	require.Equal(t, "Mock Data", reading.Conditions)
	require.Equal(t, "Mumbai", reading.Location)
	// baseline 32.0 with at most ±5 jitter
	require.GreaterOrEqual(t, reading.Temperature, 27.0)
	require.LessOrEqual(t, reading.Temperature, 37.0)
	require.GreaterOrEqual(t, reading.Humidity, 0.0)
	require.LessOrEqual(t, reading.Humidity, 100.0)
}

func TestCurrentTransportFailureFallsBackToMock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	s := newService(t, srv.URL)
	temp, err := s.Current(context.Background(), "Lucknow")
	require.NoError(t, err)
	require.GreaterOrEqual(t, temp, 18.0)
	require.LessOrEqual(t, temp, 28.0)
}

func TestCurrentErrorStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := newService(t, srv.URL)
	_, err := s.Current(context.Background(), "Mumbai")
	require.Error(t, err)
}

func TestMockTemperatureUnknownCityBaseline(t *testing.T) {
	for i := 0; i < 20; i++ {
		temp := mockTemperature("Atlantis")
		require.GreaterOrEqual(t, temp, 20.0)
		require.LessOrEqual(t, temp, 30.0)
	}
}
