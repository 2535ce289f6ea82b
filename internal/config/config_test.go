package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "SHUTDOWN_TIMEOUT", "WEATHER_BASE_URL", "WEATHER_API_KEY", "WEATHER_TIMEOUT", "SEED_DEMO_DATA"} {
		t.Setenv(k, "") // register cleanup restore
		os.Unsetenv(k)
	}
	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", c.HTTPAddr)
	require.Equal(t, 15*time.Second, c.ShutdownTimeout)
	require.Equal(t, "https://api.openweathermap.org/data/2.5/weather", c.WeatherBaseURL)
	require.Equal(t, 10*time.Second, c.WeatherTimeout)
	require.True(t, c.SeedDemoData)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("WEATHER_TIMEOUT", "2s")
	t.Setenv("SEED_DEMO_DATA", "false")
	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", c.HTTPAddr)
	require.Equal(t, 2*time.Second, c.WeatherTimeout)
	require.False(t, c.SeedDemoData)
}
