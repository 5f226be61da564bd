package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := fromLookup(lookupFrom(nil))
		require.NoError(t, err)
		assert.Equal(t, StoreFile, cfg.Store)
		assert.Equal(t, "addressbook.json", cfg.File)
		assert.Equal(t, "addressbook.db", cfg.BoltPath)
		assert.Equal(t, "contactbook:records", cfg.Redis.Key)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
		assert.Equal(t, 7, cfg.UpcomingDays)
		assert.Empty(t, cfg.MetricsFile)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := fromLookup(lookupFrom(map[string]string{
			"CONTACTBOOK_STORE":         " Bolt ",
			"CONTACTBOOK_BOLT_PATH":     "/tmp/book.db",
			"CONTACTBOOK_LOG_LEVEL":     "debug",
			"CONTACTBOOK_UPCOMING_DAYS": "30",
			"CONTACTBOOK_METRICS_FILE":  "/tmp/contactbook.prom",
		}))
		require.NoError(t, err)
		assert.Equal(t, StoreBolt, cfg.Store)
		assert.Equal(t, "/tmp/book.db", cfg.BoltPath)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 30, cfg.UpcomingDays)
		assert.Equal(t, "/tmp/contactbook.prom", cfg.MetricsFile)
	})

	t.Run("blank values fall back to defaults", func(t *testing.T) {
		cfg, err := fromLookup(lookupFrom(map[string]string{"CONTACTBOOK_FILE": "  "}))
		require.NoError(t, err)
		assert.Equal(t, "addressbook.json", cfg.File)
	})

	t.Run("rejects bad upcoming days", func(t *testing.T) {
		for _, v := range []string{"week", "-1", "1.5"} {
			_, err := fromLookup(lookupFrom(map[string]string{"CONTACTBOOK_UPCOMING_DAYS": v}))
			assert.Error(t, err, v)
		}
	})

	t.Run("network stores need a URL", func(t *testing.T) {
		_, err := fromLookup(lookupFrom(map[string]string{"CONTACTBOOK_STORE": "postgres"}))
		assert.ErrorContains(t, err, "CONTACTBOOK_DATABASE_URL")

		_, err = fromLookup(lookupFrom(map[string]string{"CONTACTBOOK_STORE": "redis"}))
		assert.ErrorContains(t, err, "CONTACTBOOK_REDIS_URL")

		cfg, err := fromLookup(lookupFrom(map[string]string{
			"CONTACTBOOK_STORE":     "redis",
			"CONTACTBOOK_REDIS_URL": "redis://localhost:6379/0",
		}))
		require.NoError(t, err)
		assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	})

	t.Run("rejects unknown store", func(t *testing.T) {
		_, err := fromLookup(lookupFrom(map[string]string{"CONTACTBOOK_STORE": "pickle"}))
		assert.ErrorContains(t, err, "pickle")
	})
}
