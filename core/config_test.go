package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setConfigDir(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("ATTAINMENT_CONFIG_DIR", dir)
	return dir
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setConfigDir(t)
		t.Setenv("ENV", "")

		conf, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "DEV", conf.Env)
		assert.True(t, conf.Debug)
		assert.False(t, conf.TestMode)
		assert.Equal(t, "https://teacher-attainment-system-backend.onrender.com", conf.API.BaseURL)
		assert.Zero(t, conf.API.Timeout)
		assert.Equal(t, SessionBackendFile, conf.Session.Backend)
		assert.Equal(t, "user", conf.Session.Key)
		assert.Equal(t, "session.json", filepath.Base(conf.Session.Path))
	})

	t.Run("test env", func(t *testing.T) {
		setConfigDir(t)
		t.Setenv("ENV", "test")

		conf, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "TEST", conf.Env)
		assert.True(t, conf.TestMode)
	})

	t.Run("prod disables debug", func(t *testing.T) {
		setConfigDir(t)
		t.Setenv("ENV", "PROD")

		conf, err := LoadConfig()
		require.NoError(t, err)
		assert.False(t, conf.Debug)
	})

	t.Run("prefixed environment variables", func(t *testing.T) {
		setConfigDir(t)
		t.Setenv("ENV", "QA")
		t.Setenv("QA_API_BASEURL", "http://api.local/")
		t.Setenv("QA_API_TIMEOUT", "5s")
		t.Setenv("QA_SESSION_BACKEND", "Redis")
		t.Setenv("QA_SESSION_REDISDB", "3")
		t.Setenv("API_BASEURL", "http://ignored.local")

		conf, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "http://api.local", conf.API.BaseURL)
		assert.Equal(t, 5*time.Second, conf.API.Timeout)
		assert.Equal(t, SessionBackendRedis, conf.Session.Backend)
		assert.Equal(t, 3, conf.Session.RedisDB)
	})

	t.Run("dotenv file", func(t *testing.T) {
		dir := setConfigDir(t)
		t.Setenv("ENV", "TEST")
		t.Cleanup(func() {
			_ = os.Unsetenv("TEST_SESSION_BACKEND")
			_ = os.Unsetenv("TEST_BUILD")
		})
		data := []byte("TEST_SESSION_BACKEND=memory\nTEST_BUILD=v1.2.3\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), data, 0o600))

		conf, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, SessionBackendMemory, conf.Session.Backend)
		assert.Equal(t, "v1.2.3", conf.Build)
	})

	t.Run("unknown session backend", func(t *testing.T) {
		setConfigDir(t)
		t.Setenv("ENV", "TEST")
		t.Setenv("TEST_SESSION_BACKEND", "floppy")

		_, err := LoadConfig()
		assert.EqualError(t, err, `unknown session backend "floppy"`)
		assert.Panics(t, func() { NewConfig() })
	})
}
