package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	SessionBackendFile   = "file"
	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"
)

type (
	APIConfig struct {
		BaseURL string
		Timeout time.Duration // 0: no client side timeout
	}

	SessionConfig struct {
		Backend       string
		Path          string
		Key           string
		RedisAddr     string
		RedisPassword string
		RedisDB       int
	}

	Config struct {
		AppName      string
		Env          string // DEV (local; default), TEST, QA, PROD
		Debug        bool
		TestMode     bool
		Build        string
		RollbarToken string
		API          APIConfig
		Session      SessionConfig
	}
)

// NewConfig loads the Config and dies if the dotenv file exists but cannot be read.
func NewConfig() *Config {
	conf, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return conf
}

// LoadConfig reads defaults, the optional `config/.env.<env>` file and the environment.
// Environment variables are prefixed by the env name, eg. `PROD_API_BASEURL`.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Attainment")
	v.SetDefault("build", "develop")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("api.baseURL", "https://teacher-attainment-system-backend.onrender.com")
	v.SetDefault("api.timeout", time.Duration(0))
	v.SetDefault("session.backend", SessionBackendFile)
	v.SetDefault("session.path", defaultSessionPath())
	v.SetDefault("session.key", "user")
	v.SetDefault("session.redisAddr", "localhost:6379")
	v.SetDefault("session.redisPassword", "")
	v.SetDefault("session.redisDB", 0)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	case "QA", "PROD":
		v.SetDefault("debug", false)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(configDir(), ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "reading %s", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbarToken"),
		API: APIConfig{
			BaseURL: strings.TrimRight(v.GetString("api.baseURL"), "/"),
			Timeout: v.GetDuration("api.timeout"),
		},
		Session: SessionConfig{
			Backend:       strings.ToLower(v.GetString("session.backend")),
			Path:          v.GetString("session.path"),
			Key:           v.GetString("session.key"),
			RedisAddr:     v.GetString("session.redisAddr"),
			RedisPassword: v.GetString("session.redisPassword"),
			RedisDB:       v.GetInt("session.redisDB"),
		},
	}
	switch conf.Session.Backend {
	case SessionBackendFile, SessionBackendRedis, SessionBackendMemory:
	default:
		return nil, errors.Errorf("unknown session backend %q", conf.Session.Backend)
	}
	return conf, nil
}

// configDir is ATTAINMENT_CONFIG_DIR when set, `./config` otherwise.
func configDir() string {
	if dir := os.Getenv("ATTAINMENT_CONFIG_DIR"); dir != "" {
		return dir
	}
	return "config"
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "attainment", "session.json")
}
