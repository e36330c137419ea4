package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug    bool
	TestMode bool
	Env      string
	AppName  string
	Build    string

	API struct {
		BaseURL      string
		Timeout      time.Duration
		PollInterval time.Duration
	}

	Session struct {
		Backend string // "file" or "sqlite"
		Path    string
	}

	Stock struct {
		LowThreshold      int
		ModerateThreshold int
	}

	RollbarToken string
}

// NewConfig loads the app configuration from the environment;
// `config/.env.<env>` is loaded first if it exists.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Schoolmed Console")
	conf.SetDefault("build", "dev")
	conf.SetDefault("apiBaseUrl", "http://localhost:8080")
	conf.SetDefault("apiTimeout", 15*time.Second)
	conf.SetDefault("apiPollInterval", 30*time.Second)
	conf.SetDefault("sessionBackend", "file")
	conf.SetDefault("sessionPath", defaultSessionPath())
	conf.SetDefault("stockLowThreshold", 10)
	conf.SetDefault("stockModerateThreshold", 50)
	conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	c := &Config{
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		Env:          env,
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		RollbarToken: conf.GetString("rollbarToken"),
	}
	c.API.BaseURL = strings.TrimRight(conf.GetString("apiBaseUrl"), "/")
	c.API.Timeout = conf.GetDuration("apiTimeout")
	c.API.PollInterval = conf.GetDuration("apiPollInterval")
	c.Session.Backend = conf.GetString("sessionBackend")
	c.Session.Path = conf.GetString("sessionPath")
	c.Stock.LowThreshold = conf.GetInt("stockLowThreshold")
	c.Stock.ModerateThreshold = conf.GetInt("stockModerateThreshold")
	return c
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "schoolmed", "session.json")
	}
	return filepath.Join(home, ".schoolmed", "session.json")
}
