package core

import (
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string // DEV (local; default), TEST, QA, PROD
	Debug    bool
	TestMode bool
	AppName  string
	Build    string
	Host     string
	LogLevel string // debug | info | warn | error | off

	Notifications    bool
	EmailBackend     string // console | sendgrid
	SendgridApiKey   string
	RollbarToken     string
	defaultFromEmail string
}

// DefaultFromEmail is the sender of every notification.
func (c *Config) DefaultFromEmail() mail.Address {
	if addr, err := mail.ParseAddress(c.defaultFromEmail); err == nil {
		if addr.Name == "" {
			addr.Name = c.AppName
		}
		return *addr
	}
	return mail.Address{Name: c.AppName, Address: c.defaultFromEmail}
}

// NewConfig reads the configuration from the environment,
// after loading `config/.env.<env>` if it exists.
func NewConfig() (*Config, error) {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", false)
	conf.SetDefault("testMode", false)
	conf.SetDefault("appName", "Masomo Review")
	conf.SetDefault("build", "dev")
	conf.SetDefault("host", "")
	conf.SetDefault("logLevel", "warn")
	conf.SetDefault("notifications", false)
	conf.SetDefault("emailBackend", "console")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("sendgridApiKey", "")
	conf.SetDefault("rollbarToken", "")

	env := strings.ToUpper(os.Getenv("ENV"))
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
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat %s", dotEnvPath)
	}
	conf.AutomaticEnv()

	host := conf.GetString("host")
	if host == "" {
		host, _ = os.Hostname()
	}

	return &Config{
		Env:              env,
		Debug:            conf.GetBool("debug"),
		TestMode:         conf.GetBool("testMode"),
		AppName:          conf.GetString("appName"),
		Build:            conf.GetString("build"),
		Host:             host,
		LogLevel:         strings.ToLower(conf.GetString("logLevel")),
		Notifications:    conf.GetBool("notifications"),
		EmailBackend:     strings.ToLower(conf.GetString("emailBackend")),
		SendgridApiKey:   conf.GetString("sendgridApiKey"),
		RollbarToken:     conf.GetString("rollbarToken"),
		defaultFromEmail: conf.GetString("defaultFromEmail"),
	}, nil
}
