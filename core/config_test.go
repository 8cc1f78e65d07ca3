package core

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"DEBUG", "TESTMODE", "APPNAME", "BUILD", "HOST", "LOGLEVEL", "NOTIFICATIONS",
	"EMAILBACKEND", "DEFAULTFROMEMAIL", "SENDGRIDAPIKEY", "ROLLBARTOKEN",
}

// setEnv sets key for the duration of the test; an empty value unsets it.
func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
	if value == "" {
		require.NoError(t, os.Unsetenv(key))
	} else {
		require.NoError(t, os.Setenv(key, value))
	}
}

// isolate runs the test from an empty project root with no config in the environment.
func isolate(t *testing.T, dotEnvFiles map[string]string) {
	t.Helper()
	setEnv(t, "ENV", "")
	for _, prefix := range []string{"DEV", "TEST", "QA"} {
		for _, key := range configKeys {
			setEnv(t, prefix+"_"+key, "")
		}
	}

	root := t.TempDir()
	require.NoError(t, ioutil.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/cfg\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "config"), 0o755))
	for name, content := range dotEnvFiles {
		require.NoError(t, ioutil.WriteFile(filepath.Join(root, "config", name), []byte(content), 0o644))
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestNewConfig(t *testing.T) {
	hostname, _ := os.Hostname()

	tests := []struct {
		name     string
		env      map[string]string
		dotEnv   map[string]string
		check    func(t *testing.T, c *Config)
		wantFrom string
	}{
		{
			name: "defaults",
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "DEV", c.Env)
				assert.False(t, c.Debug)
				assert.False(t, c.TestMode)
				assert.Equal(t, "Masomo Review", c.AppName)
				assert.Equal(t, "dev", c.Build)
				assert.Equal(t, hostname, c.Host)
				assert.Equal(t, "warn", c.LogLevel)
				assert.False(t, c.Notifications)
				assert.Equal(t, "console", c.EmailBackend)
				assert.Empty(t, c.SendgridApiKey)
				assert.Empty(t, c.RollbarToken)
			},
			wantFrom: `"Masomo Review" <noreply@localhost>`,
		},
		{
			name: "test env",
			env:  map[string]string{"ENV": "test", "TEST_NOTIFICATIONS": "true"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "TEST", c.Env)
				assert.True(t, c.TestMode)
				assert.True(t, c.Notifications)
			},
			wantFrom: `"Masomo Review" <noreply@localhost>`,
		},
		{
			name: "other prefixes are ignored",
			env:  map[string]string{"ENV": "TEST", "DEV_NOTIFICATIONS": "true", "TEST_TESTMODE": "false"},
			check: func(t *testing.T, c *Config) {
				assert.False(t, c.Notifications)
				assert.False(t, c.TestMode)
			},
			wantFrom: `"Masomo Review" <noreply@localhost>`,
		},
		{
			name: "overrides",
			env: map[string]string{
				"DEV_HOST":             "box-1",
				"DEV_LOGLEVEL":         "DEBUG",
				"DEV_EMAILBACKEND":     "SendGrid",
				"DEV_DEBUG":            "1",
				"DEV_DEFAULTFROMEMAIL": "Masomo <hi@masomo.cd>",
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "box-1", c.Host)
				assert.Equal(t, "debug", c.LogLevel)
				assert.Equal(t, "sendgrid", c.EmailBackend)
				assert.True(t, c.Debug)
			},
			wantFrom: `"Masomo" <hi@masomo.cd>`,
		},
		{
			name:   "dotenv file",
			env:    map[string]string{"ENV": "QA", "QA_BUILD": "from-env"},
			dotEnv: map[string]string{".env.qa": "QA_APPNAME=From File\nQA_BUILD=from-file\nQA_ROLLBARTOKEN=tok\n"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "QA", c.Env)
				assert.False(t, c.TestMode)
				assert.Equal(t, "From File", c.AppName)
				assert.Equal(t, "from-env", c.Build, "the environment wins over the file")
				assert.Equal(t, "tok", c.RollbarToken)
			},
			wantFrom: `"From File" <noreply@localhost>`,
		},
		{
			name:   "dotenv of another env",
			dotEnv: map[string]string{".env.qa": "DEV_APPNAME=Nope\n"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "Masomo Review", c.AppName)
			},
			wantFrom: `"Masomo Review" <noreply@localhost>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t, tt.dotEnv)
			for k, v := range tt.env {
				setEnv(t, k, v)
			}

			conf, err := NewConfig()
			require.NoError(t, err)
			tt.check(t, conf)
			from := conf.DefaultFromEmail()
			assert.Equal(t, tt.wantFrom, from.String())
		})
	}
}
