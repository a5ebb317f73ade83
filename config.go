package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/heathj/htmlassert/parser"
)

const appName = "htmlassert"

var envConfig = strings.ToUpper(appName) + "_CONFIG"

// Config is the optional YAML config file. Flags override every field.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Mode      string `yaml:"mode"`
	Prune     *bool  `yaml:"prune"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Mode:      "auto",
	}
}

// pruning defaults to on when the config says nothing.
func (c Config) pruning() bool {
	return c.Prune == nil || *c.Prune
}

// resolveConfigPath returns the config file to read and whether the user
// named it. Priority: --config > $HTMLASSERT_CONFIG > $XDG_CONFIG_HOME/htmlassert > ~/.config/htmlassert
func resolveConfigPath(flagPath string) (string, bool, error) {
	if flagPath != "" {
		return flagPath, true, nil
	}
	if v := os.Getenv(envConfig); v != "" {
		return v, false, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName, "config.yaml"), false, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, errors.Wrap(err, "could not determine home directory")
	}
	return filepath.Join(home, ".config", appName, "config.yaml"), false, nil
}

// loadConfig reads path over the defaults. A missing file is only an error
// when the user asked for it explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(err, "open config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, "decode config %s", path)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := parser.ParseMode(c.Mode); err != nil {
		return errors.Wrap(err, "config")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "config")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.Errorf("config: unknown log format %q", c.LogFormat)
	}
	return nil
}

func newLogger(c Config, out io.Writer) (*logrus.Entry, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logrus.NewEntry(l).WithField("app", appName), nil
}
