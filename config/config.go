// Package config loads turboquery settings from a turboquery.env file or
// environment variables.
package config

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/sclgo/turboquery"
)

// Config stores the settings of a turboquery client.
//
// The values are read by viper from a config file or environment variables,
// environment variables taking precedence.
type Config struct {
	ConnectionString string        `mapstructure:"TURBOQUERY_CONNECTION_STRING"`
	ProcedureName    string        `mapstructure:"TURBOQUERY_PROCEDURE_NAME"`
	Engine           string        `mapstructure:"TURBOQUERY_ENGINE"`
	QueryTimeout     time.Duration `mapstructure:"TURBOQUERY_QUERY_TIMEOUT"`
	LogLevel         string        `mapstructure:"TURBOQUERY_LOG_LEVEL"`
	Environment      string        `mapstructure:"GO_ENV"`
}

var keys = []string{
	"TURBOQUERY_CONNECTION_STRING",
	"TURBOQUERY_PROCEDURE_NAME",
	"TURBOQUERY_ENGINE",
	"TURBOQUERY_QUERY_TIMEOUT",
	"TURBOQUERY_LOG_LEVEL",
	"GO_ENV",
}

// Load reads turboquery.env from path, if present, and the environment.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("turboquery")
	v.SetConfigType("env")

	v.SetDefault("TURBOQUERY_ENGINE", string(turboquery.EngineSQLServer))
	v.SetDefault("TURBOQUERY_LOG_LEVEL", zerolog.InfoLevel.String())

	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return c, err
		}
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// Configure copies the connection settings into o. It has the shape
// turboquery.Register expects.
func (c Config) Configure(o *turboquery.Options) {
	o.ConnectionString = c.ConnectionString
	o.ProcedureName = c.ProcedureName
	if c.Engine != "" {
		o.Engine = turboquery.Engine(c.Engine)
	}
}

// ClientOptions derived from the config: logger and query timeout.
func (c Config) ClientOptions() []turboquery.Option {
	opts := []turboquery.Option{turboquery.WithLogger(c.Logger())}
	if c.QueryTimeout > 0 {
		opts = append(opts, turboquery.WithTimeout(c.QueryTimeout))
	}
	return opts
}

// Logger writes JSON to stderr, or human readable output with caller
// information at trace level in development.
func (c Config) Logger() zerolog.Logger {
	var output io.Writer = os.Stderr

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	log := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	if c.Environment == "development" {
		log = log.
			Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(zerolog.TraceLevel).
			With().
			Caller().
			Logger()
	}

	return log
}
