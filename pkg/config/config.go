// Package config loads tool-level settings from defaults, an optional
// bld.toml and BLD_* environment variables. Command line flags are handled
// by the cobra layer and override whatever is loaded here.
package config

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigtoml"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config describes all configuration options
type Config struct {
	File         string `default:"Bldfile" usage:"Path to the build description file"`
	Compiler     string `usage:"Compiler executable to use instead of platform detection"`
	KeepGoing    bool   `default:"false" usage:"Keep building the remaining programs after a failed compile"`
	SplitOptions bool   `default:"false" usage:"Pass option tokens as separate compiler arguments"`
	Log          struct {
		Level string `default:"info"`
		JSON  bool   `default:"false" usage:"Output NDJSON instead of pretty console messages"`
	}
}

var logLevels = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
	"fatal":   zerolog.FatalLevel,
}

// Loader initializes an empty config object and returns a new Loader for this object
func Loader() (*Config, *aconfig.Loader) {
	cfg := Config{}
	return &cfg, aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "BLD",
		SkipFlags: true,
		Files:     []string{"bld.toml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".toml": aconfigtoml.New(),
		},
	})
}

// Validate verifies that all config fields have valid values
func (cfg *Config) Validate() error {
	if cfg.File == "" {
		return eris.New(`Invalid value for file: must not be empty`)
	}

	_, ok := logLevels[cfg.Log.Level]
	if !ok {
		return eris.Errorf(`Invalid value for log.level: %s`, cfg.Log.Level)
	}

	return nil
}

// LogLevel converts the .Log.Level field to a zerolog.Level
func (cfg *Config) LogLevel() zerolog.Level {
	return logLevels[cfg.Log.Level]
}
