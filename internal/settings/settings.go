// Package settings loads the console logging configuration for the
// go-termlog binary from a TOML file and the environment.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/mordilloSan/go-termlog/logger"
)

// EnvLogLevel overrides log_level from the file when set.
const EnvLogLevel = "LOG_LEVEL"

// Settings mirrors the on-disk configuration. log_level is decoded by
// logger.Level's UnmarshalText, so any letter case of a level name works.
type Settings struct {
	LogLevel            logger.Level `toml:"log_level" validate:"log_level"`
	ColoredOutput       bool         `toml:"colored_output"`
	ColoredOutputForced bool         `toml:"colored_output_forced"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("log_level", validateLogLevel); err != nil {
		panic(err)
	}

	// Report fields by their TOML names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateLogLevel rejects levels built in code from out-of-range numbers.
func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := logger.LevelFromInt(int(fl.Field().Int()))
	return err == nil
}

// Default returns settings equivalent to logger.DefaultConfig.
func Default() Settings {
	return Settings{LogLevel: logger.DefaultLevel()}
}

// Load reads path, applies the environment override and validates the
// result. An empty path yields the defaults plus the environment.
func Load(path string) (Settings, error) {
	s := Default()

	if path != "" {
		content, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := Parse(content, &s); err != nil {
			return Settings{}, err
		}
	}

	if env := strings.TrimSpace(os.Getenv(EnvLogLevel)); env != "" {
		level, err := logger.ParseLevel(env)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
		s.LogLevel = level
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Parse decodes TOML content into s, keeping fields the content omits.
func Parse(content []byte, s *Settings) error {
	if err := toml.Unmarshal(content, s); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("failed to parse config file at line %d, column %d: %w", row, col, err)
		}
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Encode renders s as TOML, with log_level written by Level's MarshalText.
func (s Settings) Encode() ([]byte, error) {
	return toml.Marshal(s)
}

// Validate checks every field and reports the failures by TOML name.
func (s Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "log_level":
			msgs = append(msgs, fmt.Sprintf("%s: %v is not one of %s", fe.Field(), fe.Value(), levelNames()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %q validation", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// Config converts settings into a logger configuration.
func (s Settings) Config() logger.Config {
	return logger.Config{
		LogLevel:            s.LogLevel,
		ColoredOutput:       s.ColoredOutput,
		ColoredOutputForced: s.ColoredOutputForced,
	}
}

func levelNames() string {
	names := make([]string, 0, 6)
	for _, l := range logger.AllLevels() {
		names = append(names, strings.ToLower(l.String()))
	}
	return strings.Join(names, ", ")
}
