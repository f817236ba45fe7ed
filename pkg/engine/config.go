package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/graphics"
)

// Configuration defaults.
const (
	DefaultTitle  = "Strata Application"
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultFPS    = 60
)

// DefaultClearColor is the color the surface is cleared to before each frame.
var DefaultClearColor = graphics.RGBAF(0.1, 0.1, 0.15, 1)

// AppConfig describes the window an application runs in. A root component
// plus an AppConfig fully determine a runnable application.
type AppConfig struct {
	Title      string         `yaml:"title" toml:"title" validate:"required,max=256"`
	Width      int            `yaml:"width" toml:"width" validate:"min=1,max=16384"`
	Height     int            `yaml:"height" toml:"height" validate:"min=1,max=16384"`
	ClearColor graphics.Color `yaml:"clear_color" toml:"clear_color"`
	FPS        int            `yaml:"fps" toml:"fps" validate:"min=1,max=240"`
	// Theme is an optional path to a TOML theme file.
	Theme string `yaml:"theme,omitempty" toml:"theme,omitempty"`
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() AppConfig {
	return AppConfig{
		Title:      DefaultTitle,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		ClearColor: DefaultClearColor,
		FPS:        DefaultFPS,
	}
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) configuration file.
// Fields absent from the file keep their defaults. The result is validated.
func LoadConfig(path string) (AppConfig, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Validate checks field ranges.
func (c AppConfig) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.New("engine.AppConfig.Validate", errors.KindConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return errors.New("engine.AppConfig.Validate", errors.KindConfig, fmt.Errorf("%s", strings.Join(msgs, "; ")))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
